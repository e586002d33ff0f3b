package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xiam/lread/parser"
)

// Configuration keys. Every key can also be set through an LREAD_ prefixed
// environment variable, e.g. LREAD_MAX_DEPTH.
const (
	keyMaxDepth       = "max-depth"
	keyAllowEmptyText = "allow-empty-text"
	keyWordSymbols    = "word-symbols"
	keyNoColor        = "no-color"
	keyTree           = "tree"
	keyPrompt         = "prompt"
)

var cfgFile string

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	ret := &cobra.Command{
		Use:   "lread",
		Short: "lread - read s-expressions and print them back",
		Long: `lread reads one s-expression per line and prints back the value it
parsed, or a diagnostic when the line is malformed.

Examples:
  lread                        # interactive prompt
  lread repl --max-depth 64    # interactive prompt with a nesting limit
  lread read exprs.txt         # parse every line of a file
  echo '(+ 1 2)' | lread read  # parse lines from stdin`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	ret.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	ret.PersistentFlags().Int(keyMaxDepth, 0, "maximum list nesting depth, 0 means unlimited")
	ret.PersistentFlags().Bool(keyAllowEmptyText, false, `accept "" as an empty string`)
	ret.PersistentFlags().Bool(keyWordSymbols, false, "symbols run until whitespace, taking quotes and parens with them")
	ret.PersistentFlags().Bool(keyNoColor, false, "disable colored output")
	ret.PersistentFlags().Bool(keyTree, false, "print the typed tree of every value")

	// glog registers its flags (-v, -logtostderr, ...) on the standard flag set.
	ret.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	repl := getReplCmd()
	ret.AddCommand(repl, getReadCmd())

	// Running the bare command starts the prompt.
	ret.Flags().AddFlagSet(repl.Flags())
	ret.RunE = repl.RunE

	return ret
}

// Execute runs the root command
func Execute() {
	defer glog.Flush()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command) error {
	// Keeps glog from complaining about flags not being parsed; cobra has
	// already parsed them.
	if err := flag.CommandLine.Parse(nil); err != nil {
		return errors.Wrap(err, "parsing log flags")
	}

	viper.SetEnvPrefix("lread")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "binding flags")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config file %q", cfgFile)
		}
		glog.V(1).Infof("using config file %s", viper.ConfigFileUsed())
	}

	if viper.GetBool(keyNoColor) {
		color.NoColor = true
	}

	return nil
}

func parserOptions() parser.Options {
	return parser.Options{
		MaxDepth:       viper.GetInt(keyMaxDepth),
		AllowEmptyText: viper.GetBool(keyAllowEmptyText),
		WordSymbols:    viper.GetBool(keyWordSymbols),
	}
}
