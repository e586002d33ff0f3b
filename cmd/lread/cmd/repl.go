package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xiam/lread/ast"
	"github.com/xiam/lread/parser"
)

const (
	defaultPrompt  = "> "
	historyFile    = ".lread_history"
	welcomeMessage = "Welcome to lread."
	byeMessage     = "Bye!"
	quitSymbol     = ast.Symbol("quit")
)

// replEnv provides the environment for the repl command.
type replEnv struct {
	flagHistory   string
	flagNoHistory bool
}

// getReplCmd returns the definition of the repl command.
func getReplCmd() *cobra.Command {
	env := &replEnv{}

	ret := &cobra.Command{
		Use:   "repl",
		Short: "Read s-expressions interactively",
		Long: `
Read one s-expression per line and print it back. Malformed lines print a
diagnostic and the prompt continues. Type quit or press Ctrl-D to leave.`,
		Args: cobra.NoArgs,
		RunE: env.runReplCmd,
	}

	ret.Flags().String(keyPrompt, defaultPrompt, "prompt string")
	ret.Flags().StringVar(&env.flagHistory, "history", "", "history file (default ~/"+historyFile+")")
	ret.Flags().BoolVar(&env.flagNoHistory, "no-history", false, "don't load or save history")

	return ret
}

func (e *replEnv) historyPath() string {
	if e.flagNoHistory {
		return ""
	}
	if e.flagHistory != "" {
		return e.flagHistory
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func (e *replEnv) runReplCmd(cmd *cobra.Command, args []string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := e.historyPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(histPath)
			if err != nil {
				glog.Warningf("saving history: %v", err)
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	r := &repl{
		in:      ln,
		out:     cmd.OutOrStdout(),
		prompt:  viper.GetString(keyPrompt),
		opts:    parserOptions(),
		tree:    viper.GetBool(keyTree),
		history: ln.AppendHistory,
	}
	return r.run()
}

// lineReader is implemented by *liner.State.
type lineReader interface {
	Prompt(prompt string) (string, error)
}

type repl struct {
	in     lineReader
	out    io.Writer
	prompt string
	opts   parser.Options
	tree   bool

	history func(line string)
}

// run reads lines until quit or end of input. Parse failures are printed and
// never stop the loop.
func (r *repl) run() error {
	errColor := color.New(color.FgRed)

	fmt.Fprintln(r.out, welcomeMessage)

	for {
		line, err := r.in.Prompt(r.prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, byeMessage)
				return nil
			}
			return errors.Wrap(err, "reading input")
		}

		text := strings.TrimSpace(line)
		if text != "" && r.history != nil {
			r.history(line)
		}

		v, err := parser.ParseWithOptions(text, r.opts)
		if err != nil {
			glog.V(1).Infof("%q: %v", line, err)
			errColor.Fprintf(r.out, "Error: %v\n", err)
			continue
		}

		if ast.Equal(v, quitSymbol) {
			fmt.Fprintln(r.out, byeMessage)
			return nil
		}

		fmt.Fprintln(r.out, v.Encode())
		if r.tree {
			if err := ast.Print(r.out, v); err != nil {
				return errors.Wrap(err, "printing tree")
			}
		}
	}
}
