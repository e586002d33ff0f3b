package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xiam/lread"
	"github.com/xiam/lread/ast"
	"github.com/xiam/lread/parser"
)

// readEnv provides the environment for the read command.
type readEnv struct {
	flagSkipBlank bool
	flagDump      bool
}

// getReadCmd returns the definition of the read command.
func getReadCmd() *cobra.Command {
	env := &readEnv{}

	ret := &cobra.Command{
		Use:   "read [file...]",
		Short: "Read s-expressions from files or stdin",
		Long: `
Parse every line of the given files, or of stdin when no file is given, and
print the value read from each line. Malformed lines are reported on stderr
with their file and line number. The command fails if any line failed.`,
		RunE: env.runReadCmd,
	}
	ret.Flags().BoolVar(&env.flagSkipBlank, "skip-blank", false, "ignore blank lines")
	ret.Flags().BoolVar(&env.flagDump, "dump", false, "dump the Go representation of every value")

	return ret
}

func (e *readEnv) runReadCmd(cmd *cobra.Command, args []string) error {
	b := &batch{
		out:       cmd.OutOrStdout(),
		errOut:    cmd.ErrOrStderr(),
		opts:      parserOptions(),
		skipBlank: e.flagSkipBlank,
		tree:      viper.GetBool(keyTree),
		dump:      e.flagDump,
	}

	if len(args) == 0 {
		return b.finish(b.readAll("<stdin>", cmd.InOrStdin()))
	}

	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			return errors.Wrapf(err, "opening %s", name)
		}
		err = b.readAll(name, f)
		_ = f.Close()
		if err != nil {
			return err
		}
	}
	return b.finish(nil)
}

type batch struct {
	out    io.Writer
	errOut io.Writer
	opts   parser.Options

	skipBlank bool
	tree      bool
	dump      bool

	values   int
	failures int
}

// readAll parses every line of r. Only I/O errors stop it.
func (b *batch) readAll(name string, r io.Reader) error {
	errColor := color.New(color.FgRed)

	options := []lread.ReaderOption{lread.WithParserOptions(b.opts)}
	if b.skipBlank {
		options = append(options, lread.SkipBlankLines())
	}
	rd := lread.NewReader(r, options...)

	for {
		v, err := rd.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			var perr *parser.Error
			if !errors.As(err, &perr) {
				return errors.Wrapf(err, "reading %s", name)
			}
			b.failures++
			errColor.Fprintf(b.errOut, "%s:%d: %v\n", name, rd.Line(), perr)
			continue
		}

		b.values++
		fmt.Fprintln(b.out, v.Encode())
		if b.tree {
			if err := ast.Print(b.out, v); err != nil {
				return errors.Wrap(err, "printing tree")
			}
		}
		if b.dump {
			spew.Fdump(b.out, v)
		}
	}
}

func (b *batch) finish(err error) error {
	if err != nil {
		return err
	}
	glog.V(1).Infof("read %d values, %d failures", b.values, b.failures)
	if b.failures > 0 {
		return errors.Errorf("%d of %d lines failed to parse", b.failures, b.values+b.failures)
	}
	return nil
}
