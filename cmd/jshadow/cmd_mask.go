package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/jshadow/java/mask"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("jshadow")

func newRootCmd() *cobra.Command {
	var preserveStrings bool
	var outputPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "jshadow [file]",
		Short: "Mask Java code to whitespace, keeping comments in place",
		Long: `Mask Java source to a position-preserving shadow.

Everything outside comments becomes whitespace, comment text is copied
verbatim, and every line break is kept, so the output has the same line
count as the input and tools reading it can report original line and
column numbers.

If a file is provided, it is read from disk; with no argument or with
"-", source is read from stdin. The shadow is written to stdout unless
-o is given.

String and text block contents are masked too unless --preserve-strings
is set. Char literals are always masked, with or without the flag.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				commonlog.Configure(1, nil)
			}

			in, name, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()

			var dst io.Writer = os.Stdout
			lineFlush := false
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", outputPath, err)
				}
				defer f.Close()
				dst = f
			} else {
				// Flush per line on a terminal so output streams.
				lineFlush = isatty.IsTerminal(os.Stdout.Fd())
			}

			log.Infof("masking %s (preserve strings: %v)", name, preserveStrings)

			out := mask.NewWriter(dst)
			out.LineFlush = lineFlush
			var opts []mask.Option
			if preserveStrings {
				opts = append(opts, mask.WithPreservedStrings())
			}
			scanner := mask.NewScanner(mask.NewCharReader(in), out, opts...)
			if err := scanner.Run(); err != nil {
				return fmt.Errorf("mask %s: %w", name, err)
			}
			if err := out.Flush(); err != nil {
				return fmt.Errorf("flush output: %w", err)
			}

			log.Infof("done masking %s", name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&preserveStrings, "preserve-strings", false, "copy string and text block contents verbatim (char literals stay masked)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the shadow to a file instead of stdout")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")

	return cmd
}

func openInput(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", args[0], err)
	}
	return f, args[0], nil
}
