package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/dhamidi/jshadow/java/mask"
	"github.com/spf13/cobra"
)

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract [file]",
		Short: "Print comment text with original line numbers",
		Long: `Print every line of comment text in a Java source file, prefixed
with its original 1-based line number.

Strings are masked before extraction, so a string literal that happens
to contain "//" or "/*" is never reported as a comment.

If a file is provided, it is read from disk; with no argument or with
"-", source is read from stdin.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, name, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()

			comments, err := mask.ExtractComments(in)
			if err != nil {
				return fmt.Errorf("extract %s: %w", name, err)
			}

			w := bufio.NewWriter(os.Stdout)
			for _, c := range comments {
				fmt.Fprintf(w, "%d:%s\n", c.Line, c.Text)
			}
			return w.Flush()
		},
	}
}
