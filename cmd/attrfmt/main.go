package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"github.com/attrfmt/attrfmt"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		errorsPath string
		noColor    bool
		bufSize    int
	)

	cmd := &cobra.Command{
		Use:   "attrfmt FORMAT [ARG...]",
		Short: "Render an attrfmt format string",
		Long: "Renders FORMAT with the given arguments. Attribute escapes (%F, %B, %C)\n" +
			"are translated to ANSI colors unless --no-color is set.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := &attrfmt.Formatter{Errors: attrfmt.DefaultErrors()}
			if errorsPath != "" {
				t, err := attrfmt.LoadErrorTable(errorsPath)
				if err != nil {
					return err
				}
				f.Errors = t
			}

			fmtArgs := coerce(args[1:])

			if bufSize > 0 {
				buf := make([]byte, bufSize)
				n, err := f.Snprintf(buf, args[0], fmtArgs...)
				if err != nil {
					return err
				}
				stored := n
				if stored > bufSize-1 {
					stored = bufSize - 1
				}
				fmt.Println(string(buf[:stored]))
				if n > stored {
					fmt.Fprintf(os.Stderr, "truncated: stored %d of %d characters\n", stored, n)
				}
				return nil
			}

			if noColor {
				f.Fprintf(os.Stdout, args[0], fmtArgs...)
			} else {
				f.Fprintfa(colorable.NewColorableStdout(), args[0], fmtArgs...)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&errorsPath, "errors", "", "YAML error-code table for %e")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "drop attribute escapes instead of emitting ANSI colors")
	cmd.Flags().IntVar(&bufSize, "buffer", 0, "format through a bounded buffer of this size")
	return cmd
}

// coerce turns integer-looking command line arguments into integers so
// the numeric conversions see properly typed values; everything else
// stays a string.
func coerce(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		if n, err := strconv.ParseInt(a, 0, 64); err == nil {
			out[i] = n
			continue
		}
		out[i] = a
	}
	return out
}
