// Command whence is an interactive date recognizer: it reads one text
// fragment per line from stdin and reports the calendar date it denotes.
//
// Sample session:
//
//	$ whence
//	Today is: 2024-08-04
//	> + 10
//	recognized: 2024-08-14
//	> 22-04
//	recognized: 2024-04-22
//	> yesterday
//	recognized: 2024-08-03
//
// The day-offset shorthand is tried before the locale bundle, so "+10" is
// never consumed digit-first by the day-only recognizer.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/katalvlaran/whence"
	"github.com/katalvlaran/whence/caldate"
	"github.com/katalvlaran/whence/scan"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		locale     string
		monthFirst bool
	)

	cmd := &cobra.Command{
		Use:           "whence",
		Short:         "Recognize calendar dates in short text fragments",
		Long:          "Reads fragments like \"13/07/2024\", \"завтра\", \"+ 10\" or \"Wednesday\" from stdin,\none per line, and prints the calendar date each one denotes.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tag, err := language.Parse(locale)
			if err != nil {
				return fmt.Errorf("bad --locale %q: %w", locale, err)
			}
			order := whence.DayFirst
			if monthFirst {
				order = whence.MonthFirst
			}
			parser, err := whence.Versatile(tag, order, nil)
			if err != nil {
				return err
			}

			return repl(cmd, parser)
		},
	}

	cmd.Flags().StringVar(&locale, "locale", "en", "bundle locale (en, ru)")
	cmd.Flags().BoolVar(&monthFirst, "month-first", false, "read 03/12 as March 12th instead of December 3rd")

	return cmd
}

// repl runs the read-parse-print loop. The prompt is suppressed when stdin
// is not a terminal so piped input produces clean output.
func repl(cmd *cobra.Command, parser scan.Parser[caldate.Maybe]) error {
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	bold := color.New(color.Bold)
	good := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)
	bad := color.New(color.FgRed)

	out := cmd.OutOrStdout()
	bold.Fprintf(out, "Today is: %s\n", caldate.Today(nil))

	in := bufio.NewScanner(cmd.InOrStdin())
	for {
		if interactive {
			fmt.Fprint(out, "> ")
		}
		if !in.Scan() {
			break
		}

		rest, got, err := parser(scan.New(in.Text()))
		switch {
		case err != nil:
			bad.Fprintf(out, "unable to recognize the input as a date: %v\n", err)
		case !got.Exists:
			warn.Fprintln(out, "recognized a date pattern, but no such day exists on the calendar")
		case !rest.Done():
			good.Fprintf(out, "recognized: %s", got.Date)
			fmt.Fprintf(out, " (unparsed remainder %q)\n", rest.Rest())
		default:
			good.Fprintf(out, "recognized: %s\n", got.Date)
		}
	}

	return in.Err()
}
