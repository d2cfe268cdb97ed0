package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sirkon/haikulint/internal/haiku"
	"github.com/sirkon/haikulint/internal/report"
)

// errNotHaiku is returned when the checked lines are not a haiku.
var errNotHaiku = errors.New("not a haiku")

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check that lines of a file or of the standard input form a haiku",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, logger, err := opts.session()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			lines, err := readLines(nil, in)
			if err != nil {
				return err
			}

			def := haiku.Definition{Name: name}
			verdict := s.Validator.Validate(def, lines)
			logger.Debug(
				"haiku verdict",
				zap.String("definition", name),
				zap.Stringer("outcome", verdict.Outcome),
				zap.Ints("syllables", verdict.Syllables),
			)

			switch verdict.Outcome {
			case haiku.NotApplicable:
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s is not a poetic name, nothing to check\n", name)
			case haiku.Pass:
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "haiku")
			default:
				var rep report.Reporter
				rep.Report(report.Report{
					RuleCode:   verdict.Rule,
					Definition: name,
					Message:    verdict.Message,
					Syllables:  verdict.Syllables,
				})
				if err := rep.PrintSummary(cmd.OutOrStdout(), nil); err != nil {
					return err
				}
				return errNotHaiku
			}
			if err != nil {
				return fmt.Errorf("print verdict: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "poetic", "name of the definition the lines belong to")

	return cmd
}
