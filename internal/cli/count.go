package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sirkon/haikulint/internal/haiku"
)

func newCountCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "count [line...]",
		Short: "Print the syllable count of every line",
		Long: `Print the syllable count of every line given as an argument, or of every
line of the standard input when there are no arguments. Lines are normalized
first, just like comment lines are.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, logger, err := opts.session()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			lines, err := readLines(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			for _, line := range lines {
				normalized := haiku.Normalize(line)
				count := s.Estimator.Count(normalized)
				logger.Debug("counted", zap.String("line", line), zap.String("normalized", normalized), zap.Int("syllables", count))

				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", count, line); err != nil {
					return fmt.Errorf("print count: %w", err)
				}
			}

			return nil
		},
	}
}
