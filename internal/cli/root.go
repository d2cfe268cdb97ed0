// Package cli implements the haiku command: a playground for the syllable
// estimator and the haiku validator outside of Go packages.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sirkon/haikulint/internal/config"
	"github.com/sirkon/haikulint/internal/logging"
)

// Execute runs the haiku command and exits with a non-zero code on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	overrides  config.OverrideTable
	debug      bool
}

// session loads the configuration, applies flag overrides and builds a validation session.
func (o *rootOptions) session() (*config.Session, *zap.Logger, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		cfg, err = config.Load(o.configPath)
		if err != nil {
			return nil, nil, err
		}
	}

	for word, count := range o.overrides {
		if cfg.Overrides == nil {
			cfg.Overrides = config.OverrideTable{}
		}
		cfg.Overrides[word] = count
	}
	if o.debug {
		cfg.Debug = true
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return nil, nil, err
	}

	s, err := cfg.Session()
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("session ready", zap.Int("overrides", s.Overrides.Len()))
	return s, logger, nil
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:          "haiku",
		Short:        "Count syllables and check haiku the way haikulint does",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML configuration file")
	cmd.PersistentFlags().Var(&opts.overrides, "override", "word=count syllable override, can be repeated")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log to stderr")

	cmd.AddCommand(
		newCountCmd(&opts),
		newCheckCmd(&opts),
	)

	return cmd
}

// readLines returns args when there are any, lines of r otherwise.
func readLines(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}

	return lines, nil
}
