package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/philipp01105/lcl2log/config"
	"github.com/philipp01105/lcl2log/core"
	"github.com/philipp01105/lcl2log/handler/consolehandler"
	"github.com/philipp01105/lcl2log/handler/filehandler"
	"github.com/philipp01105/lcl2log/internal/diag"
	"github.com/philipp01105/lcl2log/logger"
)

const closeTimeout = 5 * time.Second

type rootOptions struct {
	configPath   string
	documentsDir string
}

func newRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "lcl2log",
		Short:         "Inspect and maintain the LCL2 application log",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVarP(&opts.documentsDir, "documents-dir", "d", "", "documents directory holding LCL2.txt")

	rootCmd.AddCommand(
		newPathCmd(opts),
		newShowCmd(opts),
		newClearCmd(opts),
		newStatsCmd(opts),
		newWriteCmd(opts),
	)
	return rootCmd
}

func (o *rootOptions) load() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if o.documentsDir != "" {
		cfg.DocumentsDir = o.documentsDir
	}
	return cfg, nil
}

// open builds a Logger whose standard output goes to the command's writer.
func (o *rootOptions) open(cmd *cobra.Command) (*logger.Logger, error) {
	cfg, err := o.load()
	if err != nil {
		return nil, err
	}

	fh, err := filehandler.NewFileHandler(filehandler.FileConfig{
		Dir:          cfg.DocumentsDir,
		Reporter:     diag.NewZapReporter(cmd.ErrOrStderr()),
		WriteTimeout: time.Duration(cfg.WriteTimeout),
	})
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return logger.NewBuilder().
		WithLevel(cfg.Level).
		WithStdout(cfg.StdoutEnabled()).
		WithConsole(consolehandler.ConsoleConfig{Writer: cmd.OutOrStdout()}).
		WithFileHandler(fh).
		Build(), nil
}

func closeLogger(l *logger.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err := l.Close(ctx); err != nil {
		return fmt.Errorf("flush log: %w", err)
	}
	return nil
}

// withLogger opens a Logger, runs fn and closes the Logger, returning the
// errors of both.
func (o *rootOptions) withLogger(cmd *cobra.Command, fn func(l *logger.Logger) error) error {
	l, err := o.open(cmd)
	if err != nil {
		return err
	}
	return multierr.Append(fn(l), closeLogger(l))
}

func newPathCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the log file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withLogger(cmd, func(l *logger.Logger) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), l.LogFilePath())
				return err
			})
		},
	}
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the log file content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withLogger(cmd, func(l *logger.Logger) error {
				_, err := fmt.Fprint(cmd.OutOrStdout(), l.GetLogs())
				return err
			})
		},
	}
}

func newClearCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withLogger(cmd, func(l *logger.Logger) error {
				l.ClearLogs()
				return nil
			})
		},
	}
}

func newWriteCmd(opts *rootOptions) *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "write MESSAGE [ARGS...]",
		Short: "Append one entry to the log",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := core.ParseLevel(level)
			if err != nil {
				return err
			}

			return opts.withLogger(cmd, func(l *logger.Logger) error {
				extra := make([]any, 0, len(args)-1)
				for _, a := range args[1:] {
					extra = append(extra, a)
				}
				l.Log(lvl, args[0], extra...)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&level, "level", "l", "info", "entry level (debug, info, warn, error)")
	return cmd
}
