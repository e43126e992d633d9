package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/neekrasov/smush/internal/application"
	"github.com/neekrasov/smush/internal/config"
	"github.com/neekrasov/smush/pkg/logger"
)

var (
	version   = "dev"
	buildTime = "unknown"
	gitHash   = "unset"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		app        *application.Application
	)

	rootCmd := &cobra.Command{
		Use:           "smush",
		Short:         "Encode and decode data with many compression codecs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}

			cfg, err := config.GetConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to get config: %w", err)
			}

			app, err = application.New(&cfg)
			if err != nil {
				return fmt.Errorf("application error: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "smush.yml", "Path to config file")

	getApp := func() *application.Application { return app }

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "smush version %s\nbuild time: %s\nhash: %s\n",
					version, buildTime, gitHash)
			},
		},
		newEncodeCmd(getApp),
		newDecodeCmd(getApp),
		newCodecsCmd(getApp),
		newIdentityCmd(getApp),
		newReportCmd(getApp),
		newShellCmd(getApp),
	)

	return rootCmd
}

// openInput - "-" or an empty path means stdin.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}

// readInput - reads the whole input, enforcing limits.max_input_size.
func readInput(cmd *cobra.Command, app *application.Application, path string) ([]byte, error) {
	in, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	var r io.Reader = in
	if limit := app.MaxInputSize(); limit > 0 {
		r = io.LimitReader(in, int64(limit)+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if err = app.CheckInput(len(data)); err != nil {
		return nil, err
	}

	return data, nil
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}
