package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/neekrasov/smush/internal/application"
	"github.com/neekrasov/smush/internal/report"
	"github.com/neekrasov/smush/pkg/identity"
	"github.com/neekrasov/smush/pkg/smush"
)

type appFunc func() *application.Application

func newEncodeCmd(getApp appFunc) *cobra.Command {
	var encoding, quality, input, output string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode input with the given encoding and quality",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			e := app.DefaultEncoding()
			if encoding != "" {
				e = smush.ParseEncoding(encoding)
			}

			q := app.DefaultQuality()
			if quality != "" {
				var err error
				if q, err = smush.ParseQuality(quality); err != nil {
					return err
				}
			}

			data, err := readInput(cmd, app, input)
			if err != nil {
				return err
			}

			encoded, err := app.Router().Encode(data, e, q)
			if err != nil {
				return err
			}

			return writeOutput(cmd, output, encoded)
		},
	}

	cmd.Flags().StringVarP(&encoding, "encoding", "e", "", "Encoding token (default from config)")
	cmd.Flags().StringVarP(&quality, "quality", "q", "", "Quality: default, level1..level9, maximum")
	cmd.Flags().StringVarP(&input, "input", "i", "-", "Input file, - for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output file, - for stdout")
	return cmd
}

func newDecodeCmd(getApp appFunc) *cobra.Command {
	var encoding, input, output string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode input produced by encode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			e := app.DefaultEncoding()
			if encoding != "" {
				e = smush.ParseEncoding(encoding)
			}

			data, err := readInput(cmd, app, input)
			if err != nil {
				return err
			}

			decoded, err := app.Router().Decode(data, e)
			if err != nil {
				return err
			}

			return writeOutput(cmd, output, decoded)
		},
	}

	cmd.Flags().StringVarP(&encoding, "encoding", "e", "", "Encoding token (default from config)")
	cmd.Flags().StringVarP(&input, "input", "i", "-", "Input file, - for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output file, - for stdout")
	return cmd
}

func newCodecsCmd(getApp appFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "codecs",
		Short: "List encodings and whether they are enabled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			router := getApp().Router()

			linked := make(map[smush.Encoding]bool)
			for _, e := range smush.LinkedEncodings() {
				linked[e] = true
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "ENCODING\tLINKED\tENABLED\n")
			for _, e := range smush.Encodings() {
				fmt.Fprintf(tw, "%s\t%t\t%t\n", e, linked[e], router.IsEncodingEnabled(e))
			}
			return tw.Flush()
		},
	}
}

func newIdentityCmd(getApp appFunc) *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "identity [file]",
		Short: "Print the base-58 content identity of a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := identity.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}

			var id identity.Identity
			if len(args) == 1 {
				id, err = identity.ComputeFileIdentity(args[0], identity.WithAlgorithm(a))
			} else {
				id, err = identity.ComputeReaderIdentity(cmd.InOrStdin(), identity.WithAlgorithm(a))
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), id.Text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(identity.SHA256),
		"Digest: sha256, blake2b-256, sha3-256")
	return cmd
}

func newReportCmd(getApp appFunc) *cobra.Command {
	var (
		qualities   []string
		encodings   []string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "report [file]",
		Short: "Compare encoded sizes and timings across codecs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			data, err := readInput(cmd, app, input)
			if err != nil {
				return err
			}

			opts := []report.Option{report.WithConcurrency(concurrency)}
			if len(qualities) > 0 {
				qs := make([]smush.Quality, 0, len(qualities))
				for _, token := range qualities {
					q, err := smush.ParseQuality(token)
					if err != nil {
						return err
					}
					qs = append(qs, q)
				}
				opts = append(opts, report.WithQualities(qs...))
			}
			if len(encodings) > 0 {
				es := make([]smush.Encoding, 0, len(encodings))
				for _, token := range encodings {
					es = append(es, smush.ParseEncoding(token))
				}
				opts = append(opts, report.WithEncodings(es...))
			}

			rows, err := report.Build(cmd.Context(), app.Router(), data, opts...)
			if err != nil {
				return err
			}

			return report.Write(cmd.OutOrStdout(), len(data), rows)
		},
	}

	cmd.Flags().StringSliceVarP(&qualities, "quality", "q", nil, "Qualities to measure (default: default,maximum)")
	cmd.Flags().StringSliceVarP(&encodings, "encoding", "e", nil, "Encodings to measure (default: all enabled)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Codec calls in flight (default: GOMAXPROCS)")
	return cmd
}

func newShellCmd(getApp appFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "smush> ",
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
			})
			if err != nil {
				return fmt.Errorf("failed to start shell: %w", err)
			}

			err = getApp().Shell().Run(cmd.Context(), rl)
			if isCanceled(err) {
				return nil
			}
			return err
		},
	}
}
