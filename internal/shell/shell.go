package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/mr-tron/base58"
	"go.uber.org/zap"

	"github.com/neekrasov/smush/internal/compute"
	"github.com/neekrasov/smush/pkg/identity"
	"github.com/neekrasov/smush/pkg/logger"
	"github.com/neekrasov/smush/pkg/smush"
)

var (
	// ErrExit - returned by Execute for the exit command.
	ErrExit = errors.New("exit")

	ErrWriteLineFailed = errors.New("write line failed")

	// ErrInputTooLarge - the payload exceeds the configured limit.
	ErrInputTooLarge = errors.New("input too large")
)

// Codec - encoding operations the shell dispatches to.
type Codec interface {
	Encode(data []byte, e smush.Encoding, q smush.Quality) ([]byte, error)
	Decode(data []byte, e smush.Encoding) ([]byte, error)
	IsEncodingEnabled(e smush.Encoding) bool
}

// Shell - interactive front end over a Codec.
type Shell struct {
	parser   *compute.Parser
	codec    Codec
	maxInput int
}

// Option - configures a Shell.
type Option func(*Shell)

// WithMaxInputSize - rejects payloads larger than size bytes. Zero disables the check.
func WithMaxInputSize(size int) Option {
	return func(s *Shell) {
		s.maxInput = size
	}
}

// New - creates a shell over codec.
func New(codec Codec, opts ...Option) *Shell {
	s := &Shell{
		parser: compute.NewParser(compute.DefaultTrie()),
		codec:  codec,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Execute - runs one query and returns its printable result.
func (s *Shell) Execute(query string) (string, error) {
	cmd, err := s.parser.Parse(query)
	if err != nil {
		return "", err
	}

	switch cmd.Type {
	case compute.CommandENCODE:
		return s.encode(cmd)
	case compute.CommandDECODE:
		return s.decode(cmd)
	case compute.CommandIDENTITY:
		return identity.ComputeIdentity([]byte(cmd.Payload)), nil
	case compute.CommandCODECS:
		return s.codecs(), nil
	case compute.CommandQUALITIES:
		return qualities(), nil
	case compute.CommandHELP:
		return strings.TrimSpace(compute.HelpText), nil
	case compute.CommandEXIT:
		return "", ErrExit
	default:
		return "", fmt.Errorf("%w: unrecognized command", compute.ErrInvalidCommand)
	}
}

func (s *Shell) encode(cmd *compute.Command) (string, error) {
	encoding := smush.ParseEncoding(cmd.Args[0])
	quality, err := smush.ParseQuality(cmd.Args[1])
	if err != nil {
		return "", err
	}

	text := cmd.Payload
	if err = s.checkSize(len(text)); err != nil {
		return "", err
	}

	encoded, err := s.codec.Encode([]byte(text), encoding, quality)
	if err != nil {
		return "", err
	}

	return base58.Encode(encoded), nil
}

func (s *Shell) decode(cmd *compute.Command) (string, error) {
	encoding := smush.ParseEncoding(cmd.Args[0])

	payload, err := base58.Decode(cmd.Args[1])
	if err != nil {
		return "", fmt.Errorf("payload is not base-58: %w", err)
	}
	if err = s.checkSize(len(payload)); err != nil {
		return "", err
	}

	decoded, err := s.codec.Decode(payload, encoding)
	if err != nil {
		return "", err
	}

	if utf8.Valid(decoded) {
		return string(decoded), nil
	}
	return base58.Encode(decoded), nil
}

func (s *Shell) checkSize(n int) error {
	if s.maxInput > 0 && n > s.maxInput {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrInputTooLarge, n, s.maxInput)
	}
	return nil
}

func (s *Shell) codecs() string {
	var b strings.Builder
	for i, e := range smush.Encodings() {
		if i > 0 {
			b.WriteByte('\n')
		}
		state := "disabled"
		if s.codec.IsEncodingEnabled(e) {
			state = "enabled"
		}
		fmt.Fprintf(&b, "%-8s %s", e, state)
	}
	return b.String()
}

func qualities() string {
	tokens := make([]string, 0, len(smush.Qualities()))
	for _, q := range smush.Qualities() {
		tokens = append(tokens, q.String())
	}
	return strings.Join(tokens, " ")
}

// Run - reads queries from rl until exit, interrupt, EOF or ctx cancellation.
func (s *Shell) Run(ctx context.Context, rl *readline.Instance) error {
	defer rl.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		query, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}

			if _, err = rl.Write([]byte(fmt.Sprintf("failed to read stdin: %s\n", err.Error()))); err != nil {
				return errors.Join(ErrWriteLineFailed, err)
			}
			continue
		}

		if strings.TrimSpace(query) == "" {
			continue
		}

		result, err := s.Execute(query)
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			logger.Debug("query failed", zap.String("query", query), zap.Error(err))
			result = "error: " + err.Error()
		}

		if _, err = rl.Write([]byte(result + "\n")); err != nil {
			return errors.Join(ErrWriteLineFailed, err)
		}
	}
}
