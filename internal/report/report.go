package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/neekrasov/smush/pkg/logger"
	"github.com/neekrasov/smush/pkg/smush"
)

// ErrRoundTrip - a codec returned different bytes than it was given.
var ErrRoundTrip = errors.New("round trip mismatch")

// Codec - operations measured by the report.
type Codec interface {
	Encode(data []byte, e smush.Encoding, q smush.Quality) ([]byte, error)
	Decode(data []byte, e smush.Encoding) ([]byte, error)
	IsEncodingEnabled(e smush.Encoding) bool
}

// Row - one measured encoding at one quality.
type Row struct {
	Encoding   smush.Encoding
	Quality    smush.Quality
	Size       int
	EncodeTime time.Duration
	DecodeTime time.Duration
}

// Delta - percentage by which the encoded size is smaller than the input.
// Negative values mean the output grew.
func (r Row) Delta(inputSize int) float64 {
	if inputSize == 0 {
		return 0
	}
	return float64(inputSize-r.Size) / float64(inputSize) * 100
}

type options struct {
	encodings   []smush.Encoding
	qualities   []smush.Quality
	concurrency int
}

// Option - configures Build.
type Option func(*options)

// WithEncodings - measures only the given encodings. Disabled ones are skipped.
func WithEncodings(encodings ...smush.Encoding) Option {
	return func(o *options) {
		o.encodings = encodings
	}
}

// WithQualities - measures the given qualities instead of Default and Maximum.
func WithQualities(qualities ...smush.Quality) Option {
	return func(o *options) {
		o.qualities = qualities
	}
}

// WithConcurrency - bounds the number of codec calls in flight.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

type job struct {
	encoding smush.Encoding
	quality  smush.Quality
}

// Build - encodes and decodes data with every enabled encoding and quality,
// verifying each round trip. Rows follow encoding then quality order.
func Build(ctx context.Context, codec Codec, data []byte, opts ...Option) ([]Row, error) {
	o := options{
		encodings:   smush.Encodings(),
		qualities:   []smush.Quality{smush.Default, smush.Maximum},
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&o)
	}

	var jobs []job
	for _, e := range o.encodings {
		if !codec.IsEncodingEnabled(e) {
			logger.Debug("skip disabled encoding", zap.Stringer("encoding", e))
			continue
		}
		for _, q := range o.qualities {
			jobs = append(jobs, job{encoding: e, quality: q})
		}
	}

	rows := make([]Row, len(jobs))
	group, ctx := errgroup.WithContext(ctx)
	if o.concurrency > 0 {
		group.SetLimit(o.concurrency)
	}

	for i, j := range jobs {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			row, err := measure(codec, data, j)
			if err != nil {
				return err
			}

			rows[i] = row
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}

func measure(codec Codec, data []byte, j job) (Row, error) {
	start := time.Now()
	encoded, err := codec.Encode(data, j.encoding, j.quality)
	if err != nil {
		return Row{}, fmt.Errorf("encode %s at %s: %w", j.encoding, j.quality, err)
	}
	encodeTime := time.Since(start)

	start = time.Now()
	decoded, err := codec.Decode(encoded, j.encoding)
	if err != nil {
		return Row{}, fmt.Errorf("decode %s at %s: %w", j.encoding, j.quality, err)
	}
	decodeTime := time.Since(start)

	if !bytes.Equal(data, decoded) {
		return Row{}, fmt.Errorf("%w: %s at %s", ErrRoundTrip, j.encoding, j.quality)
	}

	return Row{
		Encoding:   j.encoding,
		Quality:    j.quality,
		Size:       len(encoded),
		EncodeTime: encodeTime,
		DecodeTime: decodeTime,
	}, nil
}

// Write - prints rows as an aligned table comparing each size with the input.
func Write(w io.Writer, inputSize int, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "ENCODING\tQUALITY\tSIZE\tDELTA\tENCODE\tDECODE\n")
	fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n", smush.Identity, "-", inputSize, "-", "-", "-")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
			r.Encoding, r.Quality, r.Size, deltaText(r.Delta(inputSize)),
			r.EncodeTime.Round(time.Microsecond), r.DecodeTime.Round(time.Microsecond),
		)
	}

	return tw.Flush()
}

func deltaText(delta float64) string {
	if delta >= 0 {
		return fmt.Sprintf("%.2f%% smaller", delta)
	}
	return fmt.Sprintf("%.2f%% larger", -delta)
}
