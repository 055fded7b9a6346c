package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"lazyseq/lazy"
	"lazyseq/sliceutil"
)

// BenchOptions holds flags for the bench command.
type BenchOptions struct {
	*RootOptions
	Size    int
	Take    int
	Workers int
}

// BenchResult reports one comparison of lazy and eager evaluation.
type BenchResult struct {
	Size      int           `json:"size" yaml:"size"`
	Take      int           `json:"take" yaml:"take"`
	Eager     time.Duration `json:"eager_ns" yaml:"eager_ns"`
	Lazy      time.Duration `json:"lazy_ns" yaml:"lazy_ns"`
	Workers   int           `json:"workers" yaml:"workers"`
	Observers time.Duration `json:"observers_ns" yaml:"observers_ns"`
}

func (r BenchResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "size: %d take: %d\neager: %v\nlazy: %v\nobservers: %d in %v\n",
		r.Size, r.Take, r.Eager, r.Lazy, r.Workers, r.Observers)
	return err
}

// NewBenchCommand creates the bench command.
func NewBenchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BenchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare lazy and eager evaluation",
		Long: `Run filter, map and take over the same input eagerly on slices and lazily on a
persistent sequence, then fold one shared snapshot from several goroutines at once.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Size < 0 || opts.Take < 0 || opts.Workers <= 0 {
				return WrapExitError(ExitCommandError, "invalid flags",
					fmt.Errorf("size and take must not be negative, workers must be positive"))
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			result, err := runBench(ctx, opts, cmd.ErrOrStderr())
			if err != nil {
				return WrapExitError(ExitFailure, "bench failed", err)
			}
			return writeResult(cmd.OutOrStdout(), opts.Format, result)
		},
	}

	cmd.Flags().IntVar(&opts.Size, "size", 100_000, "number of input elements")
	cmd.Flags().IntVar(&opts.Take, "take", 10, "number of results kept")
	cmd.Flags().IntVar(&opts.Workers, "workers", 4, "concurrent observers of the shared snapshot")

	return cmd
}

func even(v int) bool { return v%2 == 0 }

func square(v int) int { return v * v }

func runBench(ctx context.Context, opts *BenchOptions, logw io.Writer) (BenchResult, error) {
	logger := newLogger(opts.RootOptions, logw)
	result := BenchResult{Size: opts.Size, Take: opts.Take, Workers: opts.Workers}

	data := make([]int, opts.Size)
	for i := range data {
		data[i] = i
	}

	start := time.Now()
	eager := sliceutil.Clamp(sliceutil.Map(sliceutil.Filter(data, even), square), 0, opts.Take)
	result.Eager = time.Since(start)

	start = time.Now()
	shared := lazy.FromSlice(data, lazy.WithLogger[int](logger))
	lazyOut, err := lazy.Map(shared.Filter(even), square).Take(opts.Take).ToSlice()
	if err != nil {
		return result, err
	}
	result.Lazy = time.Since(start)

	if !slices.Equal(eager, lazyOut) {
		return result, fmt.Errorf("lazy result %v differs from eager result %v", lazyOut, eager)
	}

	start = time.Now()
	sums := make([]int, opts.Workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range opts.Workers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			shifted := lazy.Map(shared, func(v int) int { return v + w })
			total, err := lazy.Fold(shifted, 0, func(acc, v int) int { return acc + v })
			if err != nil {
				return fmt.Errorf("observer %d: %w", w, err)
			}
			sums[w] = total
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}
	result.Observers = time.Since(start)

	for w, sum := range sums {
		if want := sums[0] + w*opts.Size; sum != want {
			return result, fmt.Errorf("observer %d folded %d, want %d", w, sum, want)
		}
	}
	logger.Debug("bench finished", "size", opts.Size, "workers", opts.Workers)
	return result, nil
}
