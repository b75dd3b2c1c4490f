package enumerate

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"blobls/core/pager"
	"blobls/core/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options tunes a Driver.
type Options struct {
	// Prefix restricts blob listings.
	Prefix string
	// PageSize caps entries per list request.
	PageSize int32
	// Concurrency is the number of containers whose blobs are listed at once.
	// Values below 2 list strictly one container at a time.
	Concurrency int
}

// Driver walks every container of an account and prints its blobs.
type Driver struct {
	client storage.Client
	out    io.Writer
	logger *zap.Logger
	opts   Options
}

// New creates a Driver writing the listing to out.
func New(client storage.Client, out io.Writer, logger *zap.Logger, opts Options) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{client: client, out: out, logger: logger, opts: opts}
}

// Header renders a container name followed by a dash line of the same length.
func Header(name string) string {
	return name + "\n" + strings.Repeat("-", utf8.RuneCountInString(name))
}

// Containers enumerates all container names in service order.
func (d *Driver) Containers(ctx context.Context) ([]string, error) {
	e := storage.ContainerLister(d.client, pager.Options{
		PageSize: d.opts.PageSize,
		Logger:   d.logger,
	}).Enumerate(ctx)

	var names []string
	for batch := range e.Batches() {
		for _, c := range batch {
			names = append(names, c.Name)
		}
	}
	return names, e.Err()
}

// Run prints every container and its blobs. Page failures truncate the affected
// listing and are recorded in the Report; the returned error is reserved for
// failures writing to the output and for cancellation of ctx, which stops the
// walk before the next container.
func (d *Driver) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	report := &Report{}

	names, err := d.Containers(ctx)
	report.ContainersErr = err

	w := bufio.NewWriter(d.out)
	if d.opts.Concurrency > 1 {
		err = d.runParallel(ctx, w, names, report)
	} else {
		err = d.runSequential(ctx, w, names, report)
	}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return report, err
	}

	d.logger.Debug("Enumeration completed",
		zap.Int("containers", len(report.Containers)),
		zap.Int("blobs", report.BlobCount()),
		zap.Bool("truncated", report.Truncated()),
		zap.Duration("execution_time", time.Since(start)),
	)
	return report, nil
}

func (d *Driver) runSequential(ctx context.Context, w *bufio.Writer, names []string, report *Report) error {
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeHeader(w, name); err != nil {
			return err
		}

		res := ContainerResult{Name: name}
		e := d.blobs(ctx, name)
		for batch := range e.Batches() {
			for _, b := range batch {
				if _, err := fmt.Fprintln(w, b.Name); err != nil {
					return fmt.Errorf("write blob name: %w", err)
				}
				res.Blobs++
			}
		}
		res.Err = e.Err()
		report.Containers = append(report.Containers, res)

		if err := w.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}
	}
	return nil
}

// runParallel lists blobs of up to Concurrency containers at once but still writes
// each container block whole and in container order.
func (d *Driver) runParallel(ctx context.Context, w *bufio.Writer, names []string, report *Report) error {
	ctx, cancel := context.WithCancel(ctx)

	type listing struct {
		blobs []string
		err   error
	}
	results := make([]listing, len(names))
	ready := make([]chan struct{}, len(names))
	for i := range ready {
		ready[i] = make(chan struct{})
	}

	var g errgroup.Group
	g.SetLimit(d.opts.Concurrency)

	launched := make(chan struct{})
	go func() {
		defer close(launched)
		for i, name := range names {
			if ctx.Err() != nil {
				return
			}
			g.Go(func() error {
				defer close(ready[i])
				if ctx.Err() != nil {
					return nil
				}
				e := d.blobs(ctx, name)
				for batch := range e.Batches() {
					for _, b := range batch {
						results[i].blobs = append(results[i].blobs, b.Name)
					}
				}
				results[i].err = e.Err()
				return nil
			})
		}
	}()
	defer func() {
		cancel()
		<-launched
		_ = g.Wait()
	}()

	for i, name := range names {
		select {
		case <-ready[i]:
		case <-ctx.Done():
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := writeHeader(w, name); err != nil {
			return err
		}
		for _, blob := range results[i].blobs {
			if _, err := fmt.Fprintln(w, blob); err != nil {
				return fmt.Errorf("write blob name: %w", err)
			}
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}

		report.Containers = append(report.Containers, ContainerResult{
			Name:  name,
			Blobs: len(results[i].blobs),
			Err:   results[i].err,
		})
	}
	return nil
}

func (d *Driver) blobs(ctx context.Context, name string) *pager.Enumeration[storage.Blob] {
	return storage.BlobLister(d.client.Container(name), pager.Options{
		Prefix:   d.opts.Prefix,
		PageSize: d.opts.PageSize,
		Logger:   d.logger.With(zap.String("container", name)),
	}).Enumerate(ctx)
}

func writeHeader(w io.Writer, name string) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", Header(name)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}
