package pager

import (
	"context"
	"fmt"
	"iter"

	"blobls/core/errs"

	"go.uber.org/zap"
)

// Options configures a Lister.
type Options struct {
	// Name identifies the listing in diagnostics (e.g. "containers").
	Name string
	// Prefix is forwarded on every request.
	Prefix string
	// PageSize is forwarded on every request.
	PageSize int32
	// Logger receives page failure diagnostics. Defaults to zap.L().
	Logger *zap.Logger
}

// Lister enumerates every item reachable from a Source.
// A Lister is immutable once built and may start several enumerations concurrently.
type Lister[T any] struct {
	source Source[T]
	opts   Options
	keep   func(T) bool
}

// New creates a Lister over source.
func New[T any](source Source[T], opts Options) *Lister[T] {
	if opts.Logger == nil {
		opts.Logger = zap.L()
	}
	if opts.Name == "" {
		opts.Name = "listing"
	}
	return &Lister[T]{source: source, opts: opts}
}

// Filter returns a copy of l that only yields items for which keep returns true.
func (l *Lister[T]) Filter(keep func(T) bool) *Lister[T] {
	c := *l
	c.keep = keep
	return &c
}

// Name returns the diagnostic name of the listing.
func (l *Lister[T]) Name() string {
	return l.opts.Name
}

// Enumerate starts a fresh enumeration. Nothing is fetched until the batches are ranged over.
func (l *Lister[T]) Enumerate(ctx context.Context) *Enumeration[T] {
	return &Enumeration[T]{lister: l, ctx: ctx}
}

// Enumeration is one walk over a listing. It is single-use and owned by one consumer.
//
// A page failure ends the walk without surfacing through the sequence: the items
// already yielded stand, the failure is logged, and Err reports it afterwards.
type Enumeration[T any] struct {
	lister   *Lister[T]
	ctx      context.Context
	cursor   string
	consumed bool
	done     bool
	pages    int
	items    int
	err      error
}

// Batches returns the lazy sequence of item batches, one per non-empty page.
// Ranging over it a second time yields nothing.
func (e *Enumeration[T]) Batches() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if e.consumed {
			return
		}
		e.consumed = true

		for !e.done {
			batch, ok := e.next()
			if !ok {
				return
			}
			if len(batch) == 0 {
				continue
			}
			if !yield(batch) {
				return
			}
		}
	}
}

// All drains the enumeration and returns every yielded item in order.
func (e *Enumeration[T]) All() []T {
	var out []T
	for batch := range e.Batches() {
		out = append(out, batch...)
	}
	return out
}

// Err returns the PageFetchFailed error that ended the enumeration, if any.
func (e *Enumeration[T]) Err() error {
	return e.err
}

// Truncated reports whether a page failure cut the enumeration short.
func (e *Enumeration[T]) Truncated() bool {
	return e.err != nil
}

// Complete reports whether the final page (the one without a cursor) was reached.
func (e *Enumeration[T]) Complete() bool {
	return e.done && e.err == nil
}

// Pages returns the number of pages fetched successfully.
func (e *Enumeration[T]) Pages() int {
	return e.pages
}

// Items returns the number of items yielded so far.
func (e *Enumeration[T]) Items() int {
	return e.items
}

func (e *Enumeration[T]) next() ([]T, bool) {
	l := e.lister
	page, err := e.fetch()
	if err != nil {
		e.done = true
		e.err = errs.Wrap(errs.KindPageFetchFailed, fmt.Sprintf("list %s: page %d", l.opts.Name, e.pages+1), err)
		fields := []zap.Field{
			zap.String("listing", l.opts.Name),
			zap.Int("page", e.pages+1),
			zap.Int("items_yielded", e.items),
			zap.Error(err),
		}
		// A canceled walk is the caller's doing, not a service failure.
		if e.ctx.Err() != nil {
			l.opts.Logger.Debug("Listing canceled", fields...)
		} else {
			l.opts.Logger.Warn("Listing truncated after page failure", fields...)
		}
		return nil, false
	}

	e.pages++
	e.cursor = page.Cursor
	if page.Last() {
		e.done = true
	}

	items := page.Items
	if l.keep != nil {
		kept := make([]T, 0, len(items))
		for _, item := range items {
			if l.keep(item) {
				kept = append(kept, item)
			}
		}
		items = kept
	}
	e.items += len(items)

	return items, true
}

func (e *Enumeration[T]) fetch() (Page[T], error) {
	if err := e.ctx.Err(); err != nil {
		return Page[T]{}, err
	}
	l := e.lister
	return l.source.FetchPage(e.ctx, Request{
		Prefix:   l.opts.Prefix,
		Cursor:   e.cursor,
		PageSize: l.opts.PageSize,
	})
}
