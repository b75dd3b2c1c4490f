package pager

import "context"

// Request describes a single list call against a cursor-based endpoint.
type Request struct {
	// Prefix restricts results to names starting with this value.
	Prefix string
	// Cursor is the continuation cursor of the previous page; empty on the first call.
	Cursor string
	// PageSize caps the number of entries per page. Zero leaves it to the service.
	PageSize int32
}

// Page is one response unit of a listing.
type Page[T any] struct {
	// Items holds the entries returned by this call, in service order.
	Items []T
	// Cursor is the continuation cursor for the next call. Empty means end of stream.
	Cursor string
}

// Last reports whether no further page follows this one.
func (p Page[T]) Last() bool {
	return p.Cursor == ""
}

// Source fetches the next page of a listing given an optional cursor.
type Source[T any] interface {
	FetchPage(ctx context.Context, req Request) (Page[T], error)
}

// SourceFunc adapts a function (often a method value) to Source.
type SourceFunc[T any] func(ctx context.Context, req Request) (Page[T], error)

// FetchPage calls f(ctx, req).
func (f SourceFunc[T]) FetchPage(ctx context.Context, req Request) (Page[T], error) {
	return f(ctx, req)
}
