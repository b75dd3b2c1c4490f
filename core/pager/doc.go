// Package pager drives cursor-based listing endpoints to completion.
//
// A Source fetches one Page given the previous page's continuation cursor. A Lister
// turns a Source into lazy, single-use Enumerations whose item batches are exposed
// as an iter.Seq.
//
// # Failure policy
//
// Enumeration is best effort. When a page request fails, the failure is logged as a
// warning, the enumeration stops, and every batch already yielded stands. Ranging
// over the batches never reports the failure; callers that care inspect Err,
// Truncated or Complete once the range is over.
//
// # Usage
//
//	l := pager.New[storage.Container](pager.SourceFunc[storage.Container](client.ListContainers), pager.Options{Name: "containers"})
//	e := l.Enumerate(ctx)
//	for batch := range e.Batches() {
//	    // ...
//	}
//	if e.Truncated() {
//	    // partial results
//	}
package pager
