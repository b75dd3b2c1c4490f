// Package enumerate implements the two-level account walk: containers, then the
// blobs of each container.
//
// # Output
//
// For every container, in the order the service returns them:
//
//	(blank line)
//	logs
//	----
//	a.txt
//	b.txt
//
// Virtual-folder prefix entries never appear.
//
// # Failures
//
// A failed page request truncates only the listing it belongs to. The run carries
// on with the next container and reports success; the Report returned by Run
// records which listings were cut short so that callers can choose to fail.
//
// # Concurrency
//
// With Options.Concurrency above one, blob listings of several containers run in
// parallel. Output blocks are still emitted whole and in container order.
package enumerate
