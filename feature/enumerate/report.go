package enumerate

// ContainerResult summarizes the blob listing of one container.
type ContainerResult struct {
	Name  string
	Blobs int
	// Err is the page failure that truncated the listing, if any.
	Err error
}

// Truncated reports whether the blob listing was cut short.
func (r ContainerResult) Truncated() bool {
	return r.Err != nil
}

// Report is the structured outcome of a Run.
type Report struct {
	// Containers holds one entry per listed container, in output order.
	Containers []ContainerResult
	// ContainersErr is the page failure that truncated the container listing, if any.
	ContainersErr error
}

// Truncated reports whether any listing of the run was cut short.
func (r *Report) Truncated() bool {
	return len(r.Errors()) > 0
}

// BlobCount returns the number of blobs printed.
func (r *Report) BlobCount() int {
	n := 0
	for _, c := range r.Containers {
		n += c.Blobs
	}
	return n
}

// Errors returns every page failure of the run, container listing first.
func (r *Report) Errors() []error {
	var out []error
	if r.ContainersErr != nil {
		out = append(out, r.ContainersErr)
	}
	for _, c := range r.Containers {
		if c.Err != nil {
			out = append(out, c.Err)
		}
	}
	return out
}
