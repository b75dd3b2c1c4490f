package storage

import (
	"context"
	"time"

	"blobls/core/pager"
)

// Container is a named top-level grouping of blobs.
type Container struct {
	Name         string
	LastModified time.Time
}

// Blob is one entry of a blob listing.
type Blob struct {
	Name string
	Size int64
	// Prefix marks a virtual-folder entry returned by hierarchical listings.
	Prefix bool
}

// IsLeaf reports whether b is an actual stored blob rather than a prefix entry.
func (b Blob) IsLeaf() bool {
	return !b.Prefix
}

// Client is an authenticated handle on a storage account.
// Implementations are read-only after construction and safe for concurrent use.
type Client interface {
	// ListContainers fetches one page of containers.
	ListContainers(ctx context.Context, req pager.Request) (pager.Page[Container], error)
	// Container returns a client scoped to one container without re-authenticating.
	Container(name string) ContainerClient
}

// ContainerClient is a Client scoped to a single container.
type ContainerClient interface {
	// Name returns the container name.
	Name() string
	// ListBlobs fetches one page of blob entries, prefix entries included.
	ListBlobs(ctx context.Context, req pager.Request) (pager.Page[Blob], error)
}

// ContainerLister enumerates the containers of the account.
func ContainerLister(client Client, opts pager.Options) *pager.Lister[Container] {
	if opts.Name == "" {
		opts.Name = "containers"
	}
	return pager.New[Container](pager.SourceFunc[Container](client.ListContainers), opts)
}

// BlobLister enumerates the blobs of one container. Prefix entries are dropped.
func BlobLister(container ContainerClient, opts pager.Options) *pager.Lister[Blob] {
	if opts.Name == "" {
		opts.Name = "blobs/" + container.Name()
	}
	return pager.New[Blob](pager.SourceFunc[Blob](container.ListBlobs), opts).Filter(Blob.IsLeaf)
}
