package azure

import (
	"context"
	"fmt"
	"strings"

	"blobls/core/errs"
	"blobls/core/pager"
	"blobls/core/storage"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/service"
)

// Client lists containers and blobs of an Azure storage account using a shared key.
type Client struct {
	svc       *service.Client
	delimiter string
}

// New creates an Azure client from the configuration.
// The service URL defaults to https://<account>.blob.core.windows.net/.
func New(cfg storage.Config) (*Client, error) {
	creds, err := cfg.Credentials()
	if err != nil {
		return nil, err
	}

	cred, err := service.NewSharedKeyCredential(creds.Account(), creds.Key())
	if err != nil {
		return nil, errs.Wrap(errs.KindInvalidInput, "invalid shared key credential", err)
	}

	svc, err := service.NewClientWithSharedKeyCredential(ServiceURL(cfg.Endpoint, creds.Account()), cred, &service.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Transport: storage.NewHTTPClient(cfg),
		},
	})
	if err != nil {
		return nil, errs.Wrap(errs.KindConnectionFailed, "failed to create azure blob client", err)
	}

	return &Client{svc: svc, delimiter: cfg.Delimiter}, nil
}

// ServiceURL returns endpoint when set, otherwise the public blob endpoint of account.
func ServiceURL(endpoint, account string) string {
	if endpoint != "" {
		if !strings.HasSuffix(endpoint, "/") {
			endpoint += "/"
		}
		return endpoint
	}
	return fmt.Sprintf("https://%s.blob.core.windows.net/", account)
}

// ListContainers fetches one page of containers starting at req.Cursor.
func (c *Client) ListContainers(ctx context.Context, req pager.Request) (pager.Page[storage.Container], error) {
	opts := &service.ListContainersOptions{}
	if req.Cursor != "" {
		opts.Marker = to.Ptr(req.Cursor)
	}
	if req.Prefix != "" {
		opts.Prefix = to.Ptr(req.Prefix)
	}
	if req.PageSize > 0 {
		opts.MaxResults = to.Ptr(req.PageSize)
	}

	resp, err := c.svc.NewListContainersPager(opts).NextPage(ctx)
	if err != nil {
		return pager.Page[storage.Container]{}, fmt.Errorf("list containers: %w", err)
	}

	return containersPage(resp.ContainerItems, resp.NextMarker), nil
}

// Container returns a client scoped to the named container.
func (c *Client) Container(name string) storage.ContainerClient {
	return &containerClient{
		name:      name,
		client:    c.svc.NewContainerClient(name),
		delimiter: c.delimiter,
	}
}

type containerClient struct {
	name      string
	client    *container.Client
	delimiter string
}

func (c *containerClient) Name() string {
	return c.name
}

// ListBlobs fetches one page of blobs. With a delimiter set, virtual folders come
// back as prefix entries.
func (c *containerClient) ListBlobs(ctx context.Context, req pager.Request) (pager.Page[storage.Blob], error) {
	var (
		marker, prefix *string
		maxResults     *int32
	)
	if req.Cursor != "" {
		marker = to.Ptr(req.Cursor)
	}
	if req.Prefix != "" {
		prefix = to.Ptr(req.Prefix)
	}
	if req.PageSize > 0 {
		maxResults = to.Ptr(req.PageSize)
	}

	if c.delimiter == "" {
		resp, err := c.client.NewListBlobsFlatPager(&container.ListBlobsFlatOptions{
			Marker:     marker,
			Prefix:     prefix,
			MaxResults: maxResults,
		}).NextPage(ctx)
		if err != nil {
			return pager.Page[storage.Blob]{}, fmt.Errorf("list blobs in %s: %w", c.name, err)
		}
		var items []*container.BlobItem
		if resp.Segment != nil {
			items = resp.Segment.BlobItems
		}
		return blobsPage(items, nil, resp.NextMarker), nil
	}

	resp, err := c.client.NewListBlobsHierarchyPager(c.delimiter, &container.ListBlobsHierarchyOptions{
		Marker:     marker,
		Prefix:     prefix,
		MaxResults: maxResults,
	}).NextPage(ctx)
	if err != nil {
		return pager.Page[storage.Blob]{}, fmt.Errorf("list blobs in %s: %w", c.name, err)
	}
	var (
		items    []*container.BlobItem
		prefixes []*container.BlobPrefix
	)
	if resp.Segment != nil {
		items = resp.Segment.BlobItems
		prefixes = resp.Segment.BlobPrefixes
	}
	return blobsPage(items, prefixes, resp.NextMarker), nil
}

func containersPage(items []*service.ContainerItem, next *string) pager.Page[storage.Container] {
	page := pager.Page[storage.Container]{
		Items:  make([]storage.Container, 0, len(items)),
		Cursor: deref(next),
	}
	for _, item := range items {
		if item == nil || item.Name == nil {
			continue
		}
		c := storage.Container{Name: *item.Name}
		if item.Properties != nil && item.Properties.LastModified != nil {
			c.LastModified = *item.Properties.LastModified
		}
		page.Items = append(page.Items, c)
	}
	return page
}

func blobsPage(items []*container.BlobItem, prefixes []*container.BlobPrefix, next *string) pager.Page[storage.Blob] {
	page := pager.Page[storage.Blob]{
		Items:  make([]storage.Blob, 0, len(items)+len(prefixes)),
		Cursor: deref(next),
	}
	for _, item := range items {
		if item == nil || item.Name == nil {
			continue
		}
		b := storage.Blob{Name: *item.Name}
		if item.Properties != nil && item.Properties.ContentLength != nil {
			b.Size = *item.Properties.ContentLength
		}
		page.Items = append(page.Items, b)
	}
	for _, p := range prefixes {
		if p == nil || p.Name == nil {
			continue
		}
		page.Items = append(page.Items, storage.Blob{Name: *p.Name, Prefix: true})
	}
	return page
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
