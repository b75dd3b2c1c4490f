package minio

import (
	"context"
	"fmt"
	"strings"

	"blobls/core/errs"
	"blobls/core/pager"
	"blobls/core/storage"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// API is the subset of minio.Core used for listing.
type API interface {
	ListBuckets(ctx context.Context) ([]miniogo.BucketInfo, error)
	ListObjectsV2(bucketName, objectPrefix, startAfter, continuationToken, delimiter string, maxkeys int) (miniogo.ListBucketV2Result, error)
}

// Client lists buckets and objects of a MinIO or S3-compatible server.
type Client struct {
	api       API
	delimiter string
}

// New creates a MinIO client based on the configuration.
// Account and AccessKey carry the access key ID and the secret key.
func New(cfg storage.Config) (*Client, error) {
	creds, err := cfg.Credentials()
	if err != nil {
		return nil, err
	}
	if cfg.Endpoint == "" {
		return nil, errs.Missing("STORAGE_ENDPOINT")
	}

	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	core, err := miniogo.NewCore(endpoint, &miniogo.Options{
		Creds:     credentials.NewStaticV4(creds.Account(), creds.Key(), ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: storage.NewTransport(cfg),
	})
	if err != nil {
		return nil, errs.Wrap(errs.KindConnectionFailed, "failed to create minio client", err)
	}

	return NewWithAPI(core, cfg.Delimiter), nil
}

// NewWithAPI wraps an existing API implementation.
func NewWithAPI(api API, delimiter string) *Client {
	return &Client{api: api, delimiter: delimiter}
}

// ListContainers returns the buckets as a single page; the bucket listing is not paginated.
func (c *Client) ListContainers(ctx context.Context, req pager.Request) (pager.Page[storage.Container], error) {
	buckets, err := c.api.ListBuckets(ctx)
	if err != nil {
		return pager.Page[storage.Container]{}, fmt.Errorf("list buckets: %w", err)
	}

	page := pager.Page[storage.Container]{Items: make([]storage.Container, 0, len(buckets))}
	for _, b := range buckets {
		if !strings.HasPrefix(b.Name, req.Prefix) {
			continue
		}
		page.Items = append(page.Items, storage.Container{Name: b.Name, LastModified: b.CreationDate})
	}
	return page, nil
}

// Container returns a client scoped to the named bucket.
func (c *Client) Container(name string) storage.ContainerClient {
	return &bucketClient{api: c.api, bucket: name, delimiter: c.delimiter}
}

type bucketClient struct {
	api       API
	bucket    string
	delimiter string
}

func (b *bucketClient) Name() string {
	return b.bucket
}

// ListBlobs issues one ListObjectsV2 request with the continuation token in req.Cursor.
func (b *bucketClient) ListBlobs(ctx context.Context, req pager.Request) (pager.Page[storage.Blob], error) {
	// The Core API does not take a context.
	if err := ctx.Err(); err != nil {
		return pager.Page[storage.Blob]{}, err
	}

	res, err := b.api.ListObjectsV2(b.bucket, req.Prefix, "", req.Cursor, b.delimiter, int(req.PageSize))
	if err != nil {
		return pager.Page[storage.Blob]{}, fmt.Errorf("list objects in %s: %w", b.bucket, err)
	}

	return objectsPage(res), nil
}

func objectsPage(res miniogo.ListBucketV2Result) pager.Page[storage.Blob] {
	page := pager.Page[storage.Blob]{
		Items: make([]storage.Blob, 0, len(res.Contents)+len(res.CommonPrefixes)),
	}
	if res.IsTruncated {
		page.Cursor = res.NextContinuationToken
	}
	for _, obj := range res.Contents {
		page.Items = append(page.Items, storage.Blob{Name: obj.Key, Size: obj.Size})
	}
	for _, p := range res.CommonPrefixes {
		page.Items = append(page.Items, storage.Blob{Name: p.Prefix, Prefix: true})
	}
	return page
}
