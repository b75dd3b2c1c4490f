package s3

import (
	"context"
	"fmt"

	"blobls/core/pager"
	"blobls/core/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultRegion = "us-east-1"

// API defines the S3 operations we need.
type API interface {
	ListBuckets(ctx context.Context, input *awss3.ListBucketsInput, opts ...func(*awss3.Options)) (*awss3.ListBucketsOutput, error)
	ListObjectsV2(ctx context.Context, input *awss3.ListObjectsV2Input, opts ...func(*awss3.Options)) (*awss3.ListObjectsV2Output, error)
}

// Client lists buckets and objects of an AWS S3 account using static keys.
type Client struct {
	api       API
	delimiter string
}

// New creates an S3 client. Account and AccessKey carry the access key ID and the
// secret access key. A custom Endpoint switches to path-style addressing.
func New(cfg storage.Config) (*Client, error) {
	creds, err := cfg.Credentials()
	if err != nil {
		return nil, err
	}

	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	opts := awss3.Options{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(creds.Account(), creds.Key(), ""),
		HTTPClient:  storage.NewHTTPClient(cfg),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return NewWithAPI(awss3.New(opts), cfg.Delimiter), nil
}

// NewWithAPI wraps an existing API implementation.
func NewWithAPI(api API, delimiter string) *Client {
	return &Client{api: api, delimiter: delimiter}
}

// ListContainers fetches one page of buckets.
func (c *Client) ListContainers(ctx context.Context, req pager.Request) (pager.Page[storage.Container], error) {
	input := &awss3.ListBucketsInput{}
	if req.Cursor != "" {
		input.ContinuationToken = aws.String(req.Cursor)
	}
	if req.Prefix != "" {
		input.Prefix = aws.String(req.Prefix)
	}
	if req.PageSize > 0 {
		input.MaxBuckets = aws.Int32(req.PageSize)
	}

	output, err := c.api.ListBuckets(ctx, input)
	if err != nil {
		return pager.Page[storage.Container]{}, fmt.Errorf("list buckets: %w", err)
	}

	page := pager.Page[storage.Container]{
		Items:  make([]storage.Container, 0, len(output.Buckets)),
		Cursor: aws.ToString(output.ContinuationToken),
	}
	for _, b := range output.Buckets {
		page.Items = append(page.Items, storage.Container{
			Name:         aws.ToString(b.Name),
			LastModified: aws.ToTime(b.CreationDate),
		})
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

// ListBlobs fetches one ListObjectsV2 page.
func (b *bucketClient) ListBlobs(ctx context.Context, req pager.Request) (pager.Page[storage.Blob], error) {
	input := &awss3.ListObjectsV2Input{
		Bucket: aws.String(b.bucket),
	}
	if req.Cursor != "" {
		input.ContinuationToken = aws.String(req.Cursor)
	}
	if req.Prefix != "" {
		input.Prefix = aws.String(req.Prefix)
	}
	if req.PageSize > 0 {
		input.MaxKeys = aws.Int32(req.PageSize)
	}
	if b.delimiter != "" {
		input.Delimiter = aws.String(b.delimiter)
	}

	output, err := b.api.ListObjectsV2(ctx, input)
	if err != nil {
		return pager.Page[storage.Blob]{}, fmt.Errorf("list objects in %s: %w", b.bucket, err)
	}

	page := pager.Page[storage.Blob]{
		Items: make([]storage.Blob, 0, len(output.Contents)+len(output.CommonPrefixes)),
	}
	if aws.ToBool(output.IsTruncated) {
		page.Cursor = aws.ToString(output.NextContinuationToken)
	}
	for _, obj := range output.Contents {
		page.Items = append(page.Items, storage.Blob{
			Name: aws.ToString(obj.Key),
			Size: aws.ToInt64(obj.Size),
		})
	}
	for _, p := range output.CommonPrefixes {
		page.Items = append(page.Items, storage.Blob{Name: aws.ToString(p.Prefix), Prefix: true})
	}
	return page, nil
}
