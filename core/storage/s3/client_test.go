package s3_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"blobls/core/errs"
	"blobls/core/pager"
	"blobls/core/storage"
	"blobls/core/storage/s3"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI records inputs and serves canned outputs keyed by continuation token.
type fakeAPI struct {
	buckets      map[string]*awss3.ListBucketsOutput
	objects      map[string]*awss3.ListObjectsV2Output
	err          error
	bucketInputs []*awss3.ListBucketsInput
	objectInputs []*awss3.ListObjectsV2Input
}

func (f *fakeAPI) ListBuckets(_ context.Context, input *awss3.ListBucketsInput, _ ...func(*awss3.Options)) (*awss3.ListBucketsOutput, error) {
	f.bucketInputs = append(f.bucketInputs, input)
	if f.err != nil {
		return nil, f.err
	}
	return f.buckets[aws.ToString(input.ContinuationToken)], nil
}

func (f *fakeAPI) ListObjectsV2(_ context.Context, input *awss3.ListObjectsV2Input, _ ...func(*awss3.Options)) (*awss3.ListObjectsV2Output, error) {
	f.objectInputs = append(f.objectInputs, input)
	if f.err != nil {
		return nil, f.err
	}
	return f.objects[aws.ToString(input.ContinuationToken)], nil
}

func TestNew(t *testing.T) {
	client, err := s3.New(storage.Config{Account: "AKIA", AccessKey: "secret", Endpoint: "http://localhost:4566"})
	require.NoError(t, err)
	assert.NotNil(t, client)

	_, err = s3.New(storage.Config{Account: "AKIA"})
	assert.True(t, errs.IsConfigurationMissing(err))
}

func TestListContainers(t *testing.T) {
	created := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	api := &fakeAPI{buckets: map[string]*awss3.ListBucketsOutput{
		"": {
			Buckets:           []types.Bucket{{Name: aws.String("logs"), CreationDate: &created}},
			ContinuationToken: aws.String("b2"),
		},
		"b2": {Buckets: []types.Bucket{{Name: aws.String("images")}}},
	}}
	client := s3.NewWithAPI(api, "")

	first, err := client.ListContainers(context.Background(), pager.Request{PageSize: 1})
	require.NoError(t, err)
	assert.Equal(t, []storage.Container{{Name: "logs", LastModified: created}}, first.Items)
	assert.Equal(t, "b2", first.Cursor)
	assert.Equal(t, int32(1), aws.ToInt32(api.bucketInputs[0].MaxBuckets))
	assert.Nil(t, api.bucketInputs[0].ContinuationToken)

	second, err := client.ListContainers(context.Background(), pager.Request{Cursor: first.Cursor})
	require.NoError(t, err)
	assert.Equal(t, []storage.Container{{Name: "images"}}, second.Items)
	assert.True(t, second.Last())
}

func TestListBlobs(t *testing.T) {
	api := &fakeAPI{objects: map[string]*awss3.ListObjectsV2Output{
		"": {
			Contents:              []types.Object{{Key: aws.String("x.png"), Size: aws.Int64(5)}},
			CommonPrefixes:        []types.CommonPrefix{{Prefix: aws.String("thumbs/")}},
			IsTruncated:           aws.Bool(true),
			NextContinuationToken: aws.String("o2"),
		},
		"o2": {
			Contents:    []types.Object{{Key: aws.String("y.png")}},
			IsTruncated: aws.Bool(false),
		},
	}}
	images := s3.NewWithAPI(api, "/").Container("images")
	assert.Equal(t, "images", images.Name())

	first, err := images.ListBlobs(context.Background(), pager.Request{Prefix: "p"})
	require.NoError(t, err)
	assert.Equal(t, []storage.Blob{{Name: "x.png", Size: 5}, {Name: "thumbs/", Prefix: true}}, first.Items)
	assert.Equal(t, "o2", first.Cursor)

	in := api.objectInputs[0]
	assert.Equal(t, "images", aws.ToString(in.Bucket))
	assert.Equal(t, "/", aws.ToString(in.Delimiter))
	assert.Equal(t, "p", aws.ToString(in.Prefix))
	assert.Nil(t, in.MaxKeys)

	second, err := images.ListBlobs(context.Background(), pager.Request{Cursor: first.Cursor})
	require.NoError(t, err)
	assert.Equal(t, []storage.Blob{{Name: "y.png"}}, second.Items)
	assert.True(t, second.Last())
}

func TestListBlobs_Error(t *testing.T) {
	api := &fakeAPI{err: errors.New("NoSuchBucket")}

	_, err := s3.NewWithAPI(api, "").Container("gone").ListBlobs(context.Background(), pager.Request{})
	assert.ErrorContains(t, err, "list objects in gone")
	assert.ErrorContains(t, err, "NoSuchBucket")
}
