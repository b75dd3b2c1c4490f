package mocks

import (
	"context"

	"blobls/core/pager"
	"blobls/core/storage"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) ListContainers(ctx context.Context, req pager.Request) (pager.Page[storage.Container], error) {
	args := m.Called(ctx, req)
	if page, ok := args.Get(0).(pager.Page[storage.Container]); ok {
		return page, args.Error(1)
	}
	return pager.Page[storage.Container]{}, args.Error(1)
}

func (m *Client) Container(name string) storage.ContainerClient {
	args := m.Called(name)
	return args.Get(0).(storage.ContainerClient)
}

// ContainerClient is a mock implementation of storage.ContainerClient
type ContainerClient struct {
	mock.Mock
	ContainerName string
}

func (m *ContainerClient) Name() string {
	return m.ContainerName
}

func (m *ContainerClient) ListBlobs(ctx context.Context, req pager.Request) (pager.Page[storage.Blob], error) {
	args := m.Called(ctx, req)
	if page, ok := args.Get(0).(pager.Page[storage.Blob]); ok {
		return page, args.Error(1)
	}
	return pager.Page[storage.Blob]{}, args.Error(1)
}

// Cursor matches a request carrying the given continuation cursor.
func Cursor(cursor string) any {
	return mock.MatchedBy(func(req pager.Request) bool {
		return req.Cursor == cursor
	})
}
