package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"blobls/core/errs"
	"blobls/core/pager"
	"blobls/core/storage"
	"blobls/core/storage/mocks"
	"blobls/core/storage/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func useClient(t *testing.T, client storage.Client) *storage.Config {
	t.Helper()
	var seen storage.Config
	newClient = func(cfg storage.Config) (storage.Client, error) {
		seen = cfg
		return client, nil
	}
	t.Cleanup(func() { newClient = provider.New })
	return &seen
}

// resetContexts clears the contexts cobra caches on subcommands, so the
// next ExecuteContext call passes its own context down to them.
func resetContexts() {
	for _, c := range RootCmd.Commands() {
		c.SetContext(nil) //nolint:staticcheck
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
		resetContexts()
	})
	err := RootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func account(failSecondPage bool) *mocks.Client {
	client := new(mocks.Client)
	logs := &mocks.ContainerClient{ContainerName: "logs"}

	client.On("ListContainers", mock.Anything, mock.Anything).
		Return(pager.Page[storage.Container]{Items: []storage.Container{{Name: "logs"}}}, nil)
	client.On("Container", "logs").Return(logs)

	first := pager.Page[storage.Blob]{Items: []storage.Blob{{Name: "a.txt"}}}
	if failSecondPage {
		first.Cursor = "next"
		logs.On("ListBlobs", mock.Anything, mocks.Cursor("next")).Return(nil, errors.New("500 internal error"))
	}
	logs.On("ListBlobs", mock.Anything, mocks.Cursor("")).Return(first, nil)
	return client
}

func TestList(t *testing.T) {
	useClient(t, account(false))

	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "\nlogs\n----\na.txt\n", out)
}

func TestRoot_RunsListing(t *testing.T) {
	useClient(t, account(false))

	out, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "\nlogs\n----\na.txt\n", out)
}

func TestList_TruncationIsTolerated(t *testing.T) {
	useClient(t, account(true))

	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "\nlogs\n----\na.txt\n", out)
}

func TestList_StrictFailsOnTruncation(t *testing.T) {
	useClient(t, account(true))
	t.Cleanup(func() { _ = listCmd.Flags().Set("strict", "false") })

	out, err := execute(t, "list", "--strict")
	assert.ErrorIs(t, err, errTruncated)
	assert.Equal(t, "\nlogs\n----\na.txt\n", out)
}

func TestList_FlagsOverrideConfig(t *testing.T) {
	seen := useClient(t, account(false))
	t.Cleanup(func() {
		_ = listCmd.Flags().Set("provider", "")
		_ = listCmd.Flags().Set("delimiter", "")
		_ = listCmd.Flags().Set("prefix", "")
	})

	_, err := execute(t, "list", "--provider", "minio", "--delimiter", "/", "--prefix", "")
	require.NoError(t, err)
	assert.Equal(t, "minio", seen.Provider)
	assert.Equal(t, "/", seen.Delimiter)
}

func TestList_NegativePageSize(t *testing.T) {
	useClient(t, account(false))
	t.Cleanup(func() { _ = containersCmd.Flags().Set("page-size", "0") })

	_, err := execute(t, "containers", "--page-size", "-1")
	assert.ErrorContains(t, err, "page size must be between 0 and")
}

func TestPageSizeFromEnvironmentIsValidated(t *testing.T) {
	for _, v := range []string{"-5", "4294967296"} {
		t.Run(v, func(t *testing.T) {
			client := account(false)
			useClient(t, client)
			t.Setenv("STORAGE_PAGE_SIZE", v)

			out, err := execute(t, "list")
			assert.ErrorContains(t, err, "page size must be between 0 and")
			assert.Empty(t, out)
			client.AssertNotCalled(t, "ListContainers", mock.Anything, mock.Anything)
		})
	}
}

func TestList_InterruptedRunFails(t *testing.T) {
	client := new(mocks.Client)
	logs := &mocks.ContainerClient{ContainerName: "logs"}
	images := &mocks.ContainerClient{ContainerName: "images"}
	useClient(t, client)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client.On("ListContainers", mock.Anything, mock.Anything).
		Return(pager.Page[storage.Container]{Items: []storage.Container{{Name: "logs"}, {Name: "images"}}}, nil)
	client.On("Container", "logs").Return(logs)
	client.On("Container", "images").Return(images)
	logs.On("ListBlobs", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(pager.Page[storage.Blob]{Items: []storage.Blob{{Name: "a.txt"}}}, nil)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs([]string{"list"})
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
		resetContexts()
	})

	err := RootCmd.ExecuteContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "\nlogs\n----\na.txt\n", out.String())
	images.AssertNotCalled(t, "ListBlobs", mock.Anything, mock.Anything)
}

func TestContainers(t *testing.T) {
	useClient(t, account(false))

	out, err := execute(t, "containers")
	require.NoError(t, err)
	assert.Equal(t, "logs\n", out)
}

func TestMissingCredentialsFailBeforeListing(t *testing.T) {
	t.Setenv("STORAGE_ACCOUNT", "")
	t.Setenv("STORAGE_ACCESS_KEY", "")

	out, err := execute(t, "containers")
	assert.True(t, errs.IsConfigurationMissing(err))
	assert.Contains(t, err.Error(), "missing STORAGE_ACCOUNT")
	assert.Empty(t, out)
}
