package azure

import (
	"testing"
	"time"

	"blobls/core/errs"
	"blobls/core/storage"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Well-known development key published for the Azurite emulator.
const azuriteKey = "Eby8vdM02xNOcqFlqUwJPLlmEtlCDXJ1OUzFT50uSRZ6IFsuFq2UVErCz4I6tq/K1SZFPTOtr/KBHBeksoGMGw=="

func TestNew(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		client, err := New(storage.Config{
			Account:   "devstoreaccount1",
			AccessKey: azuriteKey,
			Endpoint:  "http://127.0.0.1:10000/devstoreaccount1",
			Delimiter: "/",
		})
		require.NoError(t, err)
		assert.Equal(t, "/", client.delimiter)

		c := client.Container("logs")
		assert.Equal(t, "logs", c.Name())
	})

	t.Run("MissingAccount", func(t *testing.T) {
		_, err := New(storage.Config{AccessKey: azuriteKey})
		assert.True(t, errs.IsConfigurationMissing(err))
	})

	t.Run("KeyNotBase64", func(t *testing.T) {
		_, err := New(storage.Config{Account: "acct", AccessKey: "not base64!"})
		assert.True(t, errs.IsInvalidInput(err))
	})
}

func TestServiceURL(t *testing.T) {
	assert.Equal(t, "https://acct.blob.core.windows.net/", ServiceURL("", "acct"))
	assert.Equal(t, "http://127.0.0.1:10000/devstoreaccount1/", ServiceURL("http://127.0.0.1:10000/devstoreaccount1", "acct"))
	assert.Equal(t, "https://example.com/", ServiceURL("https://example.com/", "acct"))
}

func TestContainersPage(t *testing.T) {
	modified := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	items := []*service.ContainerItem{
		{Name: to.Ptr("logs"), Properties: &service.ContainerProperties{LastModified: &modified}},
		nil,
		{Name: nil},
		{Name: to.Ptr("images")},
	}

	page := containersPage(items, to.Ptr("marker-2"))

	assert.Equal(t, []storage.Container{{Name: "logs", LastModified: modified}, {Name: "images"}}, page.Items)
	assert.Equal(t, "marker-2", page.Cursor)

	last := containersPage(nil, to.Ptr(""))
	assert.True(t, last.Last())
	assert.True(t, containersPage(nil, nil).Last())
}

func TestBlobsPage(t *testing.T) {
	items := []*container.BlobItem{
		{Name: to.Ptr("x.png"), Properties: &container.BlobProperties{ContentLength: to.Ptr(int64(42))}},
		{Name: to.Ptr("y.png")},
	}
	prefixes := []*container.BlobPrefix{{Name: to.Ptr("thumbs/")}}

	page := blobsPage(items, prefixes, nil)

	assert.Equal(t, []storage.Blob{
		{Name: "x.png", Size: 42},
		{Name: "y.png"},
		{Name: "thumbs/", Prefix: true},
	}, page.Items)
	assert.True(t, page.Last())
}
