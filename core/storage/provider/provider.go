// Package provider builds the storage.Client selected by configuration.
package provider

import (
	"fmt"

	"blobls/core/errs"
	"blobls/core/storage"
	"blobls/core/storage/azure"
	"blobls/core/storage/minio"
	"blobls/core/storage/s3"
)

// New validates the credentials and creates the client for cfg.Provider.
// Missing credentials fail before any backend is touched.
func New(cfg storage.Config) (storage.Client, error) {
	if _, err := cfg.Credentials(); err != nil {
		return nil, err
	}

	switch cfg.ProviderName() {
	case storage.ProviderAzure:
		c, err := azure.New(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	case storage.ProviderMinIO:
		c, err := minio.New(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	case storage.ProviderS3:
		c, err := s3.New(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, errs.New(errs.KindInvalidInput, fmt.Sprintf("unknown storage provider %q", cfg.Provider))
	}
}
