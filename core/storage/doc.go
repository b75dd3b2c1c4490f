// Package storage provides the object storage abstraction used by blobls.
//
// It defines the Container and Blob entities, the static Credentials read from
// configuration, and the Client / ContainerClient capability interfaces that each
// backend (core/storage/azure, core/storage/minio, core/storage/s3) implements with
// one "fetch a page given a cursor" call per entity.
//
// # Listers
//
// ContainerLister and BlobLister are the two instantiations of pager.Lister used by
// the tool. BlobLister filters out virtual-folder prefix entries.
//
// # Client Interface
//
// The Client interface makes it easy to mock storage interactions for unit testing
// (see core/storage/mocks).
//
// # Usage
//
//	client, err := provider.New(cfg.Storage)
//	containers := storage.ContainerLister(client, pager.Options{}).Enumerate(ctx).All()
package storage
