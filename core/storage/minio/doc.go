// Package minio implements storage.Client on MinIO and other S3-compatible servers.
//
// Buckets map to containers and objects to blobs. Object listing goes through the
// minio-go Core API so the continuation token is driven by core/pager rather than
// hidden behind the client's channel-based ListObjects.
package minio
