// Package azure implements storage.Client on Azure Blob Storage with shared key
// authentication.
//
// Each ListContainers / ListBlobs call maps to exactly one service request: a fresh
// azblob pager is seeded with the caller's marker and advanced once, so the
// continuation cursor stays under the control of core/pager.
//
// Setting storage.endpoint points the client at Azurite or a sovereign cloud.
package azure
