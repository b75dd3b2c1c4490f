// Package s3 implements storage.Client on AWS S3 with static access keys.
//
// Both bucket and object listings are continuation-token based, so each call is a
// single ListBuckets / ListObjectsV2 request.
package s3
