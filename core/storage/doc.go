// Package storage wraps the MinIO Go client behind a small interface.
//
// Two parts of the plugin talk to object storage: the s3 backend of the
// correlation map store (core/reconcile.ObjectStore) and the snapshot loader
// when records are referenced as s3://bucket/key. Both work against AWS S3 and
// self-hosted MinIO.
//
// The Client interface keeps those callers testable; core/storage/mocks holds
// a testify mock of it.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
