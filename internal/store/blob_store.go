package store

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"Stowage/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioBlobStore struct {
	client         *minio.Client
	bucket         string
	publicEndpoint string
	useSSL         bool
}

func NewBlobStore(cfg *config.Configuration) (BlobStore, error) {
	client, err := minio.New(cfg.Blob.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("BLOB_ACCESS_KEY"), os.Getenv("BLOB_SECRET_KEY"), ""),
		Secure: cfg.Blob.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	publicEndpoint := cfg.Blob.PublicEndpoint
	if publicEndpoint == "" {
		publicEndpoint = cfg.Blob.Endpoint
	}
	return &MinioBlobStore{
		client:         client,
		bucket:         cfg.Blob.Bucket,
		publicEndpoint: publicEndpoint,
		useSSL:         cfg.Blob.UseSSL,
	}, nil
}

func (s *MinioBlobStore) Put(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, s.bucket, path, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return s.publicURL(path), nil
}

func (s *MinioBlobStore) Delete(ctx context.Context, path string) error {
	return s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{})
}

func (s *MinioBlobStore) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, object.Err
		}
		keys = append(keys, object.Key)
	}
	return keys, nil
}

func (s *MinioBlobStore) publicURL(path string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.publicEndpoint, s.bucket, path)
}
