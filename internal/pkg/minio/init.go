package minio

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"Hearth/internal/api/config"
)

// Storage 对象存储客户端
// 桶名与外部访问地址来自注入的配置，不读全局状态
type Storage struct {
	client           *minio.Client
	bucket           string
	externalEndpoint string
}

// New 初始化 MinIO 客户端
func New(cfg config.MinIOConfig) (*Storage, error) {
	var endpoint string
	var useSSL bool
	if cfg.InternalEndpoint != "" {
		endpoint = cfg.InternalEndpoint
		useSSL = cfg.InternalUseSSL
	} else {
		endpoint = cfg.ExternalEndpoint
		useSSL = true
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize minio client: %w", err)
	}

	ctx := context.Background()
	if _, err = client.ListBuckets(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to minio server: %w", err)
	}

	return &Storage{
		client:           client,
		bucket:           cfg.Bucket,
		externalEndpoint: cfg.ExternalEndpoint,
	}, nil
}
