package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/reverse-logistics/internal/config"
)

func TestNewS3Uploader_DisabledWithoutBucket(t *testing.T) {
	assert.Nil(t, NewS3Uploader(&config.Config{}))
}

func TestPublicBase(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			name: "explicit",
			cfg:  config.Config{S3Bucket: "logos", S3PublicBaseURL: "https://cdn.example.com/"},
			want: "https://cdn.example.com",
		},
		{
			name: "custom endpoint",
			cfg:  config.Config{S3Bucket: "logos", S3Endpoint: "http://minio:9000"},
			want: "http://minio:9000/logos",
		},
		{
			name: "aws",
			cfg:  config.Config{S3Bucket: "logos", S3Region: "sa-east-1"},
			want: "https://logos.s3.sa-east-1.amazonaws.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicBase(&tt.cfg))
		})
	}
}
