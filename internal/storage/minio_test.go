package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"riskmai/internal/config"
)

func TestValidateConfig(t *testing.T) {
	valid := config.MinIOConfig{Endpoint: "minio:9000", AccessKey: "ak", SecretKey: "sk", Bucket: "documents"}

	tests := []struct {
		name    string
		mutate  func(c *config.MinIOConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(c *config.MinIOConfig) {}},
		{name: "missing endpoint", mutate: func(c *config.MinIOConfig) { c.Endpoint = "" }, wantErr: "endpoint"},
		{name: "missing secret", mutate: func(c *config.MinIOConfig) { c.SecretKey = "" }, wantErr: "credentials"},
		{name: "missing bucket", mutate: func(c *config.MinIOConfig) { c.Bucket = "" }, wantErr: "bucket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewMinIO_InvalidConfig(t *testing.T) {
	s, err := NewMinIO(config.MinIOConfig{})

	assert.Nil(t, s)
	assert.Error(t, err)
}

func TestLocation(t *testing.T) {
	plain := &minioStorage{bucket: "documents", base: baseURL(config.MinIOConfig{Endpoint: "minio:9000", Bucket: "documents"})}
	secure := &minioStorage{bucket: "documents", base: baseURL(config.MinIOConfig{Endpoint: "s3.example.com", Bucket: "documents", UseSSL: true})}

	assert.Equal(t, "http://minio:9000/documents/c1/d1/contract.pdf", plain.Location("c1/d1/contract.pdf"))
	assert.Equal(t, "https://s3.example.com/documents/c1/notice%20v2.eml", secure.Location("c1/notice v2.eml"))
}
