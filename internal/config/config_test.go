package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PHOTO_BUCKET", "")
	t.Setenv("OBJECT_STORE", "")
	t.Setenv("DOCUMENT_STORE", "")
	t.Setenv("SERVING_URL_BASE", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")

	cfg := Load()

	assert.Equal(t, "photos", cfg.PhotoBucket)
	assert.Equal(t, BackendMemory, cfg.ObjectStore)
	assert.Equal(t, BackendMemory, cfg.DocumentStore)
	assert.Equal(t, "/blobs", cfg.ServingURLBase)
	assert.Equal(t, int64(32<<20), cfg.MaxUploadBytes)
	require.NoError(t, cfg.Validate())
}

func TestLoadServingURLBaseFollowsBackend(t *testing.T) {
	t.Setenv("SERVING_URL_BASE", "")
	t.Setenv("OBJECT_STORE", BackendGCS)
	assert.Equal(t, "https://storage.googleapis.com", Load().ServingURLBase)

	t.Setenv("OBJECT_STORE", BackendMinio)
	t.Setenv("STORAGE_ENDPOINT", "minio:9000")
	t.Setenv("STORAGE_USE_SSL", "true")
	assert.Equal(t, "https://minio:9000", Load().ServingURLBase)

	t.Setenv("SERVING_URL_BASE", "https://cdn.example.com")
	assert.Equal(t, "https://cdn.example.com", Load().ServingURLBase)
}

func TestLoadInvalidMaxUploadFallsBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "lots")
	assert.Equal(t, int64(32<<20), Load().MaxUploadBytes)
}

func TestValidate(t *testing.T) {
	base := Config{PhotoBucket: "photos", MaxUploadBytes: 1, ObjectStore: BackendMemory, DocumentStore: BackendMemory}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "ok", mutate: func(c *Config) {}},
		{name: "no bucket", mutate: func(c *Config) { c.PhotoBucket = "" }, wantErr: "PHOTO_BUCKET"},
		{name: "zero limit", mutate: func(c *Config) { c.MaxUploadBytes = 0 }, wantErr: "MAX_UPLOAD_BYTES"},
		{name: "unknown object store", mutate: func(c *Config) { c.ObjectStore = "ftp" }, wantErr: "OBJECT_STORE"},
		{name: "unknown document store", mutate: func(c *Config) { c.DocumentStore = "mongo" }, wantErr: "DOCUMENT_STORE"},
		{name: "firestore without project", mutate: func(c *Config) { c.DocumentStore = BackendFirestore }, wantErr: "GCP_PROJECT_ID"},
		{name: "firestore with project", mutate: func(c *Config) {
			c.DocumentStore = BackendFirestore
			c.GCPProjectID = "demo"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
