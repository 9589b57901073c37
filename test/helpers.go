package test

import (
	"net/url"
	"path/filepath"
	"testing"

	"github.com/envelope-zero/transaction-import/internal/config"
	"github.com/google/uuid"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// Config returns a configuration for tests.
//
// Uploads are stored in a temporary directory that is removed after the test.
func Config(t *testing.T) config.Config {
	apiURL, _ := url.Parse("http://example.com/api")

	return config.Config{
		APIURL:    apiURL,
		GinMode:   "test",
		DataDir:   t.TempDir(),
		UploadDir: t.TempDir(),
	}
}
