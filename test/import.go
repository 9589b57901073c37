package test

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// LoadTestFile loads a test file from the testdata directory
//
// File contents are returned as a buffer and a map for the HTTP request headers
func LoadTestFile(t *testing.T, filePath string) (*bytes.Buffer, map[string]string) {
	content, err := os.ReadFile(filepath.Join("../../../testdata", filePath))
	require.Nil(t, err)

	return CSVUpload(t, filePath, string(content))
}

// CSVUpload builds a multipart body uploading content as a file with
// the name fileName in the form field "file".
func CSVUpload(t *testing.T, fileName, content string) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", fileName)
	require.Nil(t, err)

	_, err = w.Write([]byte(content))
	require.Nil(t, err)
	require.Nil(t, mw.Close())

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}

// WriteCSV writes content to a new file in a temporary directory and returns its path.
func WriteCSV(t *testing.T, content string) string {
	path := TmpFile(t) + ".csv"
	require.Nil(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}
