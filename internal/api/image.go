package api

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
)

// EncodeImageDataURL re-reads the captured image and re-encodes it as
// a base64 data URL for the save endpoint.
func EncodeImageDataURL(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	mime := imageMIMEType(filepath.Base(path))
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
