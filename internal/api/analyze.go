package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"github.com/farmlook/farmlook/internal/model"
)

// AnalyzeRequest describes one image submission. CropID is the catalog
// id, CropName the english display name; both are forwarded as request
// metadata.
type AnalyzeRequest struct {
	ImagePath string
	CropID    string
	CropName  string
	Language  string
}

// Analyze uploads the image and parses the diagnostic payload out of
// the response. The payload arrives as a JSON document inside the data
// field, possibly wrapped in code-fence markers; malformed content
// fails the whole call and nothing is returned.
func (c *Client) Analyze(ctx context.Context, req AnalyzeRequest) (model.AnalysisResult, error) {
	data, err := os.ReadFile(req.ImagePath)
	if err != nil {
		return model.AnalysisResult{}, fmt.Errorf("read image: %w", err)
	}

	filename := filepath.Base(req.ImagePath)
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	header.Set("Content-Type", imageMIMEType(filename))
	part, err := w.CreatePart(header)
	if err != nil {
		return model.AnalysisResult{}, fmt.Errorf("build multipart: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return model.AnalysisResult{}, fmt.Errorf("write image part: %w", err)
	}
	fields := map[string]string{
		"cropType":     req.CropID,
		"selectedCrop": req.CropName,
		"language":     req.Language,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return model.AnalysisResult{}, fmt.Errorf("write field %s: %w", name, err)
		}
	}
	if err := w.Close(); err != nil {
		return model.AnalysisResult{}, fmt.Errorf("close multipart: %w", err)
	}

	var out struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		Data    string `json:"data"`
	}
	status, err := c.do(ctx, "POST", "/analyze", "", &buf, w.FormDataContentType(), &out)
	if err != nil {
		return model.AnalysisResult{}, err
	}
	if err := checkEnvelope(status, out.Success, out.Error); err != nil {
		return model.AnalysisResult{}, err
	}

	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(unwrapFence(out.Data)), &result); err != nil {
		return model.AnalysisResult{}, &Error{Kind: KindDecode, Status: status, err: err}
	}
	return result, nil
}

// unwrapFence strips ```json / ``` markers around an embedded JSON
// document.
func unwrapFence(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

func imageMIMEType(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "", "jpg":
		ext = "jpeg"
	}
	return "image/" + ext
}
