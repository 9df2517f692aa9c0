package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
)

// UploadImage pushes a jpeg or png to the upload endpoint and returns the
// stored file URL. The content type check happens before any bytes go over
// the wire.
func (c *Client) UploadImage(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	if contentType != "image/jpeg" && contentType != "image/png" {
		return "", ErrUnsupportedType
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/upload", nil, "", &buf, writer.FormDataContentType())
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if err := httpError(&response{status: resp.StatusCode, body: body}, "Failed to upload image"); err != nil {
		return "", err
	}

	var out struct {
		FileURL string `json:"fileUrl"`
	}
	if err := json.Unmarshal(body, &out); err != nil || out.FileURL == "" {
		return "", ErrUnexpectedFormat
	}
	return out.FileURL, nil
}
