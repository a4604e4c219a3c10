package playht

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
)

// newRequest builds an HTTP request against the client's base URL.
// The client's configured headers are cloned into the request, then the
// per-call overrides are applied on top; an override wins on name collision.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, overrides http.Header) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url.String()+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	header := c.header.Clone()
	for name, values := range overrides {
		header.Del(name)
		for _, v := range values {
			header.Add(name, v)
		}
	}
	req.Header = header
	return req, nil
}

// newJSONRequest builds a request whose body is v serialized as a single
// JSON document. Fields left unset by the caller are never written: the
// request types use omitempty and pointer fields so the API does not
// mistake absent options for explicit overrides.
func (c *Client) newJSONRequest(ctx context.Context, method, path string, v any, overrides http.Header) (*http.Request, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	if overrides == nil {
		overrides = make(http.Header)
	}
	if overrides.Get("Content-Type") == "" {
		overrides.Set("Content-Type", applicationJSON)
	}
	return c.newRequest(ctx, method, path, bytes.NewReader(data), overrides)
}

// formPart describes one part of a multipart form body.
type formPart struct {
	name        string
	filename    string
	contentType string
	data        []byte
}

// filePart reads a local file fully into memory and frames it as a form
// part. Large sample files are deliberately not streamed.
func filePart(name, path, contentType string) (formPart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return formPart{}, fmt.Errorf("read %s: %w", path, err)
	}
	return formPart{
		name:        name,
		filename:    filepath.Base(path),
		contentType: contentType,
		data:        data,
	}, nil
}

// newMultipartRequest builds a multipart/form-data request from the given
// parts. Each part carries its own declared media type; the generated
// boundary is included in the request Content-Type.
func (c *Client) newMultipartRequest(ctx context.Context, method, path string, parts []formPart, overrides http.Header) (*http.Request, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, part := range parts {
		h := make(textproto.MIMEHeader)
		if part.filename != "" {
			h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, part.name, part.filename))
		} else {
			h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q`, part.name))
		}
		if part.contentType != "" {
			h.Set("Content-Type", part.contentType)
		}
		pw, err := w.CreatePart(h)
		if err != nil {
			return nil, fmt.Errorf("create form part %s: %w", part.name, err)
		}
		if _, err := pw.Write(part.data); err != nil {
			return nil, fmt.Errorf("write form part %s: %w", part.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close form: %w", err)
	}

	if overrides == nil {
		overrides = make(http.Header)
	}
	overrides.Set("Content-Type", w.FormDataContentType())
	return c.newRequest(ctx, method, path, &buf, overrides)
}

// do sends the request and decodes the response into out.
//
// The response is classified on its status line before the body is touched:
// a 2xx status decodes the body into out (pass nil to discard it), anything
// else decodes the body as an API error and returns a *RemoteError. The
// body is closed on every path. At most one remote side effect occurs per
// call; there are no retries.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return err
	}

	if out == nil {
		_, err := io.Copy(io.Discard, resp.Body)
		return err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{Reason: "unexpected response shape", Raw: data, Err: err}
	}
	return nil
}

// checkResponse resolves a non-2xx response into a *RemoteError. Error
// bodies are small and read whole; success responses are left untouched.
func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read error response: %w", err)
	}
	apiErr, err := decodeAPIError(data)
	if err != nil {
		return err
	}
	return &RemoteError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Err:        apiErr,
	}
}
