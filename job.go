package playht

import (
	"context"
	"io"
	"net/http"
)

// TTSJobPath is the URL path for creating and fetching async TTS jobs.
const TTSJobPath = "/tts"

// CreateTTSJobRequest configures an asynchronous TTS job. Unset fields are
// never serialized, so the API applies its own defaults; numeric options
// use pointers to distinguish "unset" from an explicit zero.
type CreateTTSJobRequest struct {
	Text          string       `json:"text,omitempty"`
	Voice         string       `json:"voice,omitempty"`
	Quality       Quality      `json:"quality,omitempty"`
	OutputFormat  OutputFormat `json:"output_format,omitempty"`
	VoiceEngine   VoiceEngine  `json:"voice_engine,omitempty"`
	Emotion       Emotion      `json:"emotion,omitempty"`
	Speed         *float64     `json:"speed,omitempty"`
	Temperature   *float64     `json:"temperature,omitempty"`
	SampleRate    *int         `json:"sample_rate,omitempty"`
	Seed          *int         `json:"seed,omitempty"`
	VoiceGuidance *float64     `json:"voice_guidance,omitempty"`
	StyleGuidance *float64     `json:"style_guidance,omitempty"`
}

// TTSJobOutput is the synthesized output of a completed job.
type TTSJobOutput struct {
	Duration float64 `json:"duration"`
	Size     int     `json:"size"`
	URL      string  `json:"url"`
}

// TTSJobLink is a hypermedia link attached to a job.
type TTSJobLink struct {
	ContentType string `json:"contentType,omitempty"`
	Description string `json:"description,omitempty"`
	Href        string `json:"href,omitempty"`
	Method      string `json:"method,omitempty"`
	Rel         string `json:"rel,omitempty"`
}

// TTSJob is the metadata of an asynchronous TTS job.
//
// Status is an opaque string: the API does not document a closed set of
// values, so this client does not enumerate them.
type TTSJob struct {
	ID      string              `json:"id"`
	Created string              `json:"created"`
	Input   CreateTTSJobRequest `json:"input"`
	Output  *TTSJobOutput       `json:"output,omitempty"`
	Status  string              `json:"status,omitempty"`
	Links   []TTSJobLink        `json:"_links,omitempty"`
}

// CreateTTSJob creates an async TTS job and returns its metadata.
func (c *Client) CreateTTSJob(ctx context.Context, jr CreateTTSJobRequest) (*TTSJob, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, TTSJobPath, jr, http.Header{
		"Accept": []string{applicationJSON},
	})
	if err != nil {
		return nil, err
	}
	var job TTSJob
	if err := c.do(req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// CreateTTSJobWithProgressStream creates an async TTS job and relays the
// server-sent progress events for it to w as opaque bytes. It returns the
// job stream URL from the Content-Location response header, when present.
func (c *Client) CreateTTSJobWithProgressStream(ctx context.Context, w io.Writer, jr CreateTTSJobRequest) (string, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, TTSJobPath, jr, http.Header{
		"Accept": []string{textEventStream},
	})
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return "", err
	}

	streamURL := resp.Header.Get("Content-Location")
	buf := make([]byte, streamChunkSize)
	if _, err := io.CopyBuffer(w, resp.Body, buf); err != nil {
		return streamURL, err
	}
	return streamURL, nil
}

// GetTTSJob fetches the async TTS job with the given id.
func (c *Client) GetTTSJob(ctx context.Context, id string) (*TTSJob, error) {
	req, err := c.newRequest(ctx, http.MethodGet, TTSJobPath+"/"+id, nil, http.Header{
		"Accept": []string{applicationJSON},
	})
	if err != nil {
		return nil, err
	}
	var job TTSJob
	if err := c.do(req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// StreamTTSJobProgress relays the server-sent progress events of an
// existing job to w. Unlike CreateTTSJobWithProgressStream it does not
// create a new job. The SSE framing is relayed verbatim; use SSEScanner to
// pick out the event payloads.
func (c *Client) StreamTTSJobProgress(ctx context.Context, w io.Writer, id string) error {
	req, err := c.newRequest(ctx, http.MethodGet, TTSJobPath+"/"+id, nil, http.Header{
		"Accept": []string{textEventStream},
	})
	if err != nil {
		return err
	}
	return c.stream(req, w)
}

// StreamTTSJobAudio relays the raw audio of the job with the given id to w
// as it is generated.
func (c *Client) StreamTTSJobAudio(ctx context.Context, w io.Writer, id string) error {
	req, err := c.newRequest(ctx, http.MethodGet, TTSJobPath+"/"+id, nil, http.Header{
		"Accept": []string{audioMpeg},
	})
	if err != nil {
		return err
	}
	return c.stream(req, w)
}
