package playht

import (
	"context"
	"net/http"
)

// VoicesPath is the URL path for listing stock voices.
const VoicesPath = "/voices"

// ClonedVoicesPath is the URL path for listing, creating and deleting
// cloned voices.
const ClonedVoicesPath = "/cloned-voices/"

// ClonedVoicesInstantPath is the URL path for creating instant voice clones.
const ClonedVoicesInstantPath = "/cloned-voices/instant"

// Voice is a stock voice available for synthesis.
type Voice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Sample   string `json:"sample,omitempty"`
	Accent   string `json:"accent,omitempty"`
	Age      string `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Language string `json:"language,omitempty"`
	LangCode string `json:"lang_code,omitempty"`
	Loudness string `json:"loudness,omitempty"`
	Style    string `json:"style,omitempty"`
	Tempo    string `json:"tempo,omitempty"`
	Texture  string `json:"texture,omitempty"`
}

// ClonedVoice is a voice cloned from a user-supplied sample.
type ClonedVoice struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// CloneVoiceFileRequest creates an instant voice clone from a local sample
// file. MimeType declares the media type of the sample, e.g. "audio/mpeg".
type CloneVoiceFileRequest struct {
	SampleFile string
	VoiceName  string
	MimeType   string
}

// CloneVoiceURLRequest creates an instant voice clone from a sample file
// fetched by the API from the given URL.
type CloneVoiceURLRequest struct {
	SampleFileURL string `json:"sample_file_url"`
	VoiceName     string `json:"voice_name"`
}

// DeleteClonedVoiceRequest deletes a cloned voice by id.
type DeleteClonedVoiceRequest struct {
	VoiceID string `json:"voice_id"`
}

// DeleteClonedVoiceResponse confirms the deletion of a cloned voice.
type DeleteClonedVoiceResponse struct {
	Message string      `json:"message"`
	Deleted ClonedVoice `json:"deleted"`
}

// ListVoices returns all available stock voices.
func (c *Client) ListVoices(ctx context.Context) ([]Voice, error) {
	req, err := c.newRequest(ctx, http.MethodGet, VoicesPath, nil, http.Header{
		"Accept": []string{applicationJSON},
	})
	if err != nil {
		return nil, err
	}
	var voices []Voice
	if err := c.do(req, &voices); err != nil {
		return nil, err
	}
	return voices, nil
}

// ListClonedVoices returns all cloned voices owned by the authenticated user.
func (c *Client) ListClonedVoices(ctx context.Context) ([]ClonedVoice, error) {
	req, err := c.newRequest(ctx, http.MethodGet, ClonedVoicesPath, nil, http.Header{
		"Accept": []string{applicationJSON},
	})
	if err != nil {
		return nil, err
	}
	var voices []ClonedVoice
	if err := c.do(req, &voices); err != nil {
		return nil, err
	}
	return voices, nil
}

// CloneVoiceFromFile creates an instant voice clone from a local sample
// file. The sample is read fully into memory and sent as a multipart form
// alongside the voice name.
func (c *Client) CloneVoiceFromFile(ctx context.Context, cvr CloneVoiceFileRequest) (*ClonedVoice, error) {
	sample, err := filePart("sample_file", cvr.SampleFile, cvr.MimeType)
	if err != nil {
		return nil, err
	}
	parts := []formPart{
		{name: "voice_name", contentType: textPlain, data: []byte(cvr.VoiceName)},
		sample,
	}
	req, err := c.newMultipartRequest(ctx, http.MethodPost, ClonedVoicesInstantPath, parts, http.Header{
		"Accept": []string{applicationJSON},
	})
	if err != nil {
		return nil, err
	}
	var voice ClonedVoice
	if err := c.do(req, &voice); err != nil {
		return nil, err
	}
	return &voice, nil
}

// CloneVoiceFromURL creates an instant voice clone from a sample file URL.
func (c *Client) CloneVoiceFromURL(ctx context.Context, cvr CloneVoiceURLRequest) (*ClonedVoice, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, ClonedVoicesPath, cvr, http.Header{
		"Accept": []string{applicationJSON},
	})
	if err != nil {
		return nil, err
	}
	var voice ClonedVoice
	if err := c.do(req, &voice); err != nil {
		return nil, err
	}
	return &voice, nil
}

// DeleteClonedVoice deletes a cloned voice. The deletion is not retried or
// deduplicated: at most one remote side effect per call.
func (c *Client) DeleteClonedVoice(ctx context.Context, dvr DeleteClonedVoiceRequest) (*DeleteClonedVoiceResponse, error) {
	req, err := c.newJSONRequest(ctx, http.MethodDelete, ClonedVoicesPath, dvr, http.Header{
		"Accept": []string{applicationJSON},
	})
	if err != nil {
		return nil, err
	}
	var deleted DeleteClonedVoiceResponse
	if err := c.do(req, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}
