package playht

import (
	"context"
	"io"
	"net/http"
)

// TTSStreamPath is the URL path for real-time audio streams.
const TTSStreamPath = "/tts/stream"

// TTSStreamRequest configures a real-time audio stream. Unset fields are
// never serialized; see CreateTTSJobRequest.
type TTSStreamRequest struct {
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
	TextGuidance  *float64     `json:"text_guidance,omitempty"`
}

// TTSStreamURL describes where and how to fetch an audio stream.
type TTSStreamURL struct {
	Href        string `json:"href"`
	Method      string `json:"method"`
	ContentType string `json:"contentType"`
	Rel         string `json:"rel"`
	Description string `json:"description"`
}

// StreamAudio synthesizes speech for the request and relays the audio to w
// in real time, chunk by chunk, until the stream ends.
func (c *Client) StreamAudio(ctx context.Context, w io.Writer, sr TTSStreamRequest) error {
	req, err := c.newJSONRequest(ctx, http.MethodPost, TTSStreamPath, sr, http.Header{
		"Accept": []string{audioMpeg},
	})
	if err != nil {
		return err
	}
	return c.stream(req, w)
}

// NewAudioStream synthesizes speech for the request and returns a
// pull-mode Stream of audio chunks driven by the caller. The caller must
// Close the stream to release the connection.
func (c *Client) NewAudioStream(ctx context.Context, sr TTSStreamRequest) (*Stream, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, TTSStreamPath, sr, http.Header{
		"Accept": []string{audioMpeg},
	})
	if err != nil {
		return nil, err
	}
	return c.newPullStream(req)
}

// GetAudioStreamURL returns the URL of the audio stream for the request
// instead of relaying the audio itself. The returned URL can be fetched
// by any HTTP client, e.g. a media player.
func (c *Client) GetAudioStreamURL(ctx context.Context, sr TTSStreamRequest) (*TTSStreamURL, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, TTSStreamPath, sr, http.Header{
		"Accept": []string{applicationJSON},
	})
	if err != nil {
		return nil, err
	}
	var streamURL TTSStreamURL
	if err := c.do(req, &streamURL); err != nil {
		return nil, err
	}
	return &streamURL, nil
}
