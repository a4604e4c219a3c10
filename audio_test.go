package playht

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetAudioStreamURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/tts/stream" {
			t.Errorf("Expected path /tts/stream, got %s", r.URL.Path)
		}
		if accept := r.Header.Get("Accept"); accept != "application/json" {
			t.Errorf("Expected Accept application/json, got '%s'", accept)
		}

		var req TTSStreamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Text != "hello" {
			t.Errorf("Expected text 'hello', got '%s'", req.Text)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{
			"href":"https://api.play.ht/api/v2/tts/stream/abc",
			"method":"GET",
			"contentType":"audio/mpeg",
			"rel":"related",
			"description":"Audio stream"
		}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	streamURL, err := c.GetAudioStreamURL(context.Background(), TTSStreamRequest{Text: "hello", Voice: "v1"})
	if err != nil {
		t.Fatalf("GetAudioStreamURL failed: %v", err)
	}

	if streamURL.Href != "https://api.play.ht/api/v2/tts/stream/abc" {
		t.Errorf("Unexpected href '%s'", streamURL.Href)
	}
	if streamURL.ContentType != "audio/mpeg" {
		t.Errorf("Expected contentType 'audio/mpeg', got '%s'", streamURL.ContentType)
	}
}

func TestStreamAudio_SendsAcceptAudioMpeg(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if accept := r.Header.Get("Accept"); accept != "audio/mpeg" {
			t.Errorf("Expected Accept audio/mpeg, got '%s'", accept)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte{0xFF, 0xFB})
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	var sink nopWriter
	if err := c.StreamAudio(context.Background(), &sink, TTSStreamRequest{Text: "hi"}); err != nil {
		t.Fatalf("StreamAudio failed: %v", err)
	}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
