package playht

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientBuilder_EnvCredentials(t *testing.T) {
	t.Setenv(EnvSecretKey, "secret-123")
	t.Setenv(EnvUserID, "user-456")

	c, err := NewClientBuilder().Build()
	require.NoError(t, err)

	assert.Equal(t, "secret-123", c.header.Get("Authorization"))
	assert.Equal(t, "user-456", c.header.Get(UserIDHeader))
	assert.Equal(t, ClientUserAgent, c.header.Get("User-Agent"))
	assert.Equal(t, BaseURL+"/v2", c.URL())
}

func TestNewClientBuilder_NoCredentials(t *testing.T) {
	t.Setenv(EnvSecretKey, "")
	t.Setenv(EnvUserID, "")

	// Missing credentials must not fail the build; the client is simply
	// unauthenticated.
	c, err := NewClientBuilder().Build()
	require.NoError(t, err)

	assert.Empty(t, c.header.Get("Authorization"))
	assert.Empty(t, c.header.Get(UserIDHeader))
	assert.Equal(t, ClientUserAgent, c.header.Get("User-Agent"))
}

func TestClientBuilder_HeaderCaseInsensitive(t *testing.T) {
	c, err := NewClientBuilder().
		Header("Content-Type", "text/plain").
		Header("content-type", "application/json").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "application/json", c.header.Get("Content-Type"))
	assert.Len(t, c.header.Values("Content-Type"), 1)
}

func TestClientBuilder_InvalidHeader(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		headerValue string
	}{
		{name: "control char in name", header: "X-Bad\nHeader", headerValue: "v"},
		{name: "space in name", header: "X Bad", headerValue: "v"},
		{name: "empty name", header: "", headerValue: "v"},
		{name: "control char in value", header: "X-Good", headerValue: "bad\x00value"},
		{name: "newline in value", header: "X-Good", headerValue: "bad\nvalue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClientBuilder().Header(tt.header, tt.headerValue).Build()
			var headerErr *HeaderError
			require.ErrorAs(t, err, &headerErr)
		})
	}
}

func TestClientBuilder_Path(t *testing.T) {
	c, err := NewClientBuilder().Path("/tts").Build()
	require.NoError(t, err)
	assert.Equal(t, BaseURL+"/v2/tts", c.URL())
}

func TestClientBuilder_InvalidPath(t *testing.T) {
	_, err := NewClientBuilder().Path("/bad\npath").Build()
	var urlErr *URLError
	require.ErrorAs(t, err, &urlErr)
}

func TestClientBuilder_BaseURLNotAbsolute(t *testing.T) {
	_, err := NewClientBuilder().BaseURL("/just/a/path").Build()
	var urlErr *URLError
	require.ErrorAs(t, err, &urlErr)
}

func TestClientBuilder_EndpointNotSet(t *testing.T) {
	// A builder that never established a base URL must fail Build with a
	// ConfigError, not panic or hand back a partially-valid client.
	b := &ClientBuilder{header: make(http.Header)}

	c, err := b.Build()
	assert.Nil(t, c)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Error(), "endpoint not set")
}

func TestClientBuilder_FirstErrorWins(t *testing.T) {
	_, err := NewClientBuilder().
		Header("bad header", "v").
		Path("/bad\npath").
		Build()

	var headerErr *HeaderError
	require.ErrorAs(t, err, &headerErr)
}

func TestClientBuilder_CustomHTTPClient(t *testing.T) {
	hc := &http.Client{}
	c, err := NewClientBuilder().HTTPClient(hc).Build()
	require.NoError(t, err)
	assert.Same(t, hc, c.client)
}

func TestNewClient(t *testing.T) {
	t.Setenv(EnvSecretKey, "secret")
	t.Setenv(EnvUserID, "user")

	c := NewClient()
	assert.Equal(t, BaseURL+"/v2", c.URL())
	assert.Equal(t, "api.play.ht:443", c.RemoteAddr())
}
