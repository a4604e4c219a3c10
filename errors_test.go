package playht

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAPIError_Generic(t *testing.T) {
	apiErr, err := decodeAPIError([]byte(`{"error_message":"bad voice","error_id":"E42"}`))
	require.NoError(t, err)

	assert.Equal(t, APIErrorGeneric, apiErr.Kind)
	assert.Equal(t, "bad voice", apiErr.Message)
	assert.Equal(t, "E42", apiErr.ID)
}

func TestDecodeAPIError_Internal(t *testing.T) {
	apiErr, err := decodeAPIError([]byte(`{"message":"something broke","error":"stack overflow"}`))
	require.NoError(t, err)

	assert.Equal(t, APIErrorInternal, apiErr.Kind)
	assert.Equal(t, "something broke", apiErr.Message)
	assert.Equal(t, "stack overflow", apiErr.Reason)
}

func TestDecodeAPIError_GenericWinsOverInternal(t *testing.T) {
	// A payload matching both object shapes resolves to the first match.
	payload := []byte(`{"error_message":"m","error_id":"i","message":"x","error":"y"}`)

	apiErr, err := decodeAPIError(payload)
	require.NoError(t, err)

	assert.Equal(t, APIErrorGeneric, apiErr.Kind)
	assert.Equal(t, "m", apiErr.Message)
	assert.Equal(t, "i", apiErr.ID)
}

func TestDecodeAPIError_RateLimit(t *testing.T) {
	apiErr, err := decodeAPIError([]byte(`"rate limit exceeded"`))
	require.NoError(t, err)

	assert.Equal(t, APIErrorRateLimit, apiErr.Kind)
	assert.Equal(t, "rate limit exceeded", apiErr.Message)
}

func TestDecodeAPIError_ObjectLookingString(t *testing.T) {
	// A bare string whose content resembles an object is still a string.
	apiErr, err := decodeAPIError([]byte(`"{\"message\":\"nope\"}"`))
	require.NoError(t, err)

	assert.Equal(t, APIErrorRateLimit, apiErr.Kind)
	assert.Equal(t, `{"message":"nope"}`, apiErr.Message)
}

func TestDecodeAPIError_UnknownShapes(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty object", payload: `{}`},
		{name: "number", payload: `42`},
		{name: "array", payload: `["rate limit exceeded"]`},
		{name: "partial generic", payload: `{"error_message":"m"}`},
		{name: "non-string fields", payload: `{"message":1,"error":2}`},
		{name: "not json", payload: `<html>502</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeAPIError([]byte(tt.payload))
			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, "unknown API error format", decodeErr.Reason)
		})
	}
}

func TestRemoteError_Unwrap(t *testing.T) {
	remote := &RemoteError{
		StatusCode: 404,
		Status:     "404 Not Found",
		Err:        &APIError{Kind: APIErrorGeneric, Message: "no such voice", ID: "E1"},
	}

	var apiErr *APIError
	require.True(t, errors.As(remote, &apiErr))
	assert.Equal(t, "no such voice", apiErr.Message)
	assert.Contains(t, remote.Error(), "404 Not Found")
}
