package playht

import (
	"encoding/json"
	"fmt"
)

// APIErrorKind identifies the shape of an error payload returned by the API.
type APIErrorKind string

const (
	// APIErrorGeneric is the common error shape with a message and an error id.
	APIErrorGeneric APIErrorKind = "api_error"
	// APIErrorInternal is returned on server-side failures.
	APIErrorInternal APIErrorKind = "internal_error"
	// APIErrorRateLimit is returned as a bare string when requests are throttled.
	APIErrorRateLimit APIErrorKind = "rate_limit"
)

// APIError is an error payload decoded from a non-2xx API response.
// The API does not tag its error bodies uniformly, so the variant is
// picked by the structural shape of the payload (see decodeAPIError).
type APIError struct {
	// Kind reports which payload shape was decoded.
	Kind APIErrorKind
	// Message is the human-readable error message.
	Message string
	// ID is the error identifier. Set only for APIErrorGeneric.
	ID string
	// Reason is the server-side error detail. Set only for APIErrorInternal.
	Reason string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch e.Kind {
	case APIErrorGeneric:
		return fmt.Sprintf("api error [%s]: %s", e.ID, e.Message)
	case APIErrorInternal:
		return fmt.Sprintf("internal error: %s: %s", e.Message, e.Reason)
	case APIErrorRateLimit:
		return fmt.Sprintf("rate limited: %s", e.Message)
	}
	return e.Message
}

// decodeAPIError decodes an arbitrary JSON error payload into an APIError.
// The candidate shapes are tried in a fixed order, first match wins:
//
//  1. object with string fields "error_message" and "error_id"
//  2. object with string fields "message" and "error"
//  3. bare JSON string
//
// Object shapes are tried before the bare-string fallback so a JSON string
// that happens to contain object-looking text is never misclassified.
// Payloads matching none of the shapes yield a *DecodeError.
func decodeAPIError(data []byte) (*APIError, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err == nil {
		if msg, ok := stringField(obj, "error_message"); ok {
			if id, ok := stringField(obj, "error_id"); ok {
				return &APIError{Kind: APIErrorGeneric, Message: msg, ID: id}, nil
			}
		}
		if msg, ok := stringField(obj, "message"); ok {
			if reason, ok := stringField(obj, "error"); ok {
				return &APIError{Kind: APIErrorInternal, Message: msg, Reason: reason}, nil
			}
		}
		return nil, &DecodeError{Reason: "unknown API error format", Raw: data}
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return &APIError{Kind: APIErrorRateLimit, Message: s}, nil
	}

	return nil, &DecodeError{Reason: "unknown API error format", Raw: data}
}

// stringField extracts a string-typed field from a decoded JSON object.
func stringField(obj map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := obj[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// RemoteError is returned when the API explicitly reports a failure.
// It carries the HTTP status of the response and the decoded error payload.
type RemoteError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Status is the HTTP status line.
	Status string
	// Err is the decoded API error payload.
	Err *APIError
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Status, e.Err.Error())
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a response body does not match the expected
// success shape, or when an error body matches none of the known API error
// shapes. Raw holds the offending payload.
type DecodeError struct {
	Reason string
	Raw    []byte
	Err    error
}

func (e *DecodeError) Error() string {
	if len(e.Raw) > 0 {
		return fmt.Sprintf("decode response: %s: %q", e.Reason, e.Raw)
	}
	return fmt.Sprintf("decode response: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ConfigError is returned by ClientBuilder.Build when the configuration
// never reached a valid state.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("client build error: %s", e.Reason)
}

// HeaderError is returned when a header name or value passed to the builder
// contains characters illegal in HTTP headers.
type HeaderError struct {
	Name  string
	Value string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("invalid header %q: %q", e.Name, e.Value)
}

// URLError is returned when a builder path or base URL does not form a
// valid absolute URL.
type URLError struct {
	URL string
	Err error
}

func (e *URLError) Error() string {
	return fmt.Sprintf("invalid url %q: %v", e.URL, e.Err)
}

func (e *URLError) Unwrap() error {
	return e.Err
}
