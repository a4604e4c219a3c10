package playht

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// streamChunkSize is the read buffer size used when relaying chunked bodies.
const streamChunkSize = 32 * 1024

// stream sends the request and relays the response body to w in push mode:
// every chunk is written as soon as it arrives, in arrival order, until the
// body ends or the connection fails. Bytes already written are not
// retracted on a mid-stream failure; the caller owns reconciling partial
// output with the returned error.
//
// The response is classified before any streaming begins: a non-2xx status
// is resolved into a *RemoteError from the buffered error body instead.
func (c *Client) stream(req *http.Request, w io.Writer) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return err
	}

	buf := make([]byte, streamChunkSize)
	if _, err := io.CopyBuffer(w, resp.Body, buf); err != nil {
		return fmt.Errorf("relay stream: %w", err)
	}
	return nil
}

// Stream is a pull-mode relay over a chunked response body: a lazy,
// single-pass sequence of byte chunks driven by the caller. It is finite,
// consumed exactly once and not restartable.
//
// Drain Chunks until it is closed, then consult Err for a mid-stream
// failure. Close releases the underlying connection and is safe to call at
// any point, including after exhaustion.
type Stream struct {
	body   io.ReadCloser
	cancel context.CancelFunc
	chunks chan []byte
	done   chan struct{}

	mu  sync.RWMutex
	err error
}

// newStream starts the pump goroutine feeding the chunk channel. cancel
// aborts the underlying request, which unblocks a pending read.
func newStream(body io.ReadCloser, cancel context.CancelFunc) *Stream {
	s := &Stream{
		body:   body,
		cancel: cancel,
		chunks: make(chan []byte, 1),
		done:   make(chan struct{}),
	}
	go s.pump()
	return s
}

// Chunks returns the channel receiving body chunks in arrival order.
// The channel is closed when the body is exhausted or the stream fails.
func (s *Stream) Chunks() <-chan []byte {
	return s.chunks
}

// Err returns the terminal error of the stream, if any. It is meaningful
// once Chunks has been drained or Close has returned.
func (s *Stream) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Close aborts the stream and releases the underlying connection. Chunks
// already delivered are not retracted. Close returns the terminal stream
// error, if any.
func (s *Stream) Close() error {
	s.cancel()
	// Unblock the pump if it is parked on a send.
	for range s.chunks {
	}
	<-s.done
	return s.Err()
}

func (s *Stream) pump() {
	defer close(s.done)
	defer close(s.chunks)
	defer s.body.Close()

	buf := make([]byte, streamChunkSize)
	for {
		n, err := s.body.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			s.chunks <- chunk
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			// A cancelled stream is closed, not failed.
			if !errors.Is(err, context.Canceled) {
				s.setErr(err)
			}
			return
		}
	}
}

func (s *Stream) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// newPullStream sends the request and wraps the response body in a
// pull-mode Stream. Classification happens before the Stream is returned:
// a non-2xx response is resolved into an error and no Stream is created.
func (c *Client) newPullStream(req *http.Request) (*Stream, error) {
	ctx, cancel := context.WithCancel(req.Context())
	resp, err := c.client.Do(req.WithContext(ctx))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("send request: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		resp.Body.Close()
		cancel()
		return nil, err
	}
	return newStream(resp.Body, cancel), nil
}
