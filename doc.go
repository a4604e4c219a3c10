// Package playht provides a client for the Play.ht text-to-speech API.
//
// This package implements the v2 HTTP API: listing stock and cloned voices,
// creating instant voice clones from local files or URLs, creating and
// querying asynchronous TTS jobs, and streaming synthesized audio or
// server-sent progress events in real time.
//
// A Client is built once and reused; it is safe for concurrent use. The
// default constructor reads credentials from the PLAYHT_SECRET_KEY and
// PLAYHT_USER_ID environment variables:
//
//	client := playht.NewClient()
//	voices, err := client.ListVoices(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Streaming endpoints come in two flavors. Push mode writes every chunk to
// an io.Writer as it arrives:
//
//	f, _ := os.Create("speech.mp3")
//	defer f.Close()
//	err := client.StreamAudio(ctx, f, playht.TTSStreamRequest{
//	    Text:  "Hello from Go",
//	    Voice: voiceID,
//	})
//
// Pull mode returns a Stream whose chunks the caller drains at its own pace:
//
//	stream, err := client.NewAudioStream(ctx, req)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer stream.Close()
//	for chunk := range stream.Chunks() {
//	    decode(chunk)
//	}
//
// Remote failures are returned as *RemoteError carrying the HTTP status and
// the decoded API error payload. The client never retries; retry policy, if
// desired, belongs to the caller.
package playht
