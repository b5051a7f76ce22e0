// Package stt defines the Provider interface for Speech-to-Text backends.
//
// An STT provider turns recorded audio into text. The copilot uses it to
// transcribe voice queries from travel agents before handing the text to the
// agent loop.
//
// Implementations must be safe for concurrent use.
package stt

import (
	"context"
	"io"
	"time"
)

// Transcription is the result of transcribing one audio clip.
type Transcription struct {
	// Text is the transcribed text.
	Text string

	// Language is the detected or requested language code (e.g., "en"). May
	// be empty when the backend does not report it.
	Language string

	// Duration is the length of the source audio, if reported by the backend.
	Duration time.Duration
}

// Provider is the abstraction over any STT backend.
type Provider interface {
	// Transcribe reads the full audio clip from audio and returns its
	// transcription. filename hints the container format to backends that
	// sniff it from the extension (e.g., "query.webm").
	Transcribe(ctx context.Context, audio io.Reader, filename string) (*Transcription, error)
}
