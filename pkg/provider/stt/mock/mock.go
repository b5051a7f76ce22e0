// Package mock provides a test double for the stt.Provider interface.
package mock

import (
	"context"
	"io"
	"sync"

	"github.com/khoj-travel/copilot/pkg/provider/stt"
)

// TranscribeCall records a single invocation of Transcribe.
type TranscribeCall struct {
	Audio    []byte
	Filename string
}

// Provider is a mock implementation of stt.Provider.
type Provider struct {
	mu sync.Mutex

	// Result is returned from every Transcribe call when Err is nil.
	Result *stt.Transcription

	// Err, if non-nil, is returned from every Transcribe call.
	Err error

	// Calls records every Transcribe invocation in order, with the audio
	// bytes fully read.
	Calls []TranscribeCall
}

var _ stt.Provider = (*Provider)(nil)

// Transcribe implements stt.Provider.
func (p *Provider) Transcribe(_ context.Context, audio io.Reader, filename string) (*stt.Transcription, error) {
	data, err := io.ReadAll(audio)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Calls = append(p.Calls, TranscribeCall{Audio: data, Filename: filename})
	if p.Err != nil {
		return nil, p.Err
	}
	if p.Result != nil {
		return p.Result, nil
	}
	return &stt.Transcription{Text: string(data), Language: "en"}, nil
}
