// Package tts defines the Provider interface for Text-to-Speech backends.
//
// A TTS provider wraps a speech synthesis service (e.g., Groq's Orpheus
// endpoint) behind a uniform single-utterance interface. Because hosted
// synthesis APIs cap the input length per request, callers synthesising a full
// copilot reply should use [Speak], which splits the text into bounded chunks
// with [SplitText] and fans the requests out concurrently while preserving
// chunk order.
//
// Implementations must be safe for concurrent use.
package tts

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Provider is the abstraction over any TTS backend.
type Provider interface {
	// Synthesize converts a single text chunk into encoded audio (WAV unless
	// the implementation documents otherwise). text must respect the
	// provider's per-request length cap; use [SplitText] for longer inputs.
	//
	// voice selects the provider-specific voice. Implementations should fall
	// back to a default voice when it is empty.
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}

// Speak synthesises the full text by splitting it into chunks with [SplitText]
// and synthesising all chunks concurrently. The returned slices are in chunk
// order. The first synthesis failure cancels the remaining requests.
func Speak(ctx context.Context, p Provider, text, voice string) ([][]byte, error) {
	chunks := SplitText(text)
	out := make([][]byte, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		g.Go(func() error {
			audio, err := p.Synthesize(ctx, chunk, voice)
			if err != nil {
				return err
			}
			out[i] = audio
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
