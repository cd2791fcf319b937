package texttospeech

import (
	"context"

	"github.com/claudevoice/claudevoice/core/audio"
)

type SynthesisOptions struct {
	EncodingInfo audio.EncodingInfo
}

type SynthesisOption func(*SynthesisOptions)

func WithEncodingInfo(encodingInfo audio.EncodingInfo) SynthesisOption {
	return func(o *SynthesisOptions) {
		if encodingInfo.IsZero() {
			return
		}

		o.EncodingInfo = encodingInfo
	}
}

// SpeechSynthesizer renders a single utterance. Implementations write raw PCM
// in the requested encoding to outputPath and return only when the whole
// utterance has been rendered.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string, outputPath string, opts ...SynthesisOption) error
}
