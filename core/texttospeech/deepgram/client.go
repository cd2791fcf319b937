package deepgram

import (
	"context"
	"fmt"
	"os"
	"slices"

	speakapi "github.com/deepgram/deepgram-go-sdk/pkg/api/speak/v1/rest"
	interfaces "github.com/deepgram/deepgram-go-sdk/pkg/client/interfaces"
	speakclient "github.com/deepgram/deepgram-go-sdk/pkg/client/speak"
	"go.opentelemetry.io/otel/attribute"

	"github.com/claudevoice/claudevoice/core/audio"
	"github.com/claudevoice/claudevoice/core/texttospeech"
)

// Synthesizer renders one utterance per call through the Deepgram speak REST
// endpoint.
type Synthesizer struct {
	voice Voice
}

func NewSynthesizer(voice Voice) (*Synthesizer, error) {
	s := &Synthesizer{voice: defaultVoice}

	if voice != "" {
		if !slices.Contains(GetAvailableVoices(), voice) {
			return nil, fmt.Errorf("invalid voice %q", voice)
		}
		s.voice = voice
	}

	return s, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, text string, outputPath string, opts ...texttospeech.SynthesisOption) error {
	options := texttospeech.SynthesisOptions{EncodingInfo: audio.GetDefaultEncodingInfo()}
	for _, opt := range opts {
		opt(&options)
	}

	if _, ok := os.LookupEnv("DEEPGRAM_API_KEY"); !ok {
		return fmt.Errorf("deepgram api key not found")
	}

	ctx, span := tracer.Start(ctx, "synthesize speech")
	defer span.End()
	span.SetAttributes(
		attribute.String("request.model", string(s.voice)),
		attribute.Int("request.text_length", len(text)),
	)

	speakOptions := &interfaces.SpeakOptions{
		Model:      string(s.voice),
		Encoding:   options.EncodingInfo.Format.Name(),
		SampleRate: options.EncodingInfo.SampleRate,
		Container:  "none",
	}

	rest := speakapi.New(speakclient.NewRESTWithDefaults())
	if _, err := rest.ToSave(ctx, outputPath, text, speakOptions); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to synthesize speech: %w", err)
	}

	return nil
}
