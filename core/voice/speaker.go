package voice

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/claudevoice/claudevoice/core/audio"
	"github.com/claudevoice/claudevoice/core/audio/miniaudio"
	"github.com/claudevoice/claudevoice/core/hook"
	"github.com/claudevoice/claudevoice/core/texttospeech"
	"github.com/claudevoice/claudevoice/core/texttospeech/deepgram"
)

// Speaker turns a resolved message into audible speech: synthesize into a
// transient PCM artifact, then drain the artifact through the playback
// device. The artifact is removed on every exit path and removal failures
// are discarded.
type Speaker struct {
	newSynthesizer func(cfg hook.Config) (texttospeech.SpeechSynthesizer, error)
	newPlayer      func(cfg hook.Config) (player, error)
}

type player interface {
	Play(ctx context.Context, pcm []byte) error
	Close()
}

func New() *Speaker {
	return &Speaker{
		newSynthesizer: newSynthesizer,
		newPlayer:      newPlayer,
	}
}

func (s *Speaker) Speak(ctx context.Context, text string, cfg hook.Config) error {
	synthesizer, err := s.newSynthesizer(cfg)
	if err != nil {
		return err
	}

	artifact, err := os.CreateTemp("", "claudevoice-*.pcm")
	if err != nil {
		return fmt.Errorf("failed to create audio artifact: %w", err)
	}
	artifactPath := artifact.Name()
	_ = artifact.Close()
	defer func() { _ = os.Remove(artifactPath) }()

	// The synthesizer and the playback device agree on one PCM layout; the
	// encoding is pinned here rather than left to their individual defaults.
	if err := synthesizer.Synthesize(ctx, text, artifactPath,
		texttospeech.WithEncodingInfo(audio.GetDefaultEncodingInfo()),
	); err != nil {
		return err
	}

	pcm, err := os.ReadFile(artifactPath)
	if err != nil {
		return fmt.Errorf("failed to read audio artifact: %w", err)
	}

	audioPlayer, err := s.newPlayer(cfg)
	if err != nil {
		return err
	}
	defer audioPlayer.Close()

	return audioPlayer.Play(ctx, pcm)
}

func newSynthesizer(cfg hook.Config) (texttospeech.SpeechSynthesizer, error) {
	if cfg.Streaming {
		return deepgram.NewStreamingSynthesizer(deepgram.Voice(cfg.Voice))
	}
	return deepgram.NewSynthesizer(deepgram.Voice(cfg.Voice))
}

func newPlayer(cfg hook.Config) (player, error) {
	return miniaudio.NewClient(
		miniaudio.WithEncodingInfo(audio.GetDefaultEncodingInfo()),
		miniaudio.WithGain(cfg.Volume),
		// Rate and pitch both resolve to a device sample-rate factor; a
		// semitone is a 2^(1/12) speedup.
		miniaudio.WithRateFactor(cfg.Rate*math.Exp2(cfg.Pitch/12)),
	)
}
