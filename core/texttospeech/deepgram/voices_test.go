package deepgram

import "testing"

func TestNewSynthesizerDefaultsTheVoice(t *testing.T) {
	s, err := NewSynthesizer("")
	if err != nil {
		t.Fatalf("expected an empty voice to fall back to the default, got %v", err)
	}
	if s.voice != defaultVoice {
		t.Fatalf("expected %q, got %q", defaultVoice, s.voice)
	}
}

func TestNewSynthesizerRejectsUnknownVoices(t *testing.T) {
	if _, err := NewSynthesizer("aura-nobody-en"); err == nil {
		t.Fatalf("expected an unknown voice to be rejected")
	}
}

func TestNewStreamingSynthesizerAcceptsKnownVoices(t *testing.T) {
	s, err := NewStreamingSynthesizer("aura-luna-en")
	if err != nil {
		t.Fatalf("expected a known voice to be accepted, got %v", err)
	}
	if s.voice != Voice("aura-luna-en") {
		t.Fatalf("expected the requested voice kept, got %q", s.voice)
	}
}

func TestGetAvailableVoicesReturnsACopy(t *testing.T) {
	voices := GetAvailableVoices()
	voices[0] = "mutated"

	if GetAvailableVoices()[0] != defaultVoice {
		t.Fatalf("expected the catalog to be immune to mutation")
	}
}
