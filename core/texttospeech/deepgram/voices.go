package deepgram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"slices"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Voice string

const defaultVoice = Voice("aura-asteria-en")

// availableVoices are the Aura models known to accept the linear16 output the
// playback device expects.
var availableVoices = []Voice{
	"aura-asteria-en",
	"aura-luna-en",
	"aura-stella-en",
	"aura-athena-en",
	"aura-hera-en",
	"aura-orion-en",
	"aura-arcas-en",
	"aura-perseus-en",
	"aura-angus-en",
	"aura-orpheus-en",
	"aura-helios-en",
	"aura-zeus-en",
}

func GetAvailableVoices() []Voice {
	return slices.Clone(availableVoices)
}

// Model describes one entry of the Deepgram model listing.
type Model struct {
	Name          string   `json:"name"`
	CanonicalName string   `json:"canonical_name"`
	Architecture  string   `json:"architecture"`
	Languages     []string `json:"languages"`
}

// ListVoices fetches the live text-to-speech model listing. It needs an API
// key; callers without one can fall back to [GetAvailableVoices].
func ListVoices(ctx context.Context) ([]Model, error) {
	apiKey, ok := os.LookupEnv("DEEPGRAM_API_KEY")
	if !ok {
		return nil, fmt.Errorf("deepgram api key not found")
	}

	ctx, span := tracer.Start(ctx, "list models")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, (&url.URL{
		Scheme: "https",
		Host:   "api.deepgram.com", Path: "/v1/models",
	}).String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create models request: %w", err)
	}
	req.Header.Set("Authorization", "token "+apiKey)

	client := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	resp, err := client.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to fetch models: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("models request failed with status %d: %s", resp.StatusCode, body)
		span.RecordError(err)
		return nil, err
	}

	var parsed struct {
		TTS []Model `json:"tts"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to decode models response: %w", err)
	}

	return parsed.TTS, nil
}
