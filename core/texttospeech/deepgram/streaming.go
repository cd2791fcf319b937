package deepgram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"slices"
	"strconv"

	"github.com/gorilla/websocket"

	"github.com/claudevoice/claudevoice/core/audio"
	"github.com/claudevoice/claudevoice/core/texttospeech"
)

// StreamingSynthesizer renders an utterance over the Deepgram speak websocket
// instead of the REST endpoint. Audio arrives in binary frames while the
// utterance is still being generated; the whole utterance is still collected
// before it is written out, so callers see the same contract as [Synthesizer].
type StreamingSynthesizer struct {
	voice Voice

	// scheme and host locate the speak socket; tests point them at a local
	// server.
	scheme string
	host   string
}

func NewStreamingSynthesizer(voice Voice) (*StreamingSynthesizer, error) {
	s := &StreamingSynthesizer{
		voice:  defaultVoice,
		scheme: "wss",
		host:   "api.deepgram.com",
	}

	if voice != "" {
		if !slices.Contains(GetAvailableVoices(), voice) {
			return nil, fmt.Errorf("invalid voice %q", voice)
		}
		s.voice = voice
	}

	return s, nil
}

func (s *StreamingSynthesizer) Synthesize(ctx context.Context, text string, outputPath string, opts ...texttospeech.SynthesisOption) error {
	options := texttospeech.SynthesisOptions{EncodingInfo: audio.GetDefaultEncodingInfo()}
	for _, opt := range opts {
		opt(&options)
	}

	conn, err := s.connect(ctx, options.EncodingInfo)
	if err != nil {
		return fmt.Errorf("failed to open websocket: %w", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(speakMsg(text)); err != nil {
		return fmt.Errorf("failed to send websocket speak message: %w", err)
	}
	if err := conn.WriteJSON(flushMsg); err != nil {
		return fmt.Errorf("failed to send websocket flush message: %w", err)
	}

	pcm, err := collectAudio(ctx, conn)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, pcm, 0o644); err != nil {
		return fmt.Errorf("failed to write audio artifact: %w", err)
	}

	return nil
}

// collectAudio reads frames until the server confirms the flushed utterance
// is complete. A Flushed text message marks the end of the audio for the one
// utterance sent before the flush.
func collectAudio(ctx context.Context, conn *websocket.Conn) ([]byte, error) {
	var pcm []byte

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				break
			}
			return nil, fmt.Errorf("websocket read error: %w", err)
		}

		switch msgType {
		case websocket.BinaryMessage:
			pcm = append(pcm, msg...)
		case websocket.TextMessage:
			var parsedMsg struct {
				Type string `json:"type"`
			}
			if err := json.Unmarshal(msg, &parsedMsg); err != nil {
				logger.WarnContext(ctx, "failed to unmarshal deepgram message", "error", err)
				continue
			}

			if parsedMsg.Type == "Flushed" {
				if err := conn.WriteJSON(closeMsg); err != nil {
					// The audio is already complete; treat a failed
					// goodbye as a hard close.
					return pcm, nil
				}
			}
		}
	}

	if len(pcm) == 0 {
		return nil, fmt.Errorf("no audio received before stream closed")
	}

	return pcm, nil
}

func (s *StreamingSynthesizer) connect(ctx context.Context, encodingInfo audio.EncodingInfo) (*websocket.Conn, error) {
	apiKey, ok := os.LookupEnv("DEEPGRAM_API_KEY")
	if !ok {
		return nil, fmt.Errorf("deepgram api key not found")
	}

	urlValues := url.Values{}
	urlValues.Set("encoding", encodingInfo.Format.Name())
	urlValues.Set("sample_rate", strconv.Itoa(encodingInfo.SampleRate))
	urlValues.Set("model", string(s.voice))
	urlValues.Set("container", "none")

	conn, _, err := websocket.DefaultDialer.DialContext(ctx,
		(&url.URL{
			Scheme: s.scheme,
			Host:   s.host, Path: "/v1/speak",
			RawQuery: urlValues.Encode(),
		}).String(),
		http.Header{"Authorization": {"token " + apiKey}})
	if err != nil {
		return nil, fmt.Errorf("failed to open socket connection to deepgram: %w", err)
	}

	return conn, nil
}

type websocketMessage struct {
	Type string `json:"type"`
}

type websocketSpeakMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

var (
	speakMsg = func(text string) websocketSpeakMessage {
		return websocketSpeakMessage{Type: "Speak", Text: text}
	}
	flushMsg = websocketMessage{Type: "Flush"}
	closeMsg = websocketMessage{Type: "Close"}
)
