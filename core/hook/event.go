package hook

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Event kinds delivered by the assistant. Anything else resolves to no
// message.
const (
	EventUserPromptSubmit = "UserPromptSubmit"
	EventStop             = "Stop"
	EventNotification     = "Notification"
)

// Event is one lifecycle notification, received as a single JSON document on
// stdin and never persisted.
type Event struct {
	HookEventName    string `json:"hook_event_name"`
	NotificationType string `json:"notification_type"`
	// Message is a pointer because an absent field and an empty string read
	// differently: only an absent field falls back to the "Notification"
	// literal.
	Message           *string `json:"message"`
	StopHookActive    bool    `json:"stop_hook_active"`
	TranscriptSummary string  `json:"transcript_summary"`
	TranscriptPath    string  `json:"transcript_path"`
}

// ParseEvent decodes the stdin blob. Empty or whitespace-only input is a
// valid empty event; malformed JSON is a contract violation by the caller and
// surfaces as an error.
func ParseEvent(raw []byte) (Event, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Event{}, nil
	}

	var event Event
	if err := json.Unmarshal(raw, &event); err != nil {
		return Event{}, fmt.Errorf("failed to parse event: %w", err)
	}

	return event, nil
}
