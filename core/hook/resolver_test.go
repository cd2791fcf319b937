package hook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func strPtr(s string) *string { return &s }

func TestResolvePromptSubmitReturnsTemplateVerbatim(t *testing.T) {
	event := Event{HookEventName: EventUserPromptSubmit}

	message, ok := Resolve(event, DefaultConfig())

	if !ok {
		t.Fatalf("expected prompt submit to resolve to a message")
	}
	if message != "On it." {
		t.Fatalf("expected the prompt_submit template verbatim, got %q", message)
	}
}

func TestResolveStopWithActiveStopHookReturnsNothing(t *testing.T) {
	event := Event{HookEventName: EventStop, StopHookActive: true}

	if message, ok := Resolve(event, DefaultConfig()); ok {
		t.Fatalf("expected no message on stop hook re-entry, got %q", message)
	}
}

func TestResolveStopUsesEventSummary(t *testing.T) {
	event := Event{HookEventName: EventStop, TranscriptSummary: "All done"}

	message, ok := Resolve(event, DefaultConfig())

	if !ok {
		t.Fatalf("expected stop to resolve to a message")
	}
	if message != "Done. All done" {
		t.Fatalf("expected %q, got %q", "Done. All done", message)
	}
}

func TestResolveStopWithoutSummaryTrimsPlaceholder(t *testing.T) {
	event := Event{HookEventName: EventStop}

	message, ok := Resolve(event, DefaultConfig())

	if !ok {
		t.Fatalf("expected stop to resolve to a message")
	}
	if message != "Done." {
		t.Fatalf("expected the bare stop template, got %q", message)
	}
}

func TestResolveStopFallsBackToTranscript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.jsonl")
	record := `{"type":"assistant","message":{"content":[{"type":"text","text":"Tests pass now"}]}}`
	if err := os.WriteFile(path, []byte(record+"\n"), 0o644); err != nil {
		t.Fatalf("failed to write transcript: %v", err)
	}

	event := Event{HookEventName: EventStop, TranscriptPath: path}

	message, ok := Resolve(event, DefaultConfig())

	if !ok {
		t.Fatalf("expected stop to resolve to a message")
	}
	if message != "Done. Tests pass now" {
		t.Fatalf("expected the transcript summary substituted, got %q", message)
	}
}

func TestResolveNotificationUsesSpecificTemplate(t *testing.T) {
	event := Event{HookEventName: EventNotification, NotificationType: "idle_prompt"}

	message, ok := Resolve(event, DefaultConfig())

	if !ok {
		t.Fatalf("expected notification to resolve to a message")
	}
	if message != "Waiting for your input." {
		t.Fatalf("expected the idle_prompt template, got %q", message)
	}
}

func TestResolveNotificationFallsBackToDefaultTemplate(t *testing.T) {
	event := Event{
		HookEventName:    EventNotification,
		NotificationType: "unknown_xyz",
		Message:          strPtr("hi"),
	}

	message, ok := Resolve(event, DefaultConfig())

	if !ok {
		t.Fatalf("expected notification to resolve to a message")
	}
	if message != "hi" {
		t.Fatalf("expected the default template with the message substituted, got %q", message)
	}
}

func TestResolveNotificationWithoutMessageUsesLiteral(t *testing.T) {
	event := Event{HookEventName: EventNotification, NotificationType: "permission_prompt"}

	message, ok := Resolve(event, DefaultConfig())

	if !ok {
		t.Fatalf("expected notification to resolve to a message")
	}
	if message != "Need your permission. Notification" {
		t.Fatalf("expected the absent message to default to the literal, got %q", message)
	}
}

func TestResolveUnknownEventReturnsNothing(t *testing.T) {
	event := Event{HookEventName: "SessionStart"}

	if message, ok := Resolve(event, DefaultConfig()); ok {
		t.Fatalf("expected no message for an unrecognized event, got %q", message)
	}
}

func TestResolvePartialMessagesKeepDefaultTemplates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Messages = map[string]string{"prompt_submit": "Right away."}

	event := Event{HookEventName: EventStop, TranscriptSummary: "All done"}

	message, ok := Resolve(event, cfg)

	if !ok {
		t.Fatalf("expected stop to resolve to a message")
	}
	if message != "Done. All done" {
		t.Fatalf("expected the missing stop key to fall back to the default template, got %q", message)
	}
}

func TestCapMessageIdentityBelowLimit(t *testing.T) {
	text := strings.Repeat("a", maxMessageLength)

	if got := capMessage(text, maxMessageLength); got != text {
		t.Fatalf("expected text at the limit to pass through unchanged")
	}
}

func TestCapMessageWithoutTerminatorHardTruncates(t *testing.T) {
	text := strings.Repeat("a", 199) + " " + strings.Repeat("b", 50)

	got := capMessage(text, maxMessageLength)

	if got != strings.Repeat("a", 199)+"." {
		t.Fatalf("expected the hard prefix trimmed and terminated, got %q", got)
	}
}

func TestCapMessageKeepsCompleteFinalSentence(t *testing.T) {
	text := strings.Repeat("a", 150) + ". " + strings.Repeat("b", 100)

	got := capMessage(text, maxMessageLength)

	if got != strings.Repeat("a", 150)+"." {
		t.Fatalf("expected truncation just after the final sentence, got %q", got)
	}
}

func TestCapMessageIgnoresEarlyTerminator(t *testing.T) {
	text := "Hi. " + strings.Repeat("b", 300)

	got := capMessage(text, maxMessageLength)

	want := "Hi. " + strings.Repeat("b", maxMessageLength-4) + "."
	if got != want {
		t.Fatalf("expected a terminator before the midpoint to be ignored, got %q", got)
	}
}

func TestCapMessageNeverExceedsLimitPlusOne(t *testing.T) {
	inputs := []string{
		strings.Repeat("a", 500),
		strings.Repeat("a", 150) + ". " + strings.Repeat("b", 400),
		strings.Repeat("x.", 300),
		strings.Repeat("a", 199) + strings.Repeat(" ", 100),
	}

	for _, text := range inputs {
		if got := capMessage(text, maxMessageLength); utf8.RuneCountInString(got) > maxMessageLength+1 {
			t.Fatalf("expected at most %d runes, got %d for input %q",
				maxMessageLength+1, utf8.RuneCountInString(got), text[:20])
		}
	}
}
