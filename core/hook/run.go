package hook

import (
	"context"
	"fmt"
	"io"
)

// Speaker voices a resolved message. The hook owns no audio machinery; the
// speech pipeline is injected through this seam.
type Speaker interface {
	Speak(ctx context.Context, text string, cfg Config) error
}

// Run executes one hook invocation end to end: parse the event from stdin,
// load the configuration, resolve a message and speak it synchronously. Only
// a malformed stdin document (a contract violation by the invoking caller)
// and collaborator failures surface as errors; everything else degrades to a
// silent, successful no-op.
func Run(ctx context.Context, stdin io.Reader, dir string, speaker Speaker) error {
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	event, err := ParseEvent(raw)
	if err != nil {
		return err
	}

	cfg := Load(dir)

	if cfg.Debug {
		debugLog(dir, raw)
	}

	if !cfg.Enabled {
		return nil
	}

	message, ok := Resolve(event, cfg)
	if !ok || message == "" {
		return nil
	}

	logger.DebugContext(ctx, "speaking resolved message",
		"hook_event_name", event.HookEventName,
		"message_length", len(message),
	)

	return speaker.Speak(ctx, message, cfg)
}
