package hook

import (
	"strings"
	"unicode"
)

const maxMessageLength = 200

// Resolve maps an event to the message to speak under the configured
// templates. The second return reports whether the event produces a message
// at all; unrecognized event kinds never do, and resolution never fails.
func Resolve(event Event, cfg Config) (string, bool) {
	messages := cfg.Messages

	switch event.HookEventName {
	case EventUserPromptSubmit:
		return lookupTemplate(messages, "prompt_submit"), true

	case EventStop:
		if event.StopHookActive {
			// The stop hook already fired for this turn; a second
			// notification would be a duplicate.
			return "", false
		}

		template := lookupTemplate(messages, "stop")
		summary := event.TranscriptSummary
		if summary == "" && event.TranscriptPath != "" {
			summary = ExtractSummary(event.TranscriptPath)
		}

		var text string
		if summary == "" {
			text = strings.TrimSpace(strings.ReplaceAll(template, "{summary}", ""))
		} else {
			text = strings.ReplaceAll(template, "{summary}", summary)
		}
		return capMessage(text, maxMessageLength), true

	case EventNotification:
		template, ok := messages["notification_"+event.NotificationType]
		if !ok {
			template = lookupTemplate(messages, "notification_default")
		}

		message := "Notification"
		if event.Message != nil {
			message = *event.Message
		}
		return capMessage(strings.ReplaceAll(template, "{message}", message), maxMessageLength), true
	}

	return "", false
}

// lookupTemplate falls back to the built-in template per key, so a messages
// mapping that names only some keys overlays the defaults instead of
// replacing them.
func lookupTemplate(messages map[string]string, key string) string {
	if template, ok := messages[key]; ok {
		return template
	}
	return defaultConfig.Messages[key]
}

// capMessage keeps text within max runes. When it has to cut, it prefers
// ending just after the last period past the midpoint of the prefix (a
// complete final sentence); otherwise it trims trailing whitespace off the
// hard prefix and appends one period. The result never exceeds max+1 runes.
func capMessage(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}

	cut := runes[:max]
	lastPeriod := -1
	for i := len(cut) - 1; i >= 0; i-- {
		if cut[i] == '.' {
			lastPeriod = i
			break
		}
	}

	if lastPeriod > max/2 {
		return string(cut[:lastPeriod+1])
	}
	return strings.TrimRightFunc(string(cut), unicode.IsSpace) + "."
}
