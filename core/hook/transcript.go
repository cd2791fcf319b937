package hook

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"slices"
	"strings"
)

const maxSummaryLength = 150

// transcriptRecord is the slice of a transcript JSONL line this package
// cares about: assistant turns carrying text content blocks.
type transcriptRecord struct {
	Type    string `json:"type"`
	Message struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"message"`
}

// ExtractSummary reads a transcript log and returns a short summary of the
// final assistant turn: the last non-empty line of its last text block,
// trimmed to the first sentence when long. The concluding line is where the
// outcome or the open question usually lives. Every failure, from a missing
// file to a torn write, degrades to the empty string; a single corrupt line
// never aborts the scan.
func ExtractSummary(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	var lastText string
	scanner := bufio.NewScanner(file)
	// Transcript lines carry whole turns and outgrow the default buffer.
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var record transcriptRecord
		if err := json.Unmarshal(line, &record); err != nil {
			continue
		}
		if record.Type != "assistant" {
			continue
		}
		for _, block := range record.Message.Content {
			if block.Type == "text" {
				lastText = block.Text
			}
		}
	}
	if scanner.Err() != nil || lastText == "" {
		return ""
	}

	snippet := lastNonEmptyLine(lastText)
	runes := []rune(snippet)
	if len(runes) <= maxSummaryLength {
		return snippet
	}
	if period := slices.Index(runes[:maxSummaryLength], '.'); period > 0 {
		return string(runes[:period+1])
	}
	return string(runes[:maxSummaryLength])
}

func lastNonEmptyLine(text string) string {
	var last string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			last = line
		}
	}
	return last
}
