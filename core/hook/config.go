package hook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
)

const configFileName = "config.json"

type Config struct {
	Enabled bool   `json:"enabled"`
	Voice   string `json:"voice"`
	// Rate is a playback speed factor, Volume a linear gain, Pitch a shift in
	// semitones. All are applied on the playback side; the synthesizer only
	// sees the voice.
	Rate      float64           `json:"rate"`
	Volume    float64           `json:"volume"`
	Pitch     float64           `json:"pitch"`
	Streaming bool              `json:"streaming"`
	Debug     bool              `json:"debug"`
	Messages  map[string]string `json:"messages"`
}

// defaultConfig is never handed out directly; DefaultConfig returns a deep
// copy so a loaded config cannot alias the messages map.
var defaultConfig = Config{
	Enabled: true,
	Voice:   "aura-asteria-en",
	Rate:    1.0,
	Volume:  1.0,
	Pitch:   0,
	Messages: map[string]string{
		"prompt_submit":                  "On it.",
		"stop":                           "Done. {summary}",
		"notification_permission_prompt": "Need your permission. {message}",
		"notification_idle_prompt":       "Waiting for your input.",
		"notification_default":           "{message}",
	},
}

func DefaultConfig() Config {
	var cfg Config
	_ = copier.CopyWithOption(&cfg, &defaultConfig, copier.Option{DeepCopy: true})
	return cfg
}

// Load reads config.json from dir and overlays it onto the defaults, so a
// partial file (including a partial messages mapping) keeps the default value
// for everything it does not name. A missing or corrupt file falls back to
// the defaults with one diagnostic line on stderr. Load never fails.
func Load(dir string) Config {
	data, err := os.ReadFile(filepath.Join(dir, configFileName))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error, using defaults: %v\n", err)
		return DefaultConfig()
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Config error, using defaults: %v\n", err)
		return DefaultConfig()
	}

	return cfg
}

// Dir is where the hook keeps config.json and debug.log: $CLAUDEVOICE_DIR
// when set, otherwise the directory the executable lives in.
func Dir() string {
	if dir := os.Getenv("CLAUDEVOICE_DIR"); dir != "" {
		return dir
	}

	executable, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(executable)
}
