package hook

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const debugLogFileName = "debug.log"

// debugLog appends the raw event to debug.log, stamped with an invocation id
// so interleaved runs can be told apart. The log is best-effort by contract:
// every failure is swallowed.
func debugLog(dir string, raw []byte) {
	file, err := os.OpenFile(filepath.Join(dir, debugLogFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer file.Close()

	_, _ = fmt.Fprintf(file, "%s %s\n%s\n---\n",
		uuid.NewString(),
		time.Now().Format(time.RFC3339),
		bytes.TrimSpace(raw),
	)
}
