package app

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"time"
)

// manifestEntry is a compact record of one extraction, written as a JSON
// sidecar so a batch's outputs can be audited and reproduced.
type manifestEntry struct {
	Source      string    `json:"source"`
	Output      string    `json:"output"`
	Strategy    string    `json:"strategy"`
	SHA256      string    `json:"sha256"`
	Chars       int       `json:"chars"`
	GeneratedAt time.Time `json:"generated_at"`
}

// computeSHA256Hex returns a lowercase hex-encoded SHA-256 of the given text.
func computeSHA256Hex(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:])
}

// writeManifest writes the sidecar next to the output document.
func writeManifest(path string, e manifestEntry) error {
	b, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
