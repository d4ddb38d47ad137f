package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateRequestID creates an ID used to correlate the log lines of one analysis
// Format: epochMillis_md5(imageURL)[:8]
func GenerateRequestID(imageURL string) string {
	epochMillis := time.Now().UnixNano() / 1000000

	hash := md5.Sum([]byte(imageURL))
	hashStr := hex.EncodeToString(hash[:])[:8]

	return fmt.Sprintf("%d_%s", epochMillis, hashStr)
}

// TruncateForLog shortens s to at most max runes, appending "..." when cut
func TruncateForLog(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
