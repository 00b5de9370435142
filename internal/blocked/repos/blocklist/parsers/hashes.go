package parsers

import (
	"bufio"
	"io"
	"strings"

	logpkg "github.com/haukened/blockedservers/internal/blocked/common/log"
	"github.com/haukened/blockedservers/internal/blocked/domain"
)

// ParseHashList parses the newline-delimited blocked servers payload.
//
// Behavior:
// - One entry per line, trimmed of surrounding whitespace (CRLF tolerated)
// - A UTF-8 BOM on the first line is dropped
// - Blank lines are skipped
// - Entries that are not 40 hex characters are kept as-is; they never match
// - Order and duplicates are preserved
func ParseHashList(r io.Reader, source string, logger logpkg.Logger) ([]string, error) {
	scanner := bufio.NewScanner(r)
	out := make([]string, 0, 4096)

	logger.Debug(map[string]any{"source": source}, "parse_hash_list_start")

	lineNum := 0
	malformed := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		entry := strings.TrimSpace(line)
		if entry == "" {
			logger.Debug(map[string]any{"line": lineNum}, "skip_empty")
			continue
		}
		if !domain.NormalizeDigest(entry).IsWellFormed() {
			malformed++
			logger.Debug(map[string]any{"line": lineNum, "raw": entry}, "malformed_hash")
		}
		out = append(out, entry)
	}
	if err := scanner.Err(); err != nil {
		logger.Debug(map[string]any{"source": source, "error": err.Error()}, "parse_hash_list_scan_error")
		return nil, err
	}

	logger.Debug(map[string]any{"source": source, "count": len(out), "malformed": malformed}, "parse_hash_list_done")
	return out, nil
}
