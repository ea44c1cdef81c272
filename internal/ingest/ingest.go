// Package ingest reads the raw sales feed from disk. The feed is supposed to
// be UTF-8 but legacy exports show up in Windows-1252 or Latin-1, so byte
// content that fails UTF-8 validation is decoded via charmap instead of being
// rejected.
package ingest

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ReadSalesFile reads a sales feed and returns its data lines: the header
// line and blank lines are stripped, remaining lines are trimmed. A missing
// or unreadable file is an error for the caller to surface.
func ReadSalesFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sales file: %w", err)
	}

	text, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding sales file %s: %w", path, err)
	}

	rawLines := strings.Split(text, "\n")
	if len(rawLines) > 0 {
		// First line is the header.
		rawLines = rawLines[1:]
	}

	var lines []string
	for _, line := range rawLines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	// Windows-1252 covers Latin-1's printable range plus the 0x80-0x9F
	// punctuation that legacy exports actually use.
	out, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
