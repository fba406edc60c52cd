package scan

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html/charset"
)

// binarySniffLen matches git's heuristic for spotting binary content
const binarySniffLen = 8000

var ErrBinaryFile = errors.New("binary content")

// countNonBlankLines counts the lines that are not empty after trimming
// surrounding whitespace. Lines are split on '\n' only.
func countNonBlankLines(content string) int {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	count := 0
	for _, line := range strings.Split(content, "\n") {
		if len(strings.TrimSpace(line)) > 0 {
			count++
		}
	}
	return count
}

// decodeText turns raw file bytes into text. Content with a NUL byte near
// the start is rejected as binary. Everything else is decoded with the
// detected charset, which falls back to windows-1252 for non UTF-8 input.
func decodeText(contentBytes []byte) (string, error) {
	sniff := contentBytes
	if len(sniff) > binarySniffLen {
		sniff = sniff[:binarySniffLen]
	}
	if bytes.IndexByte(sniff, 0) != -1 {
		return "", ErrBinaryFile
	}

	encoding, _, _ := charset.DetermineEncoding(contentBytes, "")
	decodedBytes, err := encoding.NewDecoder().Bytes(contentBytes)
	if err != nil {
		return "", fmt.Errorf("failed to decode file: %w", err)
	}
	return string(decodedBytes), nil
}
