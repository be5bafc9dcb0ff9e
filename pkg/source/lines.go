// Package source reads and writes documents as ordered sequences of lines.
package source

import (
	"bytes"
	"strings"
)

// sniffLen is how much of a document is inspected for binary content.
const sniffLen = 512

// SplitLines splits data after every '\n', keeping the terminators, so that
// strings.Join(SplitLines(s), "") == s. A final line without a terminator
// is kept as is. Empty input yields no lines.
func SplitLines(data string) []string {
	if data == "" {
		return nil
	}
	lines := strings.SplitAfter(data, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) []byte {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
	}
	return buf.Bytes()
}

// LooksBinary reports whether data is likely not text: it holds a NUL byte
// in its first bytes or more than 30% of them are non-printable.
func LooksBinary(data []byte) bool {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	if len(data) == 0 {
		return false
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return true
	}

	nonPrintable := 0
	for _, b := range data {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(data)) > 0.3
}

// isPrintable accepts printable ASCII, common whitespace and any byte of a
// multi-byte UTF-8 sequence.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t' || b >= 0x80
}
