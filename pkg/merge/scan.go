package merge

import "strings"

// Marker decides whether a line starts the retained implementation.
type Marker func(line string) bool

// PrefixMarker matches lines beginning with prefix. An empty prefix
// matches every line.
func PrefixMarker(prefix string) Marker {
	return func(line string) bool {
		return strings.HasPrefix(line, prefix)
	}
}

// ScanPreamble drops the leading lines of doc up to the first line matching
// marker: copyright banners, includes and comments that must not reach the
// merged header.
func ScanPreamble(doc Document, marker Marker) ScannedImplementation {
	for i, line := range doc.Lines {
		if marker(line) {
			return ScannedImplementation{Body: doc.Lines[i:], Skipped: i}
		}
	}
	return ScannedImplementation{Body: []string{}, Skipped: doc.Len()}
}
