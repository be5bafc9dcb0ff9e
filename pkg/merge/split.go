package merge

import "fmt"

// SplitGuard cuts the last tailLen lines off doc. The guard-closing tail of
// a single-header library is normally "#endif" plus a trailing blank line,
// hence the default of two. A document shorter than tailLen fails with
// ErrInsufficientLength.
func SplitGuard(doc Document, tailLen int) (SplitDeclarations, error) {
	if tailLen < 0 {
		return SplitDeclarations{}, fmt.Errorf("tail length must not be negative, got %d", tailLen)
	}
	if doc.Len() < tailLen {
		return SplitDeclarations{}, &PathError{
			Op:   "split",
			Path: doc.Path,
			Kind: ErrInsufficientLength,
			Err:  fmt.Errorf("document has %d lines, tail needs %d", doc.Len(), tailLen),
		}
	}

	cut := doc.Len() - tailLen
	return SplitDeclarations{
		Body: doc.Lines[:cut:cut],
		Tail: doc.Lines[cut:],
	}, nil
}
