package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitGuard(t *testing.T) {
	doc := Document{Path: "hashmap.h", Lines: []string{"#ifndef H\n", "#define H\n", "int f(void);\n", "#endif\n", "\n"}}

	tests := []struct {
		name     string
		tailLen  int
		wantBody []string
		wantTail []string
	}{
		{name: "default tail", tailLen: 2, wantBody: doc.Lines[:3], wantTail: []string{"#endif\n", "\n"}},
		{name: "zero tail", tailLen: 0, wantBody: doc.Lines, wantTail: []string{}},
		{name: "whole document", tailLen: 5, wantBody: []string{}, wantTail: doc.Lines},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split, err := SplitGuard(doc, tt.tailLen)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, split.Body)
			assert.Equal(t, tt.wantTail, split.Tail)
			assert.Equal(t, doc.Lines, append(append([]string{}, split.Body...), split.Tail...))
		})
	}
}

func TestSplitGuardBodyAppendDoesNotTouchTail(t *testing.T) {
	doc := Document{Lines: []string{"a\n", "b\n", "#endif\n", "\n"}}
	split, err := SplitGuard(doc, 2)
	require.NoError(t, err)

	_ = append(split.Body, "injected\n")
	assert.Equal(t, []string{"#endif\n", "\n"}, split.Tail)
}

func TestSplitGuardInsufficientLength(t *testing.T) {
	doc := Document{Path: "tiny.h", Lines: []string{"#endif\n"}}

	_, err := SplitGuard(doc, 2)
	require.ErrorIs(t, err, ErrInsufficientLength)

	var perr *PathError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "tiny.h", perr.Path)
	assert.Equal(t, "split tiny.h: insufficient length: document has 1 lines, tail needs 2", err.Error())
}

func TestSplitGuardNegativeTail(t *testing.T) {
	_, err := SplitGuard(Document{Lines: []string{"a\n"}}, -1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInsufficientLength)
}
