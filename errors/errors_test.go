package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWithHint(t *testing.T) {
	err := WithHint(New("error"), "try this fix")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "try this fix", hints[0])
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func TestSentinelConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		msg   string
	}{
		{"shape", NewShapeError("too shallow at depth %d", 2), IsShapeError, "too shallow at depth 2"},
		{"unsupported", NewUnsupportedValueError("cannot render %s", "chan int"), IsUnsupportedValueError, "cannot render chan int"},
		{"declaration", NewInvalidDeclarationError("bad identifier %q", "1x"), IsInvalidDeclarationError, `bad identifier "1x"`},
		{"hash", NewHashConstructionError("duplicate key %q", "a"), IsHashConstructionError, `duplicate key "a"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.Equal(t, tt.msg, tt.err.Error())
			assert.False(t, tt.check(New(tt.msg)), "plain error with same text must not match")
		})
	}
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	err := Wrap(NewShapeError("ragged"), "WriteArray GRID")
	err = WithDetail(err, "symbol: GRID")

	assert.True(t, IsShapeError(err))
	assert.False(t, IsParseError(err))
	assert.Contains(t, GetAllDetails(err), "symbol: GRID")
}

func TestWrapArtifactMissing(t *testing.T) {
	err := WrapArtifactMissing(New("file does not exist"), "Lookup")

	assert.True(t, IsArtifactMissingError(err))
	assert.Contains(t, err.Error(), `artifact "Lookup" not found`)
	assert.Contains(t, GetAllDetails(err), "symbol: Lookup")
}

func TestIsHelpersNil(t *testing.T) {
	assert.False(t, IsShapeError(nil))
	assert.False(t, IsParseError(nil))
	assert.False(t, IsArtifactMissingError(nil))
	assert.False(t, IsHashConstructionError(nil))
}

func ExampleWithHint() {
	err := New("artifact missing")
	err = WithHint(err, "run the generation program before go build")

	hints := GetAllHints(err)
	fmt.Println(hints[0])
	// Output: run the generation program before go build
}
