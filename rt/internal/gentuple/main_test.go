package main

import (
	"go/format"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedInTuplesAreCurrent(t *testing.T) {
	want, err := format.Source([]byte(generate()))
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join("..", "..", "tuple.go"))
	require.NoError(t, err)

	assert.Equal(t, string(want), string(got), "rt/tuple.go is stale: run go generate ./rt")
}

func TestWideTuplesAlignFields(t *testing.T) {
	src := []byte(generate())
	formatted, err := format.Source(src)
	require.NoError(t, err)
	assert.Contains(t, string(formatted), "\tV0  A\n")
	assert.Contains(t, string(formatted), "\tV11 L\n")
}
