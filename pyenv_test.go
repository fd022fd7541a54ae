package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPythonConfiguredMissing(t *testing.T) {
	_, err := findPython("pydocmd-no-such-interpreter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configured interpreter")
}

func TestFindPythonConfiguredPath(t *testing.T) {
	// Any executable path satisfies the lookup; the test binary itself will do.
	exe, err := os.Executable()
	require.NoError(t, err)

	got, err := findPython(exe)
	require.NoError(t, err)
	assert.Equal(t, exe, got)
}
