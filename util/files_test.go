package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFilePreservePermsCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")

	require.NoError(t, WriteFilePreservePerms(path, []byte("hello")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestWriteFilePreservePermsOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte("a much longer previous version"), 0o600))

	require.NoError(t, WriteFilePreservePerms(path, []byte("new")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestErrorWithCodeUnwrap(t *testing.T) {
	inner := errors.New("permission denied")
	err := fmt.Errorf("scan: %w", &ErrorWithCode{StatusCode: ERROR_SCAN_FAILED, InternalError: inner})

	var withCode *ErrorWithCode
	require.True(t, errors.As(err, &withCode))
	assert.Equal(t, ERROR_SCAN_FAILED, withCode.StatusCode)
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "scan: permission denied", err.Error())
}
