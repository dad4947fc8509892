package proc

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSource(t *testing.T) {
	src := NewSource()
	require.NotNil(t, src)

	pids, err := src.Pids()
	require.NoError(t, err)
	assert.Contains(t, pids, int32(os.Getpid()))
}
