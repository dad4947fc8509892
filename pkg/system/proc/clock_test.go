package proc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockTicks(t *testing.T) {
	t.Run("env_override", func(t *testing.T) {
		t.Setenv("CLK_TCK", "250")
		assert.Equal(t, 250, ClockTicks())
	})

	t.Run("ignores_garbage_env", func(t *testing.T) {
		t.Setenv("CLK_TCK", "weird")
		assert.Greater(t, ClockTicks(), 0)
	})

	t.Run("ignores_nonpositive_env", func(t *testing.T) {
		t.Setenv("CLK_TCK", "-50")
		assert.Greater(t, ClockTicks(), 0)
	})

	t.Run("positive_without_env", func(t *testing.T) {
		t.Setenv("CLK_TCK", "")
		assert.Greater(t, ClockTicks(), 0)
	})
}
