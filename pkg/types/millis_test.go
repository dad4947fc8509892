package types

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMillis_Humanized_Boundaries(t *testing.T) {
	cases := []struct {
		in   Millis
		want string
	}{
		{Millis(0), "0 ms"},
		{Millis(1), "1 ms"},
		{Millis(999), "999 ms"},
		{Millis(1000), "1.00 s"},
		{Millis(1500), "1.50 s"},
		{Millis(59999), "60.00 s"}, // just below one minute
		{Millis(60000), "1.00 min"},
		{Millis(90000), "1.50 min"},
		{Millis(3599999), "60.00 min"}, // just below one hour
		{Millis(3600000), "1.00 h"},
		{Millis(9000000), "2.50 h"},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case_%d_%d", i, int64(tc.in)), func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.Humanized())
		})
	}
}

func TestMillis_Conversions(t *testing.T) {
	t.Run("seconds", func(t *testing.T) {
		assert.InDelta(t, 1.5, Millis(1500).Seconds(), 1e-9)
		assert.InDelta(t, 0, Millis(0).Seconds(), 1e-9)
	})

	t.Run("duration", func(t *testing.T) {
		require.Equal(t, 1500*time.Millisecond, Millis(1500).Duration())
		require.Equal(t, time.Duration(0), Millis(0).Duration())
	})
}
