package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// harnessConfig mimics a package-level config the options pattern wraps.
type harnessConfig struct {
	Start   int
	Ratio   int
	Repeats int
}

func (hc *harnessConfig) SetRatio(ratio int) error {
	if ratio < 2 {
		return errors.New("ratio must be at least 2")
	}
	hc.Ratio = ratio

	return nil
}

func TestOption_New(t *testing.T) {
	cfg := &harnessConfig{}

	t.Run("creates option that can return error", func(t *testing.T) {
		opt := New(func(c *harnessConfig) error {
			return c.SetRatio(8)
		})

		err := opt.apply(cfg)
		require.NoError(t, err)
		require.Equal(t, 8, cfg.Ratio)
	})

	t.Run("propagates errors from option function", func(t *testing.T) {
		opt := New(func(c *harnessConfig) error {
			return c.SetRatio(1)
		})

		err := opt.apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "ratio must be at least 2")
	})
}

func TestOption_NoError(t *testing.T) {
	cfg := &harnessConfig{}

	opt := NoError(func(c *harnessConfig) {
		c.Start = 64
	})

	err := opt.apply(cfg)
	require.NoError(t, err)
	require.Equal(t, 64, cfg.Start)
}

func TestOption_Apply(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := &harnessConfig{}

		err := Apply(cfg,
			NoError(func(c *harnessConfig) { c.Start = 8 }),
			NoError(func(c *harnessConfig) { c.Repeats = 10 }),
			NoError(func(c *harnessConfig) { c.Start = 16 }), // later options win
		)
		require.NoError(t, err)
		require.Equal(t, 16, cfg.Start)
		require.Equal(t, 10, cfg.Repeats)
	})

	t.Run("stops at first error and returns it", func(t *testing.T) {
		cfg := &harnessConfig{}

		err := Apply(cfg,
			New(func(c *harnessConfig) error { return c.SetRatio(4) }),
			New(func(c *harnessConfig) error { return c.SetRatio(0) }),
			NoError(func(c *harnessConfig) { c.Start = 32 }),
		)
		require.Error(t, err)
		require.Equal(t, 4, cfg.Ratio) // first option applied
		require.Equal(t, 0, cfg.Start) // option after the failure skipped
	})

	t.Run("works with empty options slice", func(t *testing.T) {
		cfg := &harnessConfig{}
		err := Apply(cfg)
		require.NoError(t, err)
		require.Equal(t, harnessConfig{}, *cfg)
	})
}

// Ensure the generic machinery is not tied to struct targets.
func TestOption_GenericsWithDifferentTypes(t *testing.T) {
	var num int
	opt := NoError(func(n *int) {
		*n = 42
	})

	err := opt.apply(&num)
	require.NoError(t, err)
	require.Equal(t, 42, num)
}
