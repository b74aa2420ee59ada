package app

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("viz", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-sim", "crt", "-scale", "4", "-sps", "240", "-set", "knots=2", "-set", "mode=x=y"})
	require.NoError(t, err)
	assert.Equal(t, "crt", cfg.Sim)
	assert.Equal(t, 4, cfg.Scale)
	assert.Equal(t, 60, cfg.TPS)
	assert.Equal(t, 240, cfg.SPS)
	assert.Equal(t, SimArgs{"knots": "2", "mode": "x=y"}, cfg.Set)
}

func TestSimArgsRejectsBarewords(t *testing.T) {
	fs := flag.NewFlagSet("viz", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	NewConfig().Bind(fs)
	assert.Error(t, fs.Parse([]string{"-set", "knots"}))
	assert.Error(t, fs.Parse([]string{"-set", "=3"}))
}
