package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	SPS   int
	Set   SimArgs
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "rope", Scale: 16, TPS: 60, SPS: 20, Set: SimArgs{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.SPS, "sps", c.SPS, "simulation steps per second")
	fs.Var(c.Set, "set", "simulation parameter as key=value (repeatable)")
}

// SimArgs collects key=value flags into the map handed to a sim factory.
type SimArgs map[string]string

func (a SimArgs) String() string {
	parts := make([]string, 0, len(a))
	for k, v := range a {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (a SimArgs) Set(value string) error {
	k, v, ok := strings.Cut(value, "=")
	if !ok || k == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	a[k] = v
	return nil
}
