package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Walkthrough holds the arguments the walkthrough passes to each delegate.
type Walkthrough struct {
	Free     int `toml:"free"`
	Static   int `toml:"static"`
	Member   int `toml:"member"`
	Captured int `toml:"captured"`
	Lambda   int `toml:"lambda"`
	Unbound  int `toml:"unbound"`
	Moved    int `toml:"moved"`
}

func DefaultWalkthrough() Walkthrough {
	return Walkthrough{
		Free:     10,
		Static:   20,
		Member:   30,
		Captured: 40,
		Lambda:   40,
		Unbound:  50,
		Moved:    60,
	}
}

// Load overlays the TOML file at path on the defaults. An empty path yields
// the defaults.
func Load(path string) (Walkthrough, error) {
	cfg := DefaultWalkthrough()
	if path != "" {
		if err := loadToml(path, &cfg); err != nil {
			return Walkthrough{}, err
		}
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	meta, err := toml.Decode(string(data), out)
	if err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}
	return nil
}
