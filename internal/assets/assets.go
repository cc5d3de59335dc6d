package assets

import (
	_ "embed"
)

//go:embed defaults.yaml
var defaultConfig []byte

// DefaultConfig returns the embedded defaults.yaml.
func DefaultConfig() []byte {
	out := make([]byte, len(defaultConfig))
	copy(out, defaultConfig)
	return out
}
