// Package wconfig loads optional CLI defaults from a TOML file, the way
// github.com/dekarrin/tunaq's internal/tqw package loads its world manifest:
// unmarshal into a plain struct, then let the caller layer runtime overrides
// (here, command-line flags) on top of whatever the file supplied.
package wconfig

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Defaults holds the subset of wparse's CLI options that may be supplied
// ahead of time in a config file, so a recurring invocation need not retype
// them. Any field left unset in the file keeps wparse's own flag default.
type Defaults struct {
	StartSymbol string `toml:"start_symbol"`
	Progress    bool   `toml:"progress"`
	LogLevel    string `toml:"log_level"`
}

// Load reads and unmarshals a TOML defaults file from path. It is not an
// error for path to not exist: Load returns a zero Defaults in that case,
// since the config file is optional.
func Load(path string) (Defaults, error) {
	var d Defaults

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return d, nil
		}
		return d, err
	}

	if err := toml.Unmarshal(data, &d); err != nil {
		return d, err
	}
	return d, nil
}
