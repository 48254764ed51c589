// Package config loads optional defaults for git-changes-view from a config
// file and environment variables.
// Field tags use mapstructure for viper unmarshalling.
package config

import (
	"fmt"
	"slices"

	"github.com/DanEscher98/git-changes-view/internal/changes"
)

// validSortKeys are the accepted values for the sort setting.
var validSortKeys = []string{changes.SortName, changes.SortChanges, changes.SortPath}

// Config holds the user-tunable defaults. Explicit CLI flags always
// override these values.
type Config struct {
	// Sort is the default sort key: name, changes, or path.
	Sort string `mapstructure:"sort"`
	// Flat selects the flat list instead of the tree view by default.
	Flat bool `mapstructure:"flat"`
	// NoColor disables ANSI coloring by default.
	NoColor bool `mapstructure:"no_color"`
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if !slices.Contains(validSortKeys, c.Sort) {
		return fmt.Errorf("invalid sort key %q (want one of name, changes, path)", c.Sort)
	}

	return nil
}
