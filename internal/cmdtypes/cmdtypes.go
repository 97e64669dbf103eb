// Package cmdtypes provides shared types for the cmd package and the
// packages it wires together.
package cmdtypes

import (
	"github.com/opmodel/jproj/internal/config"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	Config     *config.Config
	ConfigPath string // resolved --config path
}
