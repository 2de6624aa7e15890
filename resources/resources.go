// Package resources embeds static assets shipped with the binary.
package resources

import _ "embed"

// DefaultConfig is the lowest configuration layer, overridden by the
// config file, the environment and command-line flags.
//
//go:embed default_config.yaml
var DefaultConfig []byte
