// Package templates provides embedded YAML configuration templates.
package templates

import _ "embed"

// ConfigYAML contains the default config.yaml template for application
// configuration. It is copied to the config directory on the first run.
//
//go:embed config.yaml
var ConfigYAML string
