//go:build tools
// +build tools

package tools

// Tracks CLI tool dependencies in go.mod. Not imported by application code.

import (
	_ "github.com/pressly/goose/v3/cmd/goose"
)
