//go:build tools

package tools

// Tool dependencies are tracked here with blank imports so that
// `go generate ./...` runs the pinned mockery version.
import (
	_ "github.com/vektra/mockery/v2"
)
