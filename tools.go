//go:build tools

// tools.go keeps code generators used by go:generate directives in go.mod.
package main

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
