//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools used by this repository:
// - github.com/matryer/moq (test doubles, see //go:generate lines in *_test.go)
// - github.com/pressly/goose/v3/cmd/goose (ad-hoc migrations; cmd/migrate embeds the same files)
