//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Research builds the CLI and runs one query against both sources.
//
//	mage research "quantum error correction"
func Research(query string) error {
	mg.Deps(Build)
	return sh.RunV(binPath, "research", "--sources", "both", query)
}

// Prompt builds the CLI and prints the deep research prompt for topic.
func Prompt(topic string) error {
	mg.Deps(Build)
	return sh.RunV(binPath, "prompt", topic)
}

// Serve builds the CLI and serves MCP over streamable HTTP on addr (e.g. ":8080").
func Serve(addr string) error {
	mg.Deps(Build)
	return sh.RunV(binPath, "serve", "--http", addr)
}
