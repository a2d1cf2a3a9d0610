package main

import "embed"

// configFS carries the default settings, animation manifest and levels so
// the binary runs without a config directory
//
//go:embed configs
var configFS embed.FS
