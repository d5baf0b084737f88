// Package web embeds the static assets served next to the wasm binary.
// app.wasm itself is built into this directory and served from disk.
package web

import "embed"

// Assets holds the stylesheet and the loader animation under assets/.
//
//go:embed assets/*
var Assets embed.FS

const (
	StylesPath    = "/assets/app.css"
	AnimationPath = "/assets/loading-animation.json"
)
