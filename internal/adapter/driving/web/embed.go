package web

import "embed"

// StaticFS holds the embedded static assets (stylesheet and copy-button script).
//
//go:embed static/*
var StaticFS embed.FS

// docsFS holds the markdown sources of the static pages.
//
//go:embed docs/*.md
var docsFS embed.FS
