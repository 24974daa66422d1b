// Package templates holds the templ components of the web GUI. The *_templ.go
// files are generated from the .templ sources next to them.
package templates

//go:generate go tool templ generate
