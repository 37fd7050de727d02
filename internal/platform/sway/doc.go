// Package sway implements the compositor session for sway and i3 on top of
// github.com/joshuarubin/go-sway. Importing the package registers it as the
// platform backend.
package sway
