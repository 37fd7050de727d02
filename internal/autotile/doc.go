// Package autotile decides the split orientation for the container holding
// the focused window and applies it through a compositor session.
//
// Each decision fetches a fresh tree, resolves the focused node and its
// direct tiling parent along the focus path, applies the ignore policy,
// picks splith or splitv from the window's aspect ratio, and sends a command
// only when the parent's layout differs from the chosen one.
package autotile
