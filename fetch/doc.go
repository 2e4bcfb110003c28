// Package fetch downloads Nerd Font release archives and extracts their
// font files.
//
// Releases are published on GitHub as .tar.xz archives, one per font:
//
//	https://github.com/ryanoasis/nerd-fonts/releases/download/v3.2.1/Hack.tar.xz
//
// Example:
//
//	c := fetch.NewClient()
//	files, err := c.Fetch(ctx, "Hack", "", "docs/assets/fonts/HackNerdFont")
package fetch
