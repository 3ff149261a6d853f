// Package version reports build information for the lazystream binary.
//
// Version, commit and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/lazystream/version.Version=1.0.0"
//
// Missing values fall back to the VCS stamp embedded by the Go toolchain.
package version
