//go:build !rand_metadata

package modules

// Metadata reports whether parameter names and doc strings are kept.
const Metadata = false
