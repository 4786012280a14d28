// Package capmind exposes module-level metadata.
package capmind

// Version is the current capmind release version.
const Version = "0.1.0"
