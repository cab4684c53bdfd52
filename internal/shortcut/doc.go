// Package shortcut defines the normalized metadata record for one application
// shortcut and the resolution pass that fills missing fields from package
// metadata. Records are validated atomically at construction and collected in
// an explicit per-invocation registry keyed by script name.
package shortcut
