// Package platform provides cross-platform filesystem shims. Permission
// bits are applied with chmod on Unix systems and skipped on Windows,
// which has no Unix-style permission model.
package platform
