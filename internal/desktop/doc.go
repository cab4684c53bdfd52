// Package desktop renders shortcut metadata records into OS-specific
// shortcut descriptors. The Linux renderer emits Free Desktop .desktop
// entries; the Windows and macOS renderers are declared but unsupported.
// Platform detection and the per-platform icon extension whitelist live
// here as pure data lookups.
package desktop
