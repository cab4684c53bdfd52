// Package config manages user-level settings stored at ~/.unishort/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default build output directory used by the build command.
package config
