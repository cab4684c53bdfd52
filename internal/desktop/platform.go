package desktop

import "runtime"

// Platform is the coarse OS family tag used to pick a renderer and an icon
// extension whitelist.
type Platform string

const (
	Linux   Platform = "linux"
	Windows Platform = "win"
	Darwin  Platform = "darwin"
)

// iconExts maps each platform to the icon file extensions its shortcut
// format accepts.
var iconExts = map[Platform][]string{
	Linux:   {".ico", ".svg", ".png"},
	Windows: {".ico"},
	Darwin:  {".icns"},
}

// Detect maps the runtime OS to a platform tag. Anything that is not
// Windows or macOS is treated as linux, the only platform with a complete
// renderer.
func Detect() Platform {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return Darwin
	default:
		return Linux
	}
}

// ParsePlatform validates a user-supplied platform tag.
func ParsePlatform(s string) (Platform, bool) {
	switch Platform(s) {
	case Linux, Windows, Darwin:
		return Platform(s), true
	}
	return "", false
}

// IconExtensions returns the icon extension whitelist for the platform,
// each with a leading dot.
func (p Platform) IconExtensions() []string {
	return append([]string(nil), iconExts[p]...)
}
