package catlog

import "runtime/debug"

// BundleID returns the main module path of the running binary, the closest
// thing a Go process has to an application identifier. It returns "" when
// build info is unavailable (e.g. binaries built without module support).
func BundleID() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return ""
	}
	return bi.Main.Path
}

// StaticIdentity returns an identity func that always reports id.
func StaticIdentity(id string) func() string {
	return func() string { return id }
}
