//go:build windows

package pathutil

// Native returns the platform convention of the running operating system.
func Native() Platform {
	return Windows
}
