//go:build unix

package gradle

import "golang.org/x/sys/unix"

// checkWrapper fails unless the wrapper exists and is executable.
func checkWrapper(path string) error {
	return unix.Access(path, unix.X_OK)
}
