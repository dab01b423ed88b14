//go:build !unix

package gradle

import "os"

// checkWrapper only checks existence; batch files carry no execute bit.
func checkWrapper(path string) error {
	_, err := os.Stat(path)
	return err
}
