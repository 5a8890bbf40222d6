// Package paths resolves caller supplied document paths against the storage
// root and serializes edits to the same resolved file.
package paths

import "path/filepath"

// Resolve returns filename unchanged when it is absolute and joins it under
// root otherwise. It does not touch the filesystem.
func Resolve(filename, root string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(root, filename)
}
