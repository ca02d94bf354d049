// Package source resolves verification input that may be either a file
// path or inline text. A path is only treated as a file when it names an
// existing regular file; everything else passes through unchanged.
package source

import "os"

// Resolve returns the contents of src if it names an existing regular
// file, otherwise src itself. The returned error is non-nil only when src
// names a file that cannot be read.
func Resolve(src string) (string, error) {
	info, err := os.Stat(src)
	if err != nil || !info.Mode().IsRegular() {
		return src, nil
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
