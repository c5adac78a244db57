package utils

import (
	"os"

	"github.com/smallstep/jwkgen/errs"
)

// FileExists is a wrapper on os.Stat that returns false if os.Stat returns an
// error, it returns true otherwise. This method does not care if the path is a
// directory or a file.
func FileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile returns the contents of the file identified by name. It returns
// errs.FileError if the file cannot be read.
func ReadFile(name string) ([]byte, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, errs.FileError(err, name)
	}
	return b, nil
}
