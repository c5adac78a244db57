package utils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/smallstep/jwkgen/errs"
)

// ErrIsDir is the error returned if the file is a directory.
var ErrIsDir = errors.New("file is a directory")

// WriteFile writes data to filename, replacing the file if it exists. The
// data is first written to a temporary file in the same directory that is
// then renamed to filename, so filename is either left untouched or holds
// the complete data.
//
// Concurrent writers of the same file are not serialized, the last rename
// wins.
func WriteFile(filename string, data []byte, perm os.FileMode) (err error) {
	if st, err := os.Stat(filename); err == nil && st.IsDir() {
		return errors.Wrapf(ErrIsDir, "error writing %s", filename)
	}

	dir, base := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".tmp-")
	if err != nil {
		return errs.FileError(err, filename)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		f.Close()
		return errs.FileError(err, filename)
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return errs.FileError(err, filename)
	}
	if err = f.Close(); err != nil {
		return errs.FileError(err, filename)
	}
	if err = os.Chmod(tmp, perm); err != nil {
		return errs.FileError(err, filename)
	}
	if err = os.Rename(tmp, filename); err != nil {
		return errs.FileError(err, filename)
	}
	return nil
}
