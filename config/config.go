package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"time"
)

// name, commit and buildTime are filled in during build by the Makefile
var (
	name      = "jwkgen"
	buildTime = "N/A"
	commit    = "N/A"
)

// PathEnv defines the name of the environment variable that can overwrite
// the default configuration path.
const PathEnv = "JWKGENPATH"

// HomeEnv defines the name of the environment variable that can overwrite the
// default home directory.
const HomeEnv = "HOME"

// DefaultsFile is the name of the file in Path that holds the flag defaults.
const DefaultsFile = "defaults.json"

// Home returns the user home directory using the environment variable HOME or
// the os/user package. It returns an empty string if neither is available.
func Home() string {
	if home := os.Getenv(HomeEnv); home != "" {
		return filepath.Clean(home)
	}
	if usr, err := user.Current(); err == nil && usr.HomeDir != "" {
		return filepath.Clean(usr.HomeDir)
	}
	return ""
}

// Path returns the path for the jwkgen configuration directory, this is
// defined by the environment variable JWKGENPATH or if this is not set it will
// default to '$HOME/.jwkgen'. The directory is never created.
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return filepath.Clean(p)
	}
	home := Home()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".jwkgen")
}

// DefaultsPath returns the path of the default flags file.
func DefaultsPath() string {
	p := Path()
	if p == "" {
		return ""
	}
	return filepath.Join(p, DefaultsFile)
}

// Set updates the name, version and release date.
func Set(n, v, t string) {
	name = n
	buildTime = t
	commit = v
}

// Version returns the current version of the binary
func Version() string {
	out := commit
	if commit == "N/A" {
		out = "0000000-dev"
	}

	return fmt.Sprintf("%s/%s (%s/%s)",
		name, out, runtime.GOOS, runtime.GOARCH)
}

// ReleaseDate returns the time of when the binary was built
func ReleaseDate() string {
	out := buildTime
	if buildTime == "N/A" {
		out = time.Now().UTC().Format("2006-01-02 15:04 MST")
	}

	return out
}
