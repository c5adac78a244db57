package version

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/smallstep/jwkgen/config"
)

// Command prints out the current version of the tool. It is used as the
// cli.VersionPrinter.
func Command(c *cli.Context) {
	fmt.Fprintf(c.App.Writer, "%s\n", config.Version())
	fmt.Fprintf(c.App.Writer, "Release Date: %s\n", config.ReleaseDate())
}
