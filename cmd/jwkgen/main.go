package main

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/urfave/cli"

	"github.com/smallstep/jwkgen/command"
	"github.com/smallstep/jwkgen/command/jwk"
	"github.com/smallstep/jwkgen/command/version"
	"github.com/smallstep/jwkgen/config"
	"github.com/smallstep/jwkgen/jose"
)

// Version is set by an LDFLAG at build time representing the git tag or commit
// for the current release
var Version = "N/A"

// BuildTime is set by an LDFLAG at build time representing the timestamp at
// the time of build
var BuildTime = "N/A"

func init() {
	config.Set("jwkgen", Version, BuildTime)
}

func main() {
	defer panicHandler()

	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		if os.Getenv("JWKGENDEBUG") == "1" {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer, opts ...jose.Option) *cli.App {
	// Override global framework components
	cli.VersionPrinter = version.Command
	cli.FlagStringer = stringifyFlag

	cmd := jwk.Command(opts...)

	// Configure cli app
	app := cli.NewApp()
	app.Name = cmd.Name
	app.HelpName = cmd.Name
	app.Usage = cmd.Usage
	app.UsageText = cmd.UsageText
	app.Description = cmd.Description
	app.Version = config.Version()
	app.Flags = cmd.Flags
	app.Action = cmd.Action
	command.Configure(app)

	// All non-successful output should be written to stderr
	app.Writer = stdout
	app.ErrWriter = stderr

	return app
}

func panicHandler() {
	if r := recover(); r != nil {
		if os.Getenv("JWKGENDEBUG") == "1" {
			fmt.Fprintf(os.Stderr, "%s\n", config.Version())
			fmt.Fprintf(os.Stderr, "Release Date: %s\n\n", config.ReleaseDate())
			panic(r)
		} else {
			fmt.Fprintln(os.Stderr, "Something unexpected happened.")
			fmt.Fprintln(os.Stderr, "If you want to help us debug the problem, please run:")
			fmt.Fprintf(os.Stderr, "JWKGENDEBUG=1 %s\n", strings.Join(os.Args, " "))
			os.Exit(2)
		}
	}
}

func flagValue(f cli.Flag) reflect.Value {
	fv := reflect.ValueOf(f)
	for fv.Kind() == reflect.Ptr {
		fv = reflect.Indirect(fv)
	}
	return fv
}

var placeholderString = regexp.MustCompile(`<.*?>`)

func stringifyFlag(f cli.Flag) string {
	fv := flagValue(f)
	usage := fv.FieldByName("Usage").String()
	placeholder := placeholderString.FindString(usage)
	if placeholder == "" {
		switch f.(type) {
		case cli.BoolFlag, cli.BoolTFlag:
		default:
			placeholder = "<value>"
		}
	}
	return cli.FlagNamePrefixer(fv.FieldByName("Name").String(), placeholder) + "\t" + usage
}
