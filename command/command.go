package command

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/smallstep/jwkgen/config"
	"github.com/smallstep/jwkgen/errs"
	"github.com/smallstep/jwkgen/utils"
)

// EnvPrefix is the prefix of the environment variables that can be used to
// set the flags.
const EnvPrefix = "JWKGEN_"

// Configure enables reading the flags of the app from environment variables
// and from the defaults file. The app action must be a cli.ActionFunc or a
// func(*cli.Context) error and it will run after the defaults are loaded.
//
// Values given in the command line take precedence over the environment, and
// the environment over the defaults file.
func Configure(app *cli.App) {
	setEnvVar(app.Flags)

	var action cli.ActionFunc
	switch fn := app.Action.(type) {
	case cli.ActionFunc:
		action = fn
	case func(*cli.Context) error:
		action = fn
	default:
		return
	}

	flags := app.Flags
	app.Action = cli.ActionFunc(func(ctx *cli.Context) error {
		if err := getConfigVars(ctx, flags); err != nil {
			return errs.UsageError(ctx, err)
		}
		return action(ctx)
	})
}

// getConfigVars load the defaults.json file and sets the flags if they are not
// already set. A missing file is ignored unless it was given with --config.
//
// Only first level members are supported, keyed by the long name of the flag.
func getConfigVars(ctx *cli.Context, flags []cli.Flag) error {
	configFile := ctx.String("config")
	explicit := configFile != ""
	if !explicit {
		if configFile = config.DefaultsPath(); configFile == "" {
			return nil
		}
	}

	if !explicit && !utils.FileExists(configFile) {
		return nil
	}
	b, err := utils.ReadFile(configFile)
	if err != nil {
		return err
	}

	m := make(map[string]interface{})
	if err := json.Unmarshal(b, &m); err != nil {
		return errors.Wrapf(err, "error parsing %s", configFile)
	}

	for _, f := range flags {
		name := flagName(f)
		if name == "config" || ctx.IsSet(name) {
			continue
		}
		if v, ok := m[name]; ok {
			if err := ctx.Set(name, fmt.Sprintf("%v", v)); err != nil {
				return errors.Wrapf(err, "error setting '%s' from %s", name, configFile)
			}
		}
	}

	return nil
}

// flagName returns the long name of a flag.
func flagName(f cli.Flag) string {
	parts := strings.Split(f.GetName(), ",")
	return strings.TrimSpace(parts[0])
}

// getEnvVar generates the environment variable for the given flag name.
func getEnvVar(name string) string {
	parts := strings.Split(name, ",")
	name = strings.TrimSpace(parts[0])
	name = strings.ReplaceAll(name, "-", "_")
	return EnvPrefix + strings.ToUpper(name)
}

// setEnvVar sets the EnvVar element to each flag that does not have one.
func setEnvVar(flags []cli.Flag) {
	for i := range flags {
		envVar := getEnvVar(flags[i].GetName())
		switch f := flags[i].(type) {
		case cli.BoolFlag:
			if f.EnvVar == "" {
				f.EnvVar = envVar
				flags[i] = f
			}
		case cli.StringFlag:
			if f.EnvVar == "" {
				f.EnvVar = envVar
				flags[i] = f
			}
		case cli.IntFlag:
			if f.EnvVar == "" {
				f.EnvVar = envVar
				flags[i] = f
			}
		}
	}
}
