package jwk

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/smallstep/jwkgen/errs"
	"github.com/smallstep/jwkgen/jose"
)

func createAction(opts ...jose.Option) func(ctx *cli.Context) error {
	return func(ctx *cli.Context) error {
		if ctx.NArg() > 0 {
			return errs.UsageError(ctx, errs.TooManyArguments(ctx))
		}

		stdout, stderr := writers(ctx)

		p := jose.Params{
			KeyType: ctx.String("kty"),
			Size:    ctx.String("size"),
			Use:     ctx.String("use"),
			Alg:     ctx.String("alg"),
			Curve:   ctx.String("crv"),
			KeyID:   ctx.String("kid"),
			NoKeyID: ctx.Bool("no-kid"),
		}
		if p.Alg != "" && p.KeyType == jose.OKP.String() {
			fmt.Fprintf(stderr, "Warning: the algorithm '%s' is ignored for OKP keys.\n", p.Alg)
		}
		if ctx.Bool("public") && ctx.String("output") != "" {
			fmt.Fprintln(stderr, "Warning: the public key is not printed when --output is used.")
		}

		key, err := jose.Generate(p, opts...)
		if err != nil {
			return errs.UsageError(ctx, err)
		}

		out := &output{
			stdout:   stdout,
			stderr:   stderr,
			filename: ctx.String("output"),
			keySet:   ctx.Bool("set"),
			public:   ctx.Bool("public"),
		}
		return errs.UsageError(ctx, out.write(key))
	}
}

// writers returns the writers of the app, or os.Stdout and os.Stderr if they
// are not set.
func writers(ctx *cli.Context) (stdout, stderr io.Writer) {
	stdout, stderr = os.Stdout, os.Stderr
	if ctx.App != nil {
		if ctx.App.Writer != nil {
			stdout = ctx.App.Writer
		}
		if ctx.App.ErrWriter != nil {
			stderr = ctx.App.ErrWriter
		}
	}
	return
}
