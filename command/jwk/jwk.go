package jwk

import (
	"github.com/urfave/cli"

	"github.com/smallstep/jwkgen/flags"
	"github.com/smallstep/jwkgen/jose"
)

// Command returns the command that generates a JWK. The given options are
// passed to jose.Generate.
func Command(opts ...jose.Option) cli.Command {
	return cli.Command{
		Name:      "jwkgen",
		Usage:     "generate a JWK (JSON Web Key)",
		UsageText: "jwkgen -t <kty> [-s <size>] [-c <curve>] [-u <use>] [-a <algorithm>] [-i <kid>] [-I] [-S] [-p] [-o <file>]",
		Description: `jwkgen generates a JWK (JSON Web Key) as defined in RFC7517. The key is
printed as JSON on stdout, or written to a file. Keys of type RSA, EC, oct
(symmetric) and OKP (RFC8037) are supported.

RSA and oct keys require a --size, EC and OKP keys require a --crv. If
no --kid is given a random key identifier is generated, unless
--no-kid is used. With --set the key is wrapped in a JWK Set, a JSON
object with a "keys" member whose value is an array of JWKs. If --output
is used together with --set, the key is appended to the JWK Set stored in
the file.

Every flag can be set with an environment variable named after the long flag
name, for example JWKGEN_KTY for --kty, or in the defaults file, a JSON
object like {"kty": "EC", "crv": "P-256"} read from --config or
$JWKGENPATH/defaults.json.

EXAMPLES:

Generate an RSA signing key:
$ jwkgen -t RSA -s 2048 -u sig -a RS256

Generate an EC key and print also its public key:
$ jwkgen -t EC -c P-256 -p

Generate a symmetric key without key identifier:
$ jwkgen -t oct -s 256 -I

Add an Ed25519 key to the JWK Set in keys.json:
$ jwkgen -t OKP -c Ed25519 -S -o keys.json`,
		Flags:  flags.All(),
		Action: cli.ActionFunc(createAction(opts...)),
	}
}
