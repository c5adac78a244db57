package flags

import (
	"github.com/urfave/cli"
)

// KTY is the flag to set the key type.
var KTY = cli.StringFlag{
	Name:  "kty, t",
	Usage: "The <kty> (key type) to generate, one of RSA, EC, oct or OKP. Required.",
}

// Size is the flag to set the key size. It is a string flag so the value can
// be validated, and reported, together with the key type.
var Size = cli.StringFlag{
	Name:  "size, s",
	Usage: "The <size> of the key in bits, divisible by 8. Required for RSA and oct keys, RSA keys need at least 2048 bits.",
}

// Use is the flag to set the intended use of the key.
var Use = cli.StringFlag{
	Name:  "use, u",
	Usage: "The intended <use> of the key, sig (signature) or enc (encryption).",
}

// Alg is the flag to set the algorithm of the key.
var Alg = cli.StringFlag{
	Name:  "alg, a",
	Usage: "The <algorithm> of the key, e.g. RS256. It is not validated, and ignored for OKP keys.",
}

// KeyID is the flag to set the key identifier.
var KeyID = cli.StringFlag{
	Name:  "kid, i",
	Usage: "The <kid> (key ID) of the key. If unset a random one is generated, prefixed with the key use.",
}

// NoKeyID is the flag to skip the generation of a key identifier.
var NoKeyID = cli.BoolFlag{
	Name:  "no-kid, I",
	Usage: "Do not generate a key ID if --kid is not given.",
}

// Public is the flag to print the public key.
var Public = cli.BoolFlag{
	Name:  "public, p",
	Usage: "Also print the public key. Ignored with --output.",
}

// Curve is the flag to set the key curve.
var Curve = cli.StringFlag{
	Name:  "crv, c",
	Usage: "The <curve> of EC (P-256, P-384, P-521) and OKP (Ed25519, X25519) keys. Required for those key types.",
}

// KeySet is the flag to wrap the key in a JWK Set.
var KeySet = cli.BoolFlag{
	Name:  "set, S",
	Usage: "Wrap the key in a JWK Set. With --output the key is appended to the JWK Set in the file.",
}

// Output is the flag to write the key to a file.
var Output = cli.StringFlag{
	Name:  "output, o",
	Usage: "Write the key to <file> instead of stdout. The file is replaced, with 0600 permissions.",
}

// Config is the flag to set the defaults file.
var Config = cli.StringFlag{
	Name:  "config",
	Usage: "The JSON <file> with the flag defaults. Defaults to $JWKGENPATH/defaults.json.",
}

// All returns a new slice with the flags of jwkgen in the order they are
// shown in the help.
func All() []cli.Flag {
	return []cli.Flag{
		KTY,
		Size,
		Use,
		Alg,
		KeyID,
		NoKeyID,
		Public,
		Curve,
		KeySet,
		Output,
		Config,
	}
}
