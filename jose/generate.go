package jose

import (
	"strconv"
	"strings"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/pkg/errors"
)

// Params are the raw parameters used to generate a JWK, as they are read
// from the command line. Empty strings mean the parameter was not set.
type Params struct {
	KeyType string
	Size    string
	Use     string
	Alg     string
	Curve   string
	KeyID   string
	NoKeyID bool
}

// Generate validates the given parameters and generates a new JWK. Nothing
// is generated if any of the parameters is missing or invalid.
func Generate(p Params, opts ...Option) (jwk.Key, error) {
	ctx := newContext(opts...)

	if p.KeyType == "" {
		return nil, errors.New("key type must be supplied")
	}
	kty, err := ParseKeyType(p.KeyType)
	if err != nil {
		return nil, err
	}

	use, err := ParseKeyUse(p.Use)
	if err != nil {
		return nil, err
	}

	var (
		size int
		crv  Curve
	)
	switch kty {
	case RSA, OCT:
		if size, err = parseSize(kty, p.Size); err != nil {
			return nil, err
		}
	case EC, OKP:
		if p.Curve == "" {
			return nil, errors.Errorf("curve is required for key type %s", kty)
		}
		if crv, err = ParseCurve(p.Curve); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unknown key type '%s'", p.KeyType)
	}

	kid, err := KeyID(ctx.random, p.KeyID, p.NoKeyID, use)
	if err != nil {
		return nil, err
	}

	switch kty {
	case RSA:
		return MakeRSA(ctx.generator, size, use, p.Alg, kid)
	case OCT:
		return MakeOct(ctx.generator, size, use, p.Alg, kid)
	case EC:
		return MakeEC(ctx.generator, crv, use, p.Alg, kid)
	case OKP:
		return MakeOKP(ctx.generator, crv, use, kid)
	default:
		return nil, errors.Errorf("unknown key type '%s'", p.KeyType)
	}
}

// parseSize parses the key size in bits. Sizes must be positive and
// divisible by 8.
func parseSize(kty KeyType, s string) (int, error) {
	if s == "" {
		return 0, errors.Errorf("key size (in bits) is required for key type %s", kty)
	}
	// Digit separators are valid Go literals but not valid sizes.
	if strings.ContainsRune(s, '_') {
		return 0, errors.Errorf("invalid key size '%s'", s)
	}
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, errors.Errorf("invalid key size '%s'", s)
	}
	if n <= 0 {
		return 0, errors.Errorf("key size (in bits) must be greater than 0, got %d", n)
	}
	if n%8 != 0 {
		return 0, errors.Errorf("key size (in bits) must be divisible by 8, got %d", n)
	}
	return int(n), nil
}
