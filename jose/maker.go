package jose

import (
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/pkg/errors"
)

// MakeRSA generates an RSA JWK with a modulus of the given bits.
func MakeRSA(gen Generator, bits int, use KeyUse, alg, kid string) (jwk.Key, error) {
	key, err := gen.GenerateRSA(bits)
	if err != nil {
		return nil, errors.Wrap(err, "error generating RSA key")
	}
	if key == nil {
		return nil, errors.New("error generating RSA key: no key returned")
	}
	return newJWK(key, use, alg, kid)
}

// MakeOct generates a symmetric JWK of the given bits.
func MakeOct(gen Generator, bits int, use KeyUse, alg, kid string) (jwk.Key, error) {
	key, err := gen.GenerateOct(bits)
	if err != nil {
		return nil, errors.Wrap(err, "error generating oct key")
	}
	if len(key) == 0 {
		return nil, errors.New("error generating oct key: no key returned")
	}
	return newJWK(key, use, alg, kid)
}

// MakeEC generates an EC JWK on the given curve.
func MakeEC(gen Generator, crv Curve, use KeyUse, alg, kid string) (jwk.Key, error) {
	key, err := gen.GenerateEC(crv)
	if err != nil {
		return nil, errors.Wrap(err, "error generating EC key")
	}
	if key == nil {
		return nil, errors.New("error generating EC key: no key returned")
	}
	return newJWK(key, use, alg, kid)
}

// MakeOKP generates an OKP JWK on the given curve. OKP keys are created
// without an "alg" parameter.
func MakeOKP(gen Generator, crv Curve, use KeyUse, kid string) (jwk.Key, error) {
	key, err := gen.GenerateOKP(crv)
	if err != nil {
		return nil, errors.Wrap(err, "error generating OKP key")
	}
	if key == nil {
		return nil, errors.New("error generating OKP key: no key returned")
	}
	return newJWK(key, use, "", kid)
}

func newJWK(raw interface{}, use KeyUse, alg, kid string) (jwk.Key, error) {
	key, err := jwk.FromRaw(raw)
	if err != nil {
		return nil, errors.Wrap(err, "error creating JWK")
	}
	if use != UseNone {
		if err := key.Set(jwk.KeyUsageKey, use.String()); err != nil {
			return nil, errors.Wrap(err, "error setting JWK use")
		}
	}
	if alg != "" {
		if err := key.Set(jwk.AlgorithmKey, alg); err != nil {
			return nil, errors.Wrap(err, "error setting JWK alg")
		}
	}
	if kid != "" {
		if err := key.Set(jwk.KeyIDKey, kid); err != nil {
			return nil, errors.Wrap(err, "error setting JWK kid")
		}
	}
	return key, nil
}
