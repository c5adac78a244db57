package jose

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"

	"github.com/lestrrat-go/jwx/v2/x25519"
	"github.com/pkg/errors"
	"go.step.sm/crypto/keyutil"
	"go.step.sm/crypto/randutil"
)

// Generator is the interface that wraps the key generation primitives, one
// method per key family. The methods only produce key material, all JWK
// metadata is added by the key makers.
type Generator interface {
	// GenerateRSA returns an RSA key with a modulus of the given bits.
	GenerateRSA(bits int) (*rsa.PrivateKey, error)
	// GenerateEC returns an ECDSA key on the given curve. It must fail for
	// curves that are not EC curves.
	GenerateEC(crv Curve) (*ecdsa.PrivateKey, error)
	// GenerateOKP returns an ed25519.PrivateKey or an x25519.PrivateKey. It
	// must fail for curves that are not OKP curves.
	GenerateOKP(crv Curve) (crypto.PrivateKey, error)
	// GenerateOct returns bits/8 random bytes.
	GenerateOct(bits int) ([]byte, error)
}

// DefaultGenerator is the Generator used if none is set.
var DefaultGenerator Generator = defaultGenerator{}

type defaultGenerator struct{}

func (defaultGenerator) GenerateRSA(bits int) (*rsa.PrivateKey, error) {
	key, err := keyutil.GenerateKey("RSA", "", bits)
	if err != nil {
		return nil, err
	}
	k, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.Errorf("unexpected key type %T", key)
	}
	return k, nil
}

func (defaultGenerator) GenerateEC(crv Curve) (*ecdsa.PrivateKey, error) {
	switch crv {
	case P256, P384, P521:
	default:
		return nil, errors.Errorf("curve '%s' cannot be used with key type EC", crv)
	}
	key, err := keyutil.GenerateKey("EC", crv.String(), 0)
	if err != nil {
		return nil, err
	}
	k, ok := key.(*ecdsa.PrivateKey)
	if !ok {
		return nil, errors.Errorf("unexpected key type %T", key)
	}
	return k, nil
}

func (defaultGenerator) GenerateOKP(crv Curve) (crypto.PrivateKey, error) {
	switch crv {
	case Ed25519:
		key, err := keyutil.GenerateKey("OKP", crv.String(), 0)
		if err != nil {
			return nil, err
		}
		k, ok := key.(ed25519.PrivateKey)
		if !ok {
			return nil, errors.Errorf("unexpected key type %T", key)
		}
		return k, nil
	case X25519:
		_, key, err := x25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, err
		}
		return key, nil
	default:
		return nil, errors.Errorf("curve '%s' cannot be used with key type OKP", crv)
	}
}

func (defaultGenerator) GenerateOct(bits int) ([]byte, error) {
	if bits <= 0 || bits%8 != 0 {
		return nil, errors.Errorf("invalid key size %d", bits)
	}
	return randutil.Salt(bits / 8)
}
