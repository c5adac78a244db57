package jose

import (
	"github.com/pkg/errors"
)

// KeyType is the type of key to generate. Corresponds to the "kty" JWK
// parameter.
type KeyType int

// Supported key types.
const (
	RSA KeyType = iota + 1
	EC
	OCT
	OKP
)

// KeyTypes is the list of supported key types in the order they are
// documented.
var KeyTypes = []KeyType{RSA, OCT, EC, OKP}

// String returns the "kty" value of the key type.
func (k KeyType) String() string {
	switch k {
	case RSA:
		return "RSA"
	case EC:
		return "EC"
	case OCT:
		return "oct"
	case OKP:
		return "OKP"
	default:
		return ""
	}
}

// ParseKeyType returns the KeyType for the given case-sensitive "kty" value.
func ParseKeyType(s string) (KeyType, error) {
	for _, k := range KeyTypes {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, errors.Errorf("unknown key type '%s'", s)
}

// KeyUse is the intended use of the key. Corresponds to the "use" JWK
// parameter. The zero value means the use is unspecified.
type KeyUse int

// Supported key uses.
const (
	UseNone KeyUse = iota
	UseSignature
	UseEncryption
)

// String returns the "use" value, or an empty string for UseNone.
func (u KeyUse) String() string {
	switch u {
	case UseSignature:
		return "sig"
	case UseEncryption:
		return "enc"
	default:
		return ""
	}
}

// ParseKeyUse parses the "use" value. An empty string returns UseNone.
func ParseKeyUse(s string) (KeyUse, error) {
	switch s {
	case "":
		return UseNone, nil
	case "sig":
		return UseSignature, nil
	case "enc":
		return UseEncryption, nil
	default:
		return UseNone, errors.Errorf("invalid key usage, must be 'sig' or 'enc', got '%s'", s)
	}
}

// Curve is a named curve. Corresponds to the "crv" JWK parameter.
type Curve string

// Supported curves. P256, P384 and P521 are used with EC keys, Ed25519 and
// X25519 with OKP keys.
const (
	P256    Curve = "P-256"
	P384    Curve = "P-384"
	P521    Curve = "P-521"
	Ed25519 Curve = "Ed25519"
	X25519  Curve = "X25519"
)

// Curves is the list of supported curves.
var Curves = []Curve{P256, P384, P521, Ed25519, X25519}

// String returns the "crv" value.
func (c Curve) String() string {
	return string(c)
}

// ParseCurve returns the Curve for the given case-sensitive "crv" value.
func ParseCurve(s string) (Curve, error) {
	for _, c := range Curves {
		if string(c) == s {
			return c, nil
		}
	}
	return "", errors.Errorf("unsupported curve '%s'", s)
}
