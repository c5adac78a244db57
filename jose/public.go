package jose

import (
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/pkg/errors"
)

// ErrNoPublicKey is returned by PublicKey for keys without a public
// counterpart.
var ErrNoPublicKey = errors.New("no public key")

// PublicKey returns the public JWK of the given asymmetric key. It returns
// ErrNoPublicKey for symmetric keys.
func PublicKey(key jwk.Key) (jwk.Key, error) {
	switch key.KeyType() {
	case jwa.RSA, jwa.EC, jwa.OKP:
		pub, err := jwk.PublicKeyOf(key)
		if err != nil {
			return nil, errors.Wrap(err, "error deriving public key")
		}
		return pub, nil
	case jwa.OctetSeq:
		return nil, ErrNoPublicKey
	default:
		return nil, errors.Errorf("unsupported key type '%s'", key.KeyType())
	}
}
