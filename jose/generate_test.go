package jose

import (
	"bytes"
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/x25519"
	"github.com/pkg/errors"
	"github.com/smallstep/assert"
	"github.com/stretchr/testify/require"
)

var (
	rsaKeyOnce sync.Once
	rsaKey     *rsa.PrivateKey
)

// fakeGenerator returns deterministic keys and records the calls made.
type fakeGenerator struct {
	calls []string
	err   error
}

func (g *fakeGenerator) GenerateRSA(bits int) (*rsa.PrivateKey, error) {
	g.calls = append(g.calls, "RSA")
	if g.err != nil {
		return nil, g.err
	}
	var err error
	rsaKeyOnce.Do(func() {
		rsaKey, err = rsa.GenerateKey(rand.Reader, 2048)
	})
	return rsaKey, err
}

func (g *fakeGenerator) GenerateEC(crv Curve) (*ecdsa.PrivateKey, error) {
	g.calls = append(g.calls, "EC")
	if g.err != nil {
		return nil, g.err
	}
	var c elliptic.Curve
	switch crv {
	case P256:
		c = elliptic.P256()
	case P384:
		c = elliptic.P384()
	case P521:
		c = elliptic.P521()
	default:
		return nil, errors.Errorf("curve '%s' cannot be used with key type EC", crv)
	}
	return ecdsa.GenerateKey(c, rand.Reader)
}

func (g *fakeGenerator) GenerateOKP(crv Curve) (crypto.PrivateKey, error) {
	g.calls = append(g.calls, "OKP")
	if g.err != nil {
		return nil, g.err
	}
	seed := bytes.Repeat([]byte{0x42}, 32)
	switch crv {
	case Ed25519:
		return ed25519.NewKeyFromSeed(seed), nil
	case X25519:
		return x25519.NewKeyFromSeed(seed)
	default:
		return nil, errors.Errorf("curve '%s' cannot be used with key type OKP", crv)
	}
}

func (g *fakeGenerator) GenerateOct(bits int) ([]byte, error) {
	g.calls = append(g.calls, "oct")
	if g.err != nil {
		return nil, g.err
	}
	return bytes.Repeat([]byte{0x01}, bits/8), nil
}

func jsonMap(t *testing.T, v interface{}) map[string]interface{} {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	m := make(map[string]interface{})
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

// zeroReader produces the UUID 00000000-0000-4000-8000-000000000000.
func zeroReader() *bytes.Reader {
	return bytes.NewReader(make([]byte, 16))
}

const zeroUUID = "00000000-0000-4000-8000-000000000000"

func TestGenerate(t *testing.T) {
	tests := []struct {
		name        string
		params      Params
		expectedKty jwa.KeyType
		expected    map[string]interface{}
		absent      []string
	}{
		{"rsa", Params{KeyType: "RSA", Size: "2048"},
			jwa.RSA, map[string]interface{}{"kid": zeroUUID}, []string{"use", "alg"}},
		{"rsa/hex-size", Params{KeyType: "RSA", Size: "0x800", Use: "sig", Alg: "RS256"},
			jwa.RSA, map[string]interface{}{"kid": "sig" + zeroUUID, "use": "sig", "alg": "RS256"}, nil},
		{"oct", Params{KeyType: "oct", Size: "256", Use: "enc", Alg: "A256GCMKW", KeyID: "my-kid"},
			jwa.OctetSeq, map[string]interface{}{"kid": "my-kid", "use": "enc", "alg": "A256GCMKW"}, nil},
		{"ec/P-256", Params{KeyType: "EC", Curve: "P-256", Use: "sig"},
			jwa.EC, map[string]interface{}{"crv": "P-256", "use": "sig", "kid": "sig" + zeroUUID}, []string{"alg"}},
		{"ec/P-384", Params{KeyType: "EC", Curve: "P-384", Alg: "ES384", NoKeyID: true},
			jwa.EC, map[string]interface{}{"crv": "P-384", "alg": "ES384"}, []string{"kid", "use"}},
		{"ec/P-521", Params{KeyType: "EC", Curve: "P-521", Use: "enc", Alg: "ECDH-ES"},
			jwa.EC, map[string]interface{}{"crv": "P-521", "use": "enc", "alg": "ECDH-ES", "kid": "enc" + zeroUUID}, nil},
		{"okp/Ed25519", Params{KeyType: "OKP", Curve: "Ed25519", Use: "sig"},
			jwa.OKP, map[string]interface{}{"crv": "Ed25519", "use": "sig"}, []string{"alg"}},
		{"okp/X25519", Params{KeyType: "OKP", Curve: "X25519", Use: "enc", KeyID: "x"},
			jwa.OKP, map[string]interface{}{"crv": "X25519", "use": "enc", "kid": "x"}, []string{"alg"}},
		{"okp/alg-is-ignored", Params{KeyType: "OKP", Curve: "Ed25519", Alg: "EdDSA"},
			jwa.OKP, map[string]interface{}{"crv": "Ed25519"}, []string{"alg"}},
		{"alg/opaque", Params{KeyType: "oct", Size: "128", Alg: "not-a-real-alg"},
			jwa.OctetSeq, map[string]interface{}{"alg": "not-a-real-alg"}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gen := &fakeGenerator{}
			key, err := Generate(tc.params, WithGenerator(gen), WithRandom(zeroReader()))
			require.NoError(t, err)
			require.NotNil(t, key)
			assert.Equals(t, tc.expectedKty, key.KeyType())
			assert.Equals(t, []string{tc.expectedKty.String()}, gen.calls)

			m := jsonMap(t, key)
			assert.Equals(t, tc.expectedKty.String(), m["kty"])
			for k, v := range tc.expected {
				assert.Equals(t, v, m[k], k)
			}
			for _, k := range tc.absent {
				_, ok := m[k]
				assert.False(t, ok, k)
			}
		})
	}
}

func TestGenerate_validation(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		err    string
	}{
		{"fail/missing-kty", Params{Size: "2048"}, "key type must be supplied"},
		{"fail/unknown-kty", Params{KeyType: "rsa", Size: "2048"}, "unknown key type 'rsa'"},
		{"fail/unknown-kty-oct", Params{KeyType: "OCT", Size: "2048"}, "unknown key type 'OCT'"},
		{"fail/use", Params{KeyType: "RSA", Size: "2048", Use: "SIG"}, "invalid key usage, must be 'sig' or 'enc', got 'SIG'"},
		{"fail/use-before-size", Params{KeyType: "RSA", Use: "foo"}, "invalid key usage, must be 'sig' or 'enc', got 'foo'"},
		{"fail/rsa-missing-size", Params{KeyType: "RSA"}, "key size (in bits) is required for key type RSA"},
		{"fail/oct-missing-size", Params{KeyType: "oct"}, "key size (in bits) is required for key type oct"},
		{"fail/rsa-non-numeric-size", Params{KeyType: "RSA", Size: "big"}, "invalid key size 'big'"},
		{"fail/oct-underscore-size", Params{KeyType: "oct", Size: "1_024"}, "invalid key size '1_024'"},
		{"fail/rsa-hex-underscore-size", Params{KeyType: "RSA", Size: "0x8_00"}, "invalid key size '0x8_00'"},
		{"fail/rsa-misaligned-size", Params{KeyType: "RSA", Size: "255"}, "key size (in bits) must be divisible by 8, got 255"},
		{"fail/oct-misaligned-size", Params{KeyType: "oct", Size: "255"}, "key size (in bits) must be divisible by 8, got 255"},
		{"fail/oct-zero-size", Params{KeyType: "oct", Size: "0"}, "key size (in bits) must be greater than 0, got 0"},
		{"fail/oct-negative-size", Params{KeyType: "oct", Size: "-8"}, "key size (in bits) must be greater than 0, got -8"},
		{"fail/ec-missing-curve", Params{KeyType: "EC"}, "curve is required for key type EC"},
		{"fail/okp-missing-curve", Params{KeyType: "OKP"}, "curve is required for key type OKP"},
		{"fail/ec-unknown-curve", Params{KeyType: "EC", Curve: "P-999"}, "unsupported curve 'P-999'"},
		{"fail/okp-unknown-curve", Params{KeyType: "OKP", Curve: "Ed448"}, "unsupported curve 'Ed448'"},
		{"fail/curve-case", Params{KeyType: "EC", Curve: "p-256"}, "unsupported curve 'p-256'"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gen := &fakeGenerator{}
			key, err := Generate(tc.params, WithGenerator(gen))
			assert.Nil(t, key)
			require.EqualError(t, err, tc.err)
			require.Empty(t, gen.calls)
		})
	}
}

func TestGenerate_generatorFailure(t *testing.T) {
	tests := []struct {
		params Params
		err    string
	}{
		{Params{KeyType: "RSA", Size: "2048"}, "error generating RSA key: boom"},
		{Params{KeyType: "oct", Size: "256"}, "error generating oct key: boom"},
		{Params{KeyType: "EC", Curve: "P-256"}, "error generating EC key: boom"},
		{Params{KeyType: "OKP", Curve: "Ed25519"}, "error generating OKP key: boom"},
	}
	for _, tc := range tests {
		t.Run(tc.params.KeyType, func(t *testing.T) {
			gen := &fakeGenerator{err: errors.New("boom")}
			key, err := Generate(tc.params, WithGenerator(gen))
			assert.Nil(t, key)
			require.EqualError(t, err, tc.err)
			assert.Equals(t, "boom", errors.Cause(err).Error())
		})
	}
}

func TestGenerate_curveFamilyMismatch(t *testing.T) {
	gen := &fakeGenerator{}
	key, err := Generate(Params{KeyType: "EC", Curve: "Ed25519"}, WithGenerator(gen))
	assert.Nil(t, key)
	require.EqualError(t, err, "error generating EC key: curve 'Ed25519' cannot be used with key type EC")

	key, err = Generate(Params{KeyType: "OKP", Curve: "P-256"}, WithGenerator(gen))
	assert.Nil(t, key)
	require.EqualError(t, err, "error generating OKP key: curve 'P-256' cannot be used with key type OKP")
}

func TestGenerate_randomKeyID(t *testing.T) {
	for _, use := range []string{"", "sig", "enc"} {
		t.Run("use="+use, func(t *testing.T) {
			key, err := Generate(Params{KeyType: "oct", Size: "128", Use: use}, WithGenerator(&fakeGenerator{}))
			require.NoError(t, err)
			kid := key.KeyID()
			require.NotEmpty(t, kid)
			assert.True(t, strings.HasPrefix(kid, use))
			require.Len(t, kid, len(use)+36)

			other, err := Generate(Params{KeyType: "oct", Size: "128", Use: use}, WithGenerator(&fakeGenerator{}))
			require.NoError(t, err)
			require.NotEqual(t, kid, other.KeyID())
		})
	}
}

func TestGenerate_roundTrip(t *testing.T) {
	for _, p := range []Params{
		{KeyType: "RSA", Size: "2048", Use: "sig", Alg: "PS256"},
		{KeyType: "oct", Size: "512", Use: "enc"},
		{KeyType: "EC", Curve: "P-384", Alg: "ES384"},
		{KeyType: "OKP", Curve: "Ed25519", Use: "sig"},
		{KeyType: "OKP", Curve: "X25519", Use: "enc"},
	} {
		t.Run(p.KeyType+"/"+p.Curve, func(t *testing.T) {
			key, err := Generate(p, WithGenerator(&fakeGenerator{}))
			require.NoError(t, err)

			b, err := json.Marshal(key)
			require.NoError(t, err)
			parsed, err := jwk.ParseKey(b)
			require.NoError(t, err)

			assert.Equals(t, key.KeyType(), parsed.KeyType())
			assert.Equals(t, key.KeyID(), parsed.KeyID())
			assert.Equals(t, jsonMap(t, key), jsonMap(t, parsed))

			again, err := json.Marshal(parsed)
			require.NoError(t, err)
			assert.Equals(t, string(b), string(again))
		})
	}
}

func TestGenerate_defaultGenerator(t *testing.T) {
	key, err := Generate(Params{KeyType: "EC", Curve: "P-256", Use: "sig"})
	require.NoError(t, err)
	assert.Equals(t, jwa.EC, key.KeyType())

	var raw ecdsa.PrivateKey
	require.NoError(t, key.Raw(&raw))
	assert.Equals(t, elliptic.P256(), raw.Curve)
}
