package jwk

import (
	"fmt"
	"io"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/pkg/errors"

	"github.com/smallstep/jwkgen/jose"
	"github.com/smallstep/jwkgen/keyset"
	"github.com/smallstep/jwkgen/utils"
)

// output writes a generated key to stdout or to a file.
type output struct {
	stdout   io.Writer
	stderr   io.Writer
	filename string
	keySet   bool
	public   bool
}

func (o *output) write(key jwk.Key) error {
	if o.filename != "" {
		return o.writeFile(key)
	}

	if err := o.print("Full key:", key); err != nil {
		return err
	}
	if !o.public {
		return nil
	}

	pub, err := jose.PublicKey(key)
	switch {
	case errors.Is(err, jose.ErrNoPublicKey):
		fmt.Fprintln(o.stderr, "No public key.")
		return nil
	case err != nil:
		return err
	}
	return o.print("Public key:", pub)
}

// print writes the label to stderr and the key, flat or in a JWK Set, to
// stdout.
func (o *output) print(label string, key jwk.Key) error {
	b, err := o.marshal(key)
	if err != nil {
		return err
	}
	fmt.Fprintln(o.stderr, label)
	if _, err := o.stdout.Write(b); err != nil {
		return errors.Wrap(err, "error writing key")
	}
	return nil
}

func (o *output) marshal(key jwk.Key) ([]byte, error) {
	if !o.keySet {
		return keyset.Marshal(key)
	}
	ks, err := keyset.Of(key)
	if err != nil {
		return nil, err
	}
	return keyset.Marshal(ks)
}

// writeFile replaces the file with the key. If a JWK Set is requested, the
// key is appended to the JWK Set already in the file; the file is not
// modified if it cannot be parsed.
func (o *output) writeFile(key jwk.Key) error {
	var (
		b   []byte
		err error
	)
	if o.keySet {
		var ks *keyset.KeySet
		if ks, err = keyset.Load(o.filename); err != nil {
			return err
		}
		if err = ks.Add(key); err != nil {
			return err
		}
		b, err = keyset.Marshal(ks)
	} else {
		b, err = keyset.Marshal(key)
	}
	if err != nil {
		return err
	}

	if err := utils.WriteFile(o.filename, b, 0600); err != nil {
		return err
	}
	fmt.Fprintf(o.stderr, "Your key has been saved in %s.\n", o.filename)
	return nil
}
