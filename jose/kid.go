package jose

import (
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// KeyID returns the "kid" for a new key. An explicit kid is returned as is.
// If kid is empty and noKeyID is true, it returns an empty string. Otherwise
// it returns a random UUID read from r, prefixed by the key use if there is
// one.
func KeyID(r io.Reader, kid string, noKeyID bool, use KeyUse) (string, error) {
	switch {
	case kid != "":
		return kid, nil
	case noKeyID:
		return "", nil
	}

	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return "", errors.Wrap(err, "error generating key id")
	}
	return use.String() + id.String(), nil
}
