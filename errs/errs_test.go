package errs

import (
	"errors"
	"flag"
	"os"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func TestFileError(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{
			err:      os.NewSyscallError("open", errors.New("out of file descriptors")),
			expected: "open failed: out of file descriptors",
		},
		{
			err: func() error {
				_, err := os.ReadFile("im-fairly-certain-this-file-doesnt-exist")
				require.Error(t, err)
				return err
			}(),
			expected: "open im-fairly-certain-this-file-doesnt-exist failed",
		},
		{
			err: func() error {
				err := os.Link("im-fairly-certain-this-file-doesnt-exist", "neither-does-this")
				require.Error(t, err)
				return err
			}(),
			expected: "link im-fairly-certain-this-file-doesnt-exist neither-does-this failed",
		},
		{
			err:      errors.New("some package: disk on fire"),
			expected: "unexpected error on myfile: disk on fire",
		},
	}
	for _, tt := range tests {
		err := FileError(tt.err, "myfile")
		require.Error(t, err)
		require.Contains(t, err.Error(), tt.expected)
	}
}

func newContext(usageText string) *cli.Context {
	app := cli.NewApp()
	app.HelpName = "jwkgen"
	app.UsageText = usageText
	return cli.NewContext(app, flag.NewFlagSet("jwkgen", 0), nil)
}

func TestUsageError(t *testing.T) {
	cause := pkgerrors.New("key type must be supplied")

	err := UsageError(newContext("jwkgen -t <kty> [options]"), cause)
	require.EqualError(t, err, "Error: key type must be supplied\n\nUsage: jwkgen -t <kty> [options]")
	require.Equal(t, cause, pkgerrors.Cause(err))
	require.True(t, errors.Is(err, cause))

	// Already wrapped errors are not wrapped again.
	require.Equal(t, err, UsageError(newContext("other"), err))

	require.NoError(t, UsageError(newContext(""), nil))
}

func TestUsageError_defaultUsage(t *testing.T) {
	err := UsageError(newContext(""), errors.New("boom"))
	require.EqualError(t, err, "Error: boom\n\nUsage: jwkgen [options]")
}

func TestTooManyArguments(t *testing.T) {
	err := TooManyArguments(newContext("jwkgen [options]"))
	require.EqualError(t, err, "too many positional arguments were provided in 'jwkgen [options]'")
}
