package errs

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// Wrap returns a new error wrapped by the given error with the given message.
// If the given error implements the errors.Cause interface, the base error is
// used. If the given error is wrapped by a package name, the error wrapped
// will be the string after the last colon.
func Wrap(err error, format string, args ...interface{}) error {
	cause := errors.Cause(err)
	if cause == err {
		str := err.Error()
		if i := strings.LastIndexByte(str, ':'); i >= 0 {
			str = strings.TrimSpace(str[i+1:])
			return errors.Wrapf(errors.New(str), format, args...)
		}
	}
	return errors.Wrapf(cause, format, args...)
}

// usageError is the error returned by UsageError.
type usageError struct {
	err   error
	usage string
}

func (e *usageError) Error() string {
	return fmt.Sprintf("Error: %s\n\n%s", e.err.Error(), e.usage)
}

// Cause implements the errors.Cause interface.
func (e *usageError) Cause() error {
	return e.err
}

// Unwrap implements the interface used by errors.Is and errors.As.
func (e *usageError) Unwrap() error {
	return e.err
}

// Format implements fmt.Formatter, "%+v" prints the wrapped error with its
// stack trace.
func (e *usageError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%+v\n\n%s", e.err, e.usage)
		return
	}
	fmt.Fprint(s, e.Error())
}

// UsageError returns an error that prints the given error followed by the
// usage of the command.
func UsageError(ctx *cli.Context, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*usageError); ok {
		return err
	}
	return &usageError{
		err:   err,
		usage: usageString(ctx),
	}
}

// TooManyArguments returns an error with a too many arguments were provided
// message.
func TooManyArguments(ctx *cli.Context) error {
	return errors.Errorf("too many positional arguments were provided in '%s'", usage(ctx))
}

// usage returns the command usage text if set or a default usage string.
func usage(ctx *cli.Context) string {
	switch {
	case ctx.Command.UsageText != "":
		return ctx.Command.UsageText
	case ctx.App != nil && ctx.App.UsageText != "":
		return ctx.App.UsageText
	case ctx.App != nil:
		return fmt.Sprintf("%s [options]", ctx.App.HelpName)
	default:
		return "[options]"
	}
}

// usageString returns the command usage prepended by the string "Usage: ".
func usageString(ctx *cli.Context) string {
	return "Usage: " + usage(ctx)
}

// FileError is a wrapper for errors of the os package.
func FileError(err error, filename string) error {
	switch e := errors.Cause(err).(type) {
	case *os.PathError:
		return errors.Errorf("%s %s failed: %v", e.Op, e.Path, e.Err)
	case *os.LinkError:
		return errors.Errorf("%s %s %s failed: %v", e.Op, e.Old, e.New, e.Err)
	case *os.SyscallError:
		return errors.Errorf("%s failed: %v", e.Syscall, e.Err)
	default:
		return Wrap(err, "unexpected error on %s", filename)
	}
}
