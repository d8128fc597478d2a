package whatwgurl

import (
	"fmt"

	"github.com/projectdiscovery/utils/errkit"
)

// Error kinds cover the three observed failure classes a setter or
// parse run can produce.
var (
	// ErrKindParseFatal covers malformed input with no recovery: an
	// illegal scheme terminator with no base, a bad IPv4/IPv6 literal,
	// a forbidden byte in a host, an empty host where the scheme
	// requires one, a port above 65535, an '@' with an empty userinfo
	// buffer, or an ill-formed bracketed host.
	ErrKindParseFatal = errkit.NewPrimitiveErrKind(
		"url-parse-fatal",
		"url parse fatal",
		nil,
	)

	// ErrKindSetterIgnored covers a setter called on a URL that
	// categorically cannot accept the change: an opaque-path URL
	// rejecting host/path, a URL that cannot have credentials or a
	// port rejecting username/password/port, or an incompatible
	// special/non-special scheme change.
	ErrKindSetterIgnored = errkit.NewPrimitiveErrKind(
		"url-setter-ignored",
		"url setter ignored",
		nil,
	)

	// ErrKindAllocation covers a buffer growth failure, propagated
	// from the buffer collaborator.
	ErrKindAllocation = errkit.NewPrimitiveErrKind(
		"url-allocation-failure",
		"url allocation failure",
		nil,
	)
)

func fatalf(format string, args ...any) error {
	return errkit.New(fmt.Sprintf(format, args...)).SetKind(ErrKindParseFatal).Build()
}

func ignored(reason string) error {
	return errkit.New(reason).SetKind(ErrKindSetterIgnored).Build()
}

// IsIgnored reports whether err is the ErrKindSetterIgnored sentinel a
// setter produces when it declines a change outright rather than
// failing to parse it.
func IsIgnored(err error) bool {
	return errkit.IsKind(err, ErrKindSetterIgnored)
}

// IsParseFatal reports whether err is an unrecoverable parse failure.
func IsParseFatal(err error) bool {
	return errkit.IsKind(err, ErrKindParseFatal)
}
