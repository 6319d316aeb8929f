// Package rsaerr defines the tagged error taxonomy shared by every
// fallible operation in this module: key assembly, serialization, and
// the RSA primitives themselves all fail through the same four kinds.
package rsaerr

import "fmt"

// Kind tags the category of failure. Callers that need to branch on
// the failure mode should compare against these constants rather than
// matching on the error string.
type Kind int

const (
	// KindOptions marks invalid or inconsistent KeyBuilder input: a
	// supplied prime that isn't prime or isn't the target bit-width, a
	// supplied exponent not coprime to lambda, or a modular inverse
	// that doesn't exist.
	KindOptions Kind = iota
	// KindSerial marks malformed DER, malformed PEM bodies, truncated
	// OpenSSH keys, or any other wire-format decode failure.
	KindSerial
	// KindCryptography marks a message or ciphertext representative
	// outside [0, n).
	KindCryptography
	// KindMgf marks a failure of the padding package's MGF1
	// mask-generation function (a negative or oversized output length).
	KindMgf
)

func (k Kind) String() string {
	switch k {
	case KindOptions:
		return "Options"
	case KindSerial:
		return "Serial"
	case KindCryptography:
		return "Cryptography"
	case KindMgf:
		return "Mgf"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned by this module. It carries
// a Kind so callers can use errors.As to branch on failure category,
// and an optional wrapped cause for errors that originate elsewhere.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New returns an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error of the given kind that wraps cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Options is shorthand for New(KindOptions, ...).
func Options(format string, args ...any) *Error { return New(KindOptions, format, args...) }

// Serial is shorthand for New(KindSerial, ...).
func Serial(format string, args ...any) *Error { return New(KindSerial, format, args...) }

// Cryptography is shorthand for New(KindCryptography, ...).
func Cryptography(format string, args ...any) *Error { return New(KindCryptography, format, args...) }

// Mgf is shorthand for New(KindMgf, ...).
func Mgf(format string, args ...any) *Error { return New(KindMgf, format, args...) }
