package domain

import "errors"

var (
	// ErrMalformedSecret is matched by every vault response shape violation.
	ErrMalformedSecret = errors.New("malformed vault secret")

	ErrEmptyResult        = malformed("vault response has no result")
	ErrUnexpectedItemType = malformed("vault item is not a secret")
	ErrNoItemVersions     = malformed("vault item has no versions")
	ErrEmptySecretValue   = malformed("vault secret value is empty")

	ErrSecretNotFound = errors.New("secret not found")
)

type malformedError struct {
	msg string
}

func malformed(msg string) error {
	return &malformedError{msg: msg}
}

func (e *malformedError) Error() string {
	return e.msg
}

func (e *malformedError) Is(target error) bool {
	return target == ErrMalformedSecret
}
