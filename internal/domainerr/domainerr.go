// Package domainerr centralizes the error kinds produced by the business
// services. Handlers map each kind to an HTTP status; services never return
// raw gorm errors upward.
package domainerr

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure.
type Kind string

const (
	KindInvalidArgument       Kind = "INVALID_ARGUMENT"
	KindNotFound              Kind = "NOT_FOUND"
	KindForbidden             Kind = "FORBIDDEN"
	KindAlreadyRenewed        Kind = "ALREADY_RENEWED"
	KindDuplicatePolicyNumber Kind = "DUPLICATE_POLICY_NUMBER"
	KindDuplicate             Kind = "DUPLICATE"
	KindHasDependents         Kind = "HAS_DEPENDENTS"
	KindStorageUnavailable    Kind = "STORAGE_UNAVAILABLE"
)

// Error is the structured domain error. Campo names the offending field or
// entity where that helps the caller render a message; Dependentes carries the
// dependent count for HAS_DEPENDENTS failures.
type Error struct {
	Kind        Kind
	Campo       string
	Msg         string
	Dependentes int
	causa       error
}

func (e *Error) Error() string {
	if e.Campo != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Msg, e.Campo)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.causa }

func Invalid(campo, msg string) *Error {
	return &Error{Kind: KindInvalidArgument, Campo: campo, Msg: msg}
}

func NotFound(entidade string) *Error {
	return &Error{Kind: KindNotFound, Campo: entidade, Msg: entidade + " não encontrado(a)"}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Msg: msg}
}

func AlreadyRenewed(numeroApolice string) *Error {
	return &Error{Kind: KindAlreadyRenewed, Campo: "numeroApolice", Msg: "apólice " + numeroApolice + " já foi renovada"}
}

func DuplicatePolicyNumber(numero string) *Error {
	return &Error{Kind: KindDuplicatePolicyNumber, Campo: "numeroApolice", Msg: "já existe apólice com número " + numero}
}

func Duplicate(campo, msg string) *Error {
	return &Error{Kind: KindDuplicate, Campo: campo, Msg: msg}
}

func HasDependents(msg string, count int) *Error {
	return &Error{Kind: KindHasDependents, Msg: msg, Dependentes: count}
}

// Storage wraps an unexpected persistence failure. The cause is preserved for
// logging but never serialized to clients.
func Storage(err error) *Error {
	return &Error{Kind: KindStorageUnavailable, Msg: "falha de acesso ao armazenamento", causa: err}
}

// KindOf extracts the kind from any error in the chain, or
// KindStorageUnavailable when the error is not a domain error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindStorageUnavailable
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool {
	return KindOf(err) == k
}
