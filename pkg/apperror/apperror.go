package apperror

import (
	"errors"
	"net/http"
)

// Kind identifie la famille d'une erreur métier.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindBusinessRule Kind = "business_rule"
	KindInternal     Kind = "internal"
)

// HTTPStatus retourne le statut HTTP associé au kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindBusinessRule:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error est l'erreur métier typée propagée des services vers le transport.
// Les appelants branchent sur Kind, jamais sur le texte du message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// NotFound signale une entité référencée inexistante.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict signale un doublon du couple (intervenant, etude).
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// BusinessRule signale une violation d'invariant inter-champs.
func BusinessRule(message string) *Error {
	return &Error{Kind: KindBusinessRule, Message: message}
}

// Internal signale une défaillance inattendue, sans détail de stockage.
func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

// KindOf extrait le kind d'une erreur; KindInternal pour tout le reste.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool     { return KindOf(err) == KindConflict }
func IsBusinessRule(err error) bool { return KindOf(err) == KindBusinessRule }
