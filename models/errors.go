package models

// Typed error kinds returned by the service layer. The helper maps each kind
// to an HTTP status; raw storage errors never reach a response body.

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string {
	return e.Message
}

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	return e.Message
}

type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string {
	return e.Message
}

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

// ErrorRoleSync signals that the external identity provider refused or failed
// a role update. Distinct from a plain 500 so operators can tell "approval
// rejected" apart from "approval partially applied".
type ErrorRoleSync struct {
	Message string
}

func (e ErrorRoleSync) Error() string {
	return e.Message
}

type ErrorInternalServer struct {
	Message string
}

func (e ErrorInternalServer) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return ErrorValidation{Message: message}
}

func NewUnauthorizedError(message string) error {
	return ErrorUnauthorized{Message: message}
}

func NewForbiddenError(message string) error {
	return ErrorForbidden{Message: message}
}

func NewNotFoundError(message string) error {
	return ErrorNotFound{Message: message}
}

func NewRoleSyncError(message string) error {
	return ErrorRoleSync{Message: message}
}

func NewInternalError(message string) error {
	return ErrorInternalServer{Message: message}
}
