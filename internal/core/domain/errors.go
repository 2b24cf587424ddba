package domain

import "errors"

// Error kinds. Every operational error in the core wraps exactly one of
// these, so the HTTP boundary can resolve a status code with errors.Is.
var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Error is an operational (expected, user-facing) error carrying a kind and
// a human-readable message. Unexpected errors are never wrapped in it.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Kind }

func Validation(msg string) error { return &Error{Kind: ErrValidation, Msg: msg} }
func NotFound(msg string) error   { return &Error{Kind: ErrNotFound, Msg: msg} }
func Conflict(msg string) error   { return &Error{Kind: ErrConflict, Msg: msg} }
func Forbidden(msg string) error  { return &Error{Kind: ErrForbidden, Msg: msg} }

// Recurring conditions, shared between services and repositories.
var (
	ErrUserNotFound         = NotFound("user not found")
	ErrUserExists           = Conflict("user already exists")
	ErrInvalidCredentials   = &Error{Kind: ErrUnauthenticated, Msg: "invalid credentials"}
	ErrCompanyNotFound      = NotFound("company not found")
	ErrCompanyDomainTaken   = Conflict("company domain already registered")
	ErrNotCompanyOwner      = Forbidden("you are not allowed to perform this action")
	ErrProfileNotFound      = NotFound("freelancer profile not found")
	ErrCategoryNotFound     = NotFound("category not found")
	ErrTagNotFound          = NotFound("tag not found")
	ErrJobNotFound          = NotFound("job not found")
	ErrDuplicateJobTitle    = Conflict("a job with this title already exists for this company")
	ErrApplicationNotFound  = NotFound("application not found")
	ErrAlreadyApplied       = Conflict("you already applied to this job")
	ErrOwnJobApplication    = Forbidden("you cannot apply to your own job")
	ErrFollowNotFound       = NotFound("follow not found")
	ErrAlreadyFollowing     = Conflict("already following this target")
	ErrAlreadySubscribed    = Conflict("already subscribed")
	ErrInvalidUnsubToken    = Validation("already unsubscribed or invalid token")
	ErrNotificationNotFound = NotFound("notification not found")
)
