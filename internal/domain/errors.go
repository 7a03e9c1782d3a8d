package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")
)

// Unlock-gate denial reasons. Each is terminal for the call that produced
// it; only a fully allowed open mutates the gift.
var (
	// ErrInvalidCredential: the identity provider rejected the token.
	// Deliberately carries no upstream detail.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrAlreadyOpened: the gift has been opened before; opens are one-shot.
	ErrAlreadyOpened = errors.New("gift already opened")
	// ErrWrongRecipient: the authenticated email is not the gift's receiver.
	ErrWrongRecipient = errors.New("gift intended for another recipient")
	// ErrNotYetUnlockable: the unlock instant has not passed. Wrapped with
	// the formatted instant so clients can show a countdown.
	ErrNotYetUnlockable = errors.New("gift not yet unlockable")
	// ErrWrongPasscode: passcode verification failed.
	ErrWrongPasscode = errors.New("incorrect passcode")
)
