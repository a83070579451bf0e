package accounts

import "errors"

// ErrNotFound is returned when no account matches the given email.
var ErrNotFound = errors.New("account not found")

// Repo looks up registered accounts. An email the repo does not know is a
// login failure, never a silent guest session.
type Repo interface {
	GetByEmail(email string) (*Account, error)
}
