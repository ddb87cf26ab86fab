package interfaces

import "time"

// ITokenMaker signs and verifies bearer tokens. The staff dashboard and the
// client portal share the implementation but use distinct scopes.

type ITokenMaker interface {
	CreateToken(subject, scope string, duration time.Duration) (string, error)
	VerifyToken(token string) (subject, scope string, err error)
}
