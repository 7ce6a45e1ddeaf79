package domain

import "time"

// User is a registered account. Name doubles as the login handle and is
// unique. PasswordHash holds bcrypt output; plaintext is never persisted.
type User struct {
	ID           int64
	Name         string
	Gender       string
	DOB          time.Time
	Height       float64
	Weight       float64
	Service      string
	PasswordHash string
	CreatedAt    time.Time
}
