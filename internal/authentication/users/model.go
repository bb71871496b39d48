package users

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// withoutHash returns a copy of u that is safe to hand to callers.
func (u *User) withoutHash() *User {
	c := *u
	c.PasswordHash = ""
	return &c
}
