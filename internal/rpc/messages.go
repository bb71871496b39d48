package rpc

import "time"

// User is the public projection of a stored user. It never carries the
// password hash.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterUserReply struct {
	User User `json:"user"`
}

type GetUsersRequest struct{}

// NoUsersMessage is the explicit empty marker returned by get_users.
const NoUsersMessage = "No users found"

// GetUsersReply holds either Users or, for an empty store, Message set to
// NoUsersMessage.
type GetUsersReply struct {
	Users   []User `json:"users,omitempty"`
	Message string `json:"message,omitempty"`
}

// Empty reports whether the reply is the empty marker.
func (r *GetUsersReply) Empty() bool {
	return len(r.Users) == 0
}

type ValidateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ValidateUserReply struct {
	User User `json:"user"`
}
