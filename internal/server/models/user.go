package models

// User exists for completeness of the data model; no endpoint exposes it.
// Password holds a bcrypt hash and is never serialized.
type User struct {
	ID       int64  `json:"id"`
	UserName string `json:"username"`
	Password string `json:"-"`
}
