package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
	// KeyUser holds the full *User loaded by the auth middleware.
	KeyUser CtxKey = "User"
)
