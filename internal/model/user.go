package model

// UserBase holds the fields every user shape shares.
type UserBase struct {
	Username string  `json:"username" validate:"required,min=1"`
	Email    string  `json:"email" validate:"required,email"`
	FullName *string `json:"full_name,omitempty"`
}

// UserIn is what clients send: it carries the plaintext password.
type UserIn struct {
	UserBase
	Password string `json:"password" validate:"required,min=1"`
}

// UserOut is what clients get back: no password of any kind.
type UserOut struct {
	UserBase
}

// UserInDB is what the store keeps: the password only as a hash.
type UserInDB struct {
	UserBase
	HashedPassword string `json:"hashed_password"`
}

// Out drops the stored hash.
func (u UserInDB) Out() UserOut {
	return UserOut{UserBase: u.UserBase}
}
