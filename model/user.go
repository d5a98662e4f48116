package model

import "time"

// UserEntity represents the user table entity
type UserEntity struct {
	ID           uint64     `db:"id" json:"id"`
	Name         string     `db:"name" json:"nom"`
	Surname      string     `db:"surname" json:"prenom"`
	Email        string     `db:"email" json:"email"`
	Phone        string     `db:"phone" json:"tel"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Admin        bool       `db:"admin" json:"admin"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
}

// RegisterRequest for user registration. Accepted as JSON or urlencoded form.
// Accounts are never created as admin.
type RegisterRequest struct {
	Name     string `json:"nom" form:"nom" validate:"required"`
	Surname  string `json:"prenom" form:"prenom" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
	Phone    string `json:"tel" form:"tel" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// UpdateProfileRequest leaves a field unchanged when it is empty.
type UpdateProfileRequest struct {
	Name     string `json:"nom" form:"nom"`
	Surname  string `json:"prenom" form:"prenom"`
	Email    string `json:"email" form:"email" validate:"omitempty,email"`
	Password string `json:"password" form:"password" validate:"omitempty,min=6"`
	Phone    string `json:"tel" form:"tel"`
}

type UserResponse struct {
	ID      uint64 `json:"id"`
	Name    string `json:"nom"`
	Surname string `json:"prenom"`
	Email   string `json:"email"`
	Phone   string `json:"tel"`
	Admin   bool   `json:"admin"`
}

type RegisterResponse struct {
	ID    uint64 `json:"id"`
	Name  string `json:"nom"`
	Email string `json:"email"`
}

type LoginResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"-"`
	ExpiresAt time.Time    `json:"expires_at"`
}

func NewUserResponse(u *UserEntity) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Surname: u.Surname,
		Email:   u.Email,
		Phone:   u.Phone,
		Admin:   u.Admin,
	}
}
