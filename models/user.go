package models

type User struct {
	ID           int     `json:"id"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"-"`
	FullName     *string `json:"fullName,omitempty"`
	Role         string  `json:"role"`
	AvatarURL    *string `json:"avatarUrl,omitempty"`
}

const DefaultUserRole = "scout"
