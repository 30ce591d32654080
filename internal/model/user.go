package model

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	PasswordHash string `json:"-"`
}
