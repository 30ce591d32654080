package model

import "github.com/jackc/pgx/v5/pgtype"

// Post is a single feed entry. Hashtags holds the storage form derived
// from the caption; it is never mutated independently of Caption.
// DeletedAt marks a logical delete and is excluded from read queries.
type Post struct {
	ID             int64              `json:"id"`
	OwnerID        int64              `json:"owner_id"`
	Caption        string             `json:"caption"`
	Hashtags       string             `json:"hashtags"`
	ImageURL       string             `json:"image_url"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	DeletedAt      pgtype.Timestamptz `json:"-"`
	OwnerUsername  string             `json:"username,omitempty"`
	OwnerAvatarURL string             `json:"avatar_url,omitempty"`
}
