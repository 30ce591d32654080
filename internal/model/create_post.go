package model

type CreatePostDTO struct {
	OwnerID  int64  `json:"owner_id"`
	Caption  string `json:"caption"`
	Hashtags string `json:"hashtags"`
	ImageURL string `json:"image_url"`
}
