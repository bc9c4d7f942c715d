package social

import "time"

const (
	collectionName = "social_media_info"
	documentKey    = "social_media_info"
)

type Link struct {
	Icon  string `json:"icon"`
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required"`
}

type SocialMediaInfo struct {
	ID        string    `json:"id"`
	Links     []Link    `json:"links"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Patch struct {
	Links *[]Link `json:"links,omitempty" validate:"omitempty,dive"`
}

func Defaults() SocialMediaInfo {
	return SocialMediaInfo{ID: documentKey, Links: []Link{}, UpdatedAt: time.Now().UTC()}
}
