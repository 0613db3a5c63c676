package announcement

import "github.com/dept-026/membership-api/internal/model"

type PostRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Text        string `json:"announcement" binding:"required"`
}

type ListResponse struct {
	Announcements []model.Announcement `json:"announcements"`
}
