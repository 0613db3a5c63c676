package announcement

import (
	"net/http"

	"github.com/dept-026/membership-api/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) Post(c *gin.Context) {
	var req PostRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	if err := h.service.Post(c.Request.Context(), &req); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Announcement posted successfully",
	})
}

func (h *Handler) List(c *gin.Context) {
	anns, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{Announcements: anns})
}
