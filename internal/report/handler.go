package report

import (
	"fmt"
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

func respondPDF(c *gin.Context, doc *Document) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", doc.Filename))
	c.Data(http.StatusOK, "application/pdf", doc.Data)
}

func (h *Handler) Students(c *gin.Context) {
	doc, err := h.service.Students(c.Request.Context())
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	respondPDF(c, doc)
}

func (h *Handler) StudentsSorted(c *gin.Context) {
	doc, err := h.service.StudentsSorted(c.Request.Context())
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	respondPDF(c, doc)
}

func (h *Handler) Excos(c *gin.Context) {
	doc, err := h.service.Excos(c.Request.Context())
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	respondPDF(c, doc)
}

func (h *Handler) MembersByGender(c *gin.Context) {
	var req ByGenderRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.MembersByGender(c.Request.Context(), req.Gender)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	respondPDF(c, doc)
}

func (h *Handler) GroupedMembers(c *gin.Context) {
	var req GroupsRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GroupedMembers(c.Request.Context(), &req)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	respondPDF(c, doc)
}

func (h *Handler) Lecturers(c *gin.Context) {
	doc, err := h.service.Lecturers(c.Request.Context())
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}
	respondPDF(c, doc)
}
