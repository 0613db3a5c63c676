package lecturer

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

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	if err := h.service.Register(c.Request.Context(), &req); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Lecturer registered successfully, welcome email sent",
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	lecturer, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message:  "Login successful",
		Lecturer: lecturer,
	})
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), &req); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password updated successfully, email notification sent",
	})
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.ForgotPassword(c.Request.Context(), &req)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	if err := h.service.ResetPasswordWithOTP(c.Request.Context(), &req); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Lecturer password has been successfully reset",
	})
}

func (h *Handler) Promote(c *gin.Context) {
	var req RoleChangeRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.Promote(c.Request.Context(), &req)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Demote(c *gin.Context) {
	var req RoleChangeRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.Demote(c.Request.Context(), &req)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Directory(c *gin.Context) {
	entries, err := h.service.Directory(c.Request.Context())
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, DirectoryResponse{Lecturers: entries})
}
