package member

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
		"message": "User registered successfully, welcome email sent",
	})
}

func (h *Handler) RegisterNoMail(c *gin.Context) {
	var req RegisterRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	if err := h.service.RegisterNoMail(c.Request.Context(), &req); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Student registered successfully",
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	student, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		Student: student,
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
		"message": "Password changed successfully",
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
		"message": "Password has been successfully reset",
	})
}

func (h *Handler) Stats(c *gin.Context) {
	resp, err := h.service.Stats(c.Request.Context())
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SummarySorted(c *gin.Context) {
	resp, err := h.service.SummarySorted(c.Request.Context())
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ByGender(c *gin.Context) {
	var req ByGenderRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	students, err := h.service.ByGender(c.Request.Context(), req.Gender)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":    len(students),
		"students": students,
	})
}
