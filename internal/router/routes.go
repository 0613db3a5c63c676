package router

import (
	"github.com/dept-026/membership-api/internal/announcement"
	"github.com/dept-026/membership-api/internal/config"
	"github.com/dept-026/membership-api/internal/lecturer"
	"github.com/dept-026/membership-api/internal/member"
	"github.com/dept-026/membership-api/internal/meta"
	"github.com/dept-026/membership-api/internal/report"
	"github.com/dept-026/membership-api/internal/shared/database"
	"github.com/dept-026/membership-api/internal/shared/mailer"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection.
// Route paths keep the shapes of the existing API so deployed clients
// continue to work unchanged.
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB, mail mailer.Sender) {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// repository
	memberRepository := member.NewMongoRepository(db)
	lecturerRepository := lecturer.NewMongoRepository(db)
	directoryRepository := lecturer.NewMongoDirectoryRepository(db)
	announcementRepository := announcement.NewMongoRepository(db)

	// service
	memberService := member.NewService(memberRepository, mail)
	lecturerService := lecturer.NewService(lecturerRepository, directoryRepository, memberRepository, mail)
	announcementService := announcement.NewService(announcementRepository, memberRepository, lecturerRepository)
	reportService := report.NewService(memberRepository, lecturerRepository)

	// handler
	memberHandler := member.NewHandler(memberService)
	lecturerHandler := lecturer.NewHandler(lecturerService)
	announcementHandler := announcement.NewHandler(announcementService)
	reportHandler := report.NewHandler(reportService)

	// Registration and account flows
	api := router.Group("/api")
	{
		api.POST("/register", memberHandler.Register)
		api.POST("/register/lecturer", lecturerHandler.Register)
		api.POST("/change-password", memberHandler.ChangePassword)
		api.POST("/promote/student", lecturerHandler.Promote)
		api.POST("/demote/student", lecturerHandler.Demote)

		api.POST("/student/login", memberHandler.Login)
		api.POST("/student/forgot-password", memberHandler.ForgotPassword)
		api.POST("/student/reset-password-using-otp", memberHandler.ResetPassword)

		api.POST("/lecturer/login", lecturerHandler.Login)
		api.POST("/lecturer/change_password", lecturerHandler.ChangePassword)
		api.POST("/lecturer/forgot-password", lecturerHandler.ForgotPassword)
		api.POST("/lecturer/reset-password-using-otp", lecturerHandler.ResetPassword)

		api.POST("/v1/register_student_no_mail", memberHandler.RegisterNoMail)
	}

	// Announcements
	router.POST("/announcement", announcementHandler.Post)
	router.GET("/get/announcement", announcementHandler.List)

	// Roster queries
	router.GET("/members/stats", memberHandler.Stats)
	router.GET("/students/summary-sorted", memberHandler.SummarySorted)
	router.POST("/students/by-gender", memberHandler.ByGender)
	router.GET("/Student/view_all_lecturers", lecturerHandler.Directory)

	// PDF exports
	router.GET("/students/download", reportHandler.Students)
	router.GET("/students/download-sorted", reportHandler.StudentsSorted)
	router.GET("/excos/download", reportHandler.Excos)
	router.POST("/members/download-by-gender", reportHandler.MembersByGender)
	router.POST("/members/download-groups", reportHandler.GroupedMembers)
	router.GET("/lecturers/download-all", reportHandler.Lecturers)
}
