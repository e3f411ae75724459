package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kaagyebi/lumea-api/internal/analysis"
	"github.com/kaagyebi/lumea-api/internal/audit"
	"github.com/kaagyebi/lumea-api/internal/domain/access"
	"github.com/kaagyebi/lumea-api/internal/handlers"
	infraRepo "github.com/kaagyebi/lumea-api/internal/infra/repository"
	"github.com/kaagyebi/lumea-api/internal/middleware"
	"github.com/kaagyebi/lumea-api/internal/report"
	"github.com/kaagyebi/lumea-api/internal/session"
	"github.com/kaagyebi/lumea-api/internal/storage"
	ucAppointment "github.com/kaagyebi/lumea-api/internal/usecase/appointment"
	ucRecommendation "github.com/kaagyebi/lumea-api/internal/usecase/recommendation"
	ucSkinReport "github.com/kaagyebi/lumea-api/internal/usecase/skinreport"
	ucUser "github.com/kaagyebi/lumea-api/internal/usecase/user"
)

// Deps are the process-wide singletons the API is built from.
type Deps struct {
	DB          *gorm.DB
	Tokens      *session.Tokens
	Revoker     session.Revoker
	Storage     storage.Storage
	Analyzer    analysis.Analyzer
	AuditLogger *audit.Logger
	Audit       *audit.Dispatcher
	Location    *time.Location

	// EmailChecker is optional; nil skips the mail-domain lookup.
	EmailChecker ucUser.EmailChecker
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// INFRA
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	skinReportRepo := infraRepo.NewSkinReportGormRepository(d.DB)
	recommendationRepo := infraRepo.NewRecommendationGormRepository(d.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucUser.NewRegister(userRepo, d.Tokens, d.Audit, d.EmailChecker)
	loginUC := ucUser.NewLogin(userRepo, d.Tokens)
	logoutUC := ucUser.NewLogout(d.Revoker)

	getUserUC := ucUser.NewGetUser(userRepo)
	listUsersUC := ucUser.NewListUsers(userRepo)
	updateProfileUC := ucUser.NewUpdateProfile(userRepo)
	uploadPictureUC := ucUser.NewUploadProfilePicture(userRepo, d.Storage)
	updateAvailabilityUC := ucUser.NewUpdateAvailability(userRepo)
	registerCosmetologistUC := ucUser.NewRegisterCosmetologist(userRepo, d.Storage, d.Audit)
	changeRoleUC := ucUser.NewChangeRole(userRepo, d.Audit)

	bookUC := ucAppointment.NewBookAppointment(appointmentRepo, d.Audit, d.Location)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, d.Audit)
	listUserAppointmentsUC := ucAppointment.NewListUserAppointments(appointmentRepo)
	listCosmetologistAppointmentsUC := ucAppointment.NewListCosmetologistAppointments(appointmentRepo)
	listMyAppointmentsUC := ucAppointment.NewListMyAppointments(appointmentRepo)

	analyzeUC := ucSkinReport.NewAnalyzeSkinImage(skinReportRepo, d.Storage, d.Analyzer, d.Audit)
	listMyReportsUC := ucSkinReport.NewListMyReports(skinReportRepo)
	listUserReportsUC := ucSkinReport.NewListUserReports(skinReportRepo)
	getReportUC := ucSkinReport.NewGetReport(skinReportRepo)
	downloadReportUC := ucSkinReport.NewDownloadReport(skinReportRepo, report.Render, report.Filename)
	notesUC := ucSkinReport.NewAddConsultationNotes(skinReportRepo, d.Audit)

	createRecommendationUC := ucRecommendation.NewCreateRecommendation(recommendationRepo, d.Audit)
	listRecommendationsUC := ucRecommendation.NewListForUser(recommendationRepo)
	listAuthoredUC := ucRecommendation.NewListAuthored(recommendationRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, logoutUC)
	userHandler := handlers.NewUserHandler(getUserUC, listUsersUC, updateProfileUC, uploadPictureUC, listMyReportsUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		updateAppointmentUC,
		listUserAppointmentsUC,
		listCosmetologistAppointmentsUC,
		listMyAppointmentsUC,
	)
	cosmetologistHandler := handlers.NewCosmetologistHandler(
		updateAvailabilityUC,
		registerCosmetologistUC,
		listCosmetologistAppointmentsUC,
		notesUC,
	)
	skinReportHandler := handlers.NewSkinReportHandler(
		analyzeUC,
		listMyReportsUC,
		listUserReportsUC,
		getReportUC,
		downloadReportUC,
	)
	recommendationHandler := handlers.NewRecommendationHandler(
		createRecommendationUC,
		listRecommendationsUC,
		listAuthoredUC,
	)
	adminHandler := handlers.NewAdminHandler(changeRoleUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogger, d.Location)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if local, ok := d.Storage.(*storage.LocalStorage); ok {
		r.Static(storage.LocalURLPrefix, local.Root())
	}

	api := r.Group("/api")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	secured := api.Group("/")
	secured.Use(middleware.AuthMiddleware(d.Tokens, d.Revoker, userRepo))

	secured.POST("/auth/logout", authHandler.Logout)

	// ------------------------------
	// USERS
	// ------------------------------
	users := secured.Group("/users")
	{
		users.GET("", userHandler.List)
		users.GET("/me/profile", userHandler.Me)
		users.PATCH("/me/profile", userHandler.UpdateMe)
		users.GET("/profile", userHandler.Me)
		users.PATCH("/profile", userHandler.UpdateMe)
		users.POST("/me/profile-picture", userHandler.UploadPicture)
		users.GET("/me/history", userHandler.History)
		users.GET("/:id", userHandler.GetByID)
	}

	// ------------------------------
	// APPOINTMENTS
	// ------------------------------
	appointments := secured.Group("/appointments")
	{
		appointments.POST("", middleware.RequireAction(access.ActionBookAppointment), appointmentHandler.Create)
		appointments.GET("", appointmentHandler.ListMine)
		appointments.GET("/cosmetologist",
			middleware.RequireAction(access.ActionListCosmetologistAppointments),
			appointmentHandler.ListForCosmetologist,
		)
		appointments.GET("/debug", appointmentHandler.Debug)
		appointments.PATCH("/:id", appointmentHandler.Update)
	}

	// ------------------------------
	// COSMETOLOGIST
	// ------------------------------
	cosmetologist := secured.Group("/cosmetologist")
	{
		cosmetologist.PATCH("/availability",
			middleware.RequireAction(access.ActionUpdateAvailability),
			cosmetologistHandler.UpdateAvailability,
		)
		cosmetologist.GET("/appointments",
			middleware.RequireAction(access.ActionListCosmetologistAppointments),
			cosmetologistHandler.Appointments,
		)
		cosmetologist.POST("/notes/:userId",
			middleware.RequireAction(access.ActionAddConsultationNotes),
			cosmetologistHandler.AddNotes,
		)
		cosmetologist.POST("/register",
			middleware.RequireAction(access.ActionRegisterCosmetologist),
			cosmetologistHandler.Register,
		)
	}

	// ------------------------------
	// RECOMMENDATIONS
	// ------------------------------
	recommendations := secured.Group("/recommendations")
	{
		recommendations.POST("",
			middleware.RequireAction(access.ActionCreateRecommendation),
			recommendationHandler.Create,
		)
		recommendations.GET("/cosmetologist",
			middleware.RequireAction(access.ActionListAuthoredRecommendations),
			recommendationHandler.ListAuthored,
		)
		recommendations.GET("/user/:userId", recommendationHandler.ListForUser)
	}

	// ------------------------------
	// SKIN REPORTS
	// ------------------------------
	skinReports := secured.Group("/skin-reports")
	{
		upload := middleware.RequireAction(access.ActionUploadSkinReport)
		skinReports.POST("", upload, skinReportHandler.Analyze)
		skinReports.POST("/upload", upload, skinReportHandler.Analyze)
		skinReports.GET("", skinReportHandler.ListMine)
		skinReports.GET("/user/:userId",
			middleware.RequireAction(access.ActionListUserReports),
			skinReportHandler.ListForUser,
		)
		skinReports.GET("/:id", skinReportHandler.Get)
		skinReports.GET("/:id/download", skinReportHandler.Download)
	}

	// ------------------------------
	// ADMIN
	// ------------------------------
	admin := secured.Group("/admin")
	{
		admin.PATCH("/users/:id/role",
			middleware.RequireAction(access.ActionManageRoles),
			adminHandler.ChangeRole,
		)
		admin.GET("/audit-logs",
			middleware.RequireAction(access.ActionViewAuditLogs),
			auditLogsHandler.List,
		)
	}
}
