package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hirehunt/hirehunt/internal/app/controllers"
	"github.com/hirehunt/hirehunt/internal/app/models"
	"github.com/hirehunt/hirehunt/internal/app/models/dto"
	"github.com/hirehunt/hirehunt/internal/middleware"
	"github.com/hirehunt/hirehunt/internal/pkg/websocket"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Controllers groups every HTTP handler mounted by SetupRouter
type Controllers struct {
	Auth        *controllers.AuthController
	User        *controllers.UserController
	Job         *controllers.JobController
	Referral    *controllers.ReferralController
	Message     *controllers.MessageController
	WalkInDrive *controllers.WalkInDriveController
	Dashboard   *controllers.DashboardController
	WebSocket   *websocket.Handler
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl *Controllers,
	authMiddleware *middleware.AuthMiddleware,
	db Pinger,
) {
	api := router.Group("/api")

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		data := gin.H{"status": "ok", "database": "ok"}
		if err := db.Ping(ctx); err != nil {
			status = http.StatusServiceUnavailable
			data = gin.H{"status": "degraded", "database": "unreachable"}
		}
		c.JSON(status, dto.APIResponse{
			Success:   status == http.StatusOK,
			Data:      data,
			Timestamp: time.Now(),
		})
	})

	// --- Public Auth routes ---
	api.POST("/register", ctrl.Auth.Register)
	api.POST("/login", ctrl.Auth.Login)

	// --- Routes where a token is optional and identifies the caller ---
	optional := api.Group("")
	optional.Use(authMiddleware.OptionalAuth())
	{
		jobs := optional.Group("/jobs")
		{
			jobs.GET("", ctrl.Job.ListJobs)
			jobs.POST("", ctrl.Job.CreateJob)
			jobs.GET("/search", ctrl.Job.SearchJobs)
			jobs.GET("/:id", ctrl.Job.GetJob)
		}

		referrals := optional.Group("/referrals")
		{
			referrals.GET("", ctrl.Referral.ListReferrals)
			referrals.POST("", ctrl.Referral.CreateReferral)
			referrals.PATCH("/:id", ctrl.Referral.UpdateStatus)
		}

		messages := optional.Group("/messages")
		{
			messages.GET("", ctrl.Message.GetMessages)
			messages.POST("", ctrl.Message.SendMessage)
		}

		optional.GET("/walk-in-drives", ctrl.WalkInDrive.ListDrives)
		optional.PATCH("/user/profile", ctrl.User.UpdateProfile)
		optional.GET("/users/:id", ctrl.User.GetUserByID)
	}

	// --- Authenticated Routes Group ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/walk-in-drives", ctrl.WalkInDrive.CreateDrive)
		authenticated.GET("/ws", ctrl.WebSocket.HandleConnection)

		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/users", ctrl.User.ListUsers)
			admin.PATCH("/users", ctrl.User.ModerateUser)
		}
	}

	// --- Dashboard pages ---
	pages := router.Group("")
	pages.Use(authMiddleware.PageGuard())
	{
		pages.GET("/seeker", ctrl.Dashboard.Seeker)
		pages.GET("/seeker/applications", ctrl.Dashboard.SeekerApplications)
		pages.GET("/employee", ctrl.Dashboard.Employee)
		pages.GET("/employee/leaderboard", ctrl.Dashboard.Leaderboard)
		pages.GET("/admin", ctrl.Dashboard.Admin)
		pages.GET("/profile", ctrl.Dashboard.Profile)
	}
}
