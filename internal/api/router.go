package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/jobdeck/job-board-api/internal/api/handler"
	"github.com/jobdeck/job-board-api/internal/api/middleware"
	"github.com/jobdeck/job-board-api/internal/core/ports"
)

// RouterDeps bundles everything the router needs. Construction of services
// and repositories happens in main; the router only wires routes.
type RouterDeps struct {
	JWTSecret   string
	AuthService ports.AuthService
	Logger      zerolog.Logger

	Auth         *handler.AuthHandler
	Company      *handler.CompanyHandler
	Profile      *handler.ProfileHandler
	Taxonomy     *handler.TaxonomyHandler
	Job          *handler.JobHandler
	Application  *handler.ApplicationHandler
	Engagement   *handler.EngagementHandler
	Notification *handler.NotificationHandler
	Content      *handler.ContentHandler
	Health       *handler.HealthHandler
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jobboard"))

	authed := middleware.Auth(d.JWTSecret, d.AuthService)
	admin := middleware.AdminOnly()

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", d.Health.Liveness)
	e.GET("/health/ready", d.Health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	v1 := e.Group("/v1")

	// --- Auth ---
	auth := v1.Group("/auth")
	auth.POST("/signup", d.Auth.Signup)
	auth.POST("/login", d.Auth.Login)
	auth.POST("/invite", d.Auth.Invite, authed, admin)
	auth.POST("/invite/accept", d.Auth.AcceptInvite)
	auth.GET("/verify/:token", d.Auth.VerifyEmail)
	auth.POST("/password/forgot", d.Auth.ForgotPassword)
	auth.POST("/password/reset", d.Auth.ResetPassword)
	auth.GET("/me", d.Auth.Me, authed)
	auth.DELETE("/me", d.Auth.DeleteAccount, authed)

	// --- Companies ---
	v1.POST("/companies", d.Company.Create, authed)
	v1.GET("/companies/mine", d.Company.ListMine, authed)
	v1.GET("/companies/:id", d.Company.Get)
	v1.PATCH("/companies/:id", d.Company.Update, authed)
	v1.DELETE("/companies/:id", d.Company.Deactivate, authed)
	v1.GET("/companies/:id/jobs", d.Job.ListCompanyJobs, authed)
	v1.GET("/companies/:id/stats", d.Job.CompanyStats, authed)

	// --- Freelancer profile ---
	profile := v1.Group("/profile", authed)
	profile.PUT("", d.Profile.Upsert)
	profile.GET("", d.Profile.Get)
	profile.POST("/skills", d.Profile.AddSkill)
	profile.DELETE("/skills/:name", d.Profile.RemoveSkill)
	profile.POST("/links", d.Profile.AddLink)
	profile.DELETE("/links/:name", d.Profile.RemoveLink)
	profile.POST("/visibility", d.Profile.ToggleVisibility)

	// --- Taxonomy (public reads, admin writes) ---
	v1.GET("/categories", d.Taxonomy.ListCategories)
	v1.GET("/categories/:slug", d.Taxonomy.GetCategory)
	v1.GET("/tags", d.Taxonomy.ListTags)

	adminGroup := v1.Group("/admin", authed, admin)
	adminGroup.POST("/categories", d.Taxonomy.CreateCategory)
	adminGroup.PATCH("/categories/:id", d.Taxonomy.UpdateCategory)
	adminGroup.POST("/categories/:id/toggle", d.Taxonomy.ToggleCategory)
	adminGroup.POST("/tags", d.Taxonomy.CreateTag)
	adminGroup.PATCH("/tags/:id", d.Taxonomy.UpdateTag)
	adminGroup.POST("/tags/:id/toggle", d.Taxonomy.ToggleTag)

	// --- Jobs ---
	v1.GET("/jobs", d.Job.ListPublished)
	v1.GET("/jobs/:id", d.Job.Get)
	v1.POST("/jobs", d.Job.Create, authed)
	v1.PATCH("/jobs/:id", d.Job.Update, authed)
	v1.POST("/jobs/:id/publish", d.Job.Publish, authed)
	v1.POST("/jobs/:id/unpublish", d.Job.Unpublish, authed)
	v1.POST("/jobs/:id/toggle-active", d.Job.ToggleActive, authed)
	v1.POST("/jobs/:id/duplicate", d.Job.Duplicate, authed)
	v1.DELETE("/jobs/:id", d.Job.Delete, authed)

	// --- Applications ---
	v1.POST("/jobs/:id/apply", d.Application.Apply, authed)
	v1.GET("/jobs/:id/applications", d.Application.ListForJob, authed)
	v1.GET("/applications", d.Application.ListMine, authed)
	v1.PATCH("/applications/:id/status", d.Application.UpdateStatus, authed)

	// --- Follows and subscriptions ---
	v1.POST("/follows", d.Engagement.Follow, authed)
	v1.DELETE("/follows", d.Engagement.Unfollow, authed)
	v1.GET("/follows", d.Engagement.ListFollows, authed)
	v1.POST("/subscriptions", d.Engagement.Subscribe)
	v1.GET("/subscriptions/unsubscribe/:token", d.Engagement.Unsubscribe)

	// --- Notifications ---
	notif := v1.Group("/notifications", authed)
	notif.GET("", d.Notification.ListMine)
	notif.POST("/:id/read", d.Notification.MarkAsRead)
	notif.POST("/read-all", d.Notification.MarkAllAsRead)

	// --- CMS content ---
	v1.GET("/pages/:slug", d.Content.GetPage)
	v1.GET("/faqs", d.Content.ListFAQs)
	adminGroup.POST("/pages", d.Content.CreatePage)
	adminGroup.PATCH("/pages/:id", d.Content.UpdatePage)
	adminGroup.POST("/pages/:id/toggle", d.Content.TogglePage)
	adminGroup.GET("/faqs", d.Content.ListAllFAQs)
	adminGroup.POST("/faqs", d.Content.CreateFAQ)
	adminGroup.PATCH("/faqs/:id", d.Content.UpdateFAQ)
	adminGroup.POST("/faqs/:id/toggle", d.Content.ToggleFAQ)

	return e
}
