// @title           ServiceHub Backend API
// @version         1.0.0
// @description     Backend API for a local services marketplace. Homeowners post jobs and request quotes, providers respond with proposals and quotations, bookings track the work, and chat plus a status feed run over Supabase Realtime.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"log"
	"net/http"
	"net/url"

	"servicehub-backend/docs"
	"servicehub-backend/internal/config"
	"servicehub-backend/internal/database"
	"servicehub-backend/internal/handlers"
	"servicehub-backend/internal/middleware"
	"servicehub-backend/internal/models"
	"servicehub-backend/internal/services"
	"servicehub-backend/internal/supabase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}

	realtimeClient := supabase.NewRealtimeClient(supabaseClient.Supabase)

	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}
	defer dbClient.Close()

	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(); err != nil {
		migrator.Close()
		log.Fatalf("Migration failed: %v", err)
	}
	migrator.Close()
	log.Println("Migrations completed successfully")

	chatService := services.NewChatService(dbClient, realtimeClient)
	statusService := services.NewStatusService(dbClient, storageClient)

	jobPostsHandler := handlers.NewJobPostsHandler(cfg, dbClient, realtimeClient)
	quoteRequestsHandler := handlers.NewQuoteRequestsHandler(cfg, dbClient, realtimeClient)
	bookingsHandler := handlers.NewBookingsHandler(dbClient, storageClient, realtimeClient)
	servicesHandler := handlers.NewServicesHandler(dbClient)
	chatHandler := handlers.NewChatHandler(dbClient, chatService)
	statusesHandler := handlers.NewStatusesHandler(dbClient, statusService)
	notificationsHandler := handlers.NewNotificationsHandler(dbClient)
	reviewsHandler := handlers.NewReviewsHandler(dbClient)
	profilesHandler := handlers.NewProfilesHandler(dbClient)
	adminHandler := handlers.NewAdminHandler(dbClient)

	router := gin.Default()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api/v1")

	// Public browsing
	api.GET("/services", servicesHandler.SearchServices)
	api.GET("/services/:service_id", servicesHandler.GetService)
	api.GET("/statuses", statusesHandler.ListStatuses)
	api.GET("/providers/:provider_id/reviews", reviewsHandler.ListProviderReviews)
	api.GET("/profiles/:user_id", profilesHandler.GetProfile)

	// Authenticated routes
	auth := api.Group("")
	auth.Use(middleware.AuthMiddleware(cfg))

	auth.GET("/profile", profilesHandler.GetMyProfile)
	auth.PUT("/profile", profilesHandler.UpdateMyProfile)

	auth.GET("/job-posts", jobPostsHandler.ListJobPosts)
	auth.GET("/job-posts/:post_id", jobPostsHandler.GetJobPost)
	auth.GET("/job-posts/:post_id/proposals", jobPostsHandler.ListProposals)
	auth.POST("/proposals/:proposal_id/approve", jobPostsHandler.ApproveProposal)
	auth.POST("/proposals/:proposal_id/reject", jobPostsHandler.RejectProposal)

	auth.GET("/bookings", bookingsHandler.ListBookings)
	auth.GET("/bookings/:booking_id", bookingsHandler.GetBooking)
	auth.POST("/bookings/:booking_id/cancel", bookingsHandler.CancelBooking)
	auth.GET("/bookings/:booking_id/quotation", bookingsHandler.GetQuotation)
	auth.POST("/quotations/:quotation_id/approve", bookingsHandler.ApproveQuotation)
	auth.POST("/bookings/:booking_id/review", reviewsHandler.CreateReview)

	auth.POST("/conversations", chatHandler.OpenConversation)
	auth.GET("/conversations", chatHandler.ListConversations)
	auth.GET("/conversations/:conversation_id/messages", chatHandler.ListMessages)
	auth.POST("/conversations/:conversation_id/messages", chatHandler.SendMessage)
	auth.POST("/conversations/:conversation_id/read", chatHandler.MarkRead)

	auth.GET("/notifications", notificationsHandler.ListNotifications)
	auth.POST("/notifications/:notification_id/read", notificationsHandler.MarkNotificationRead)

	auth.POST("/statuses/:status_id/like", statusesHandler.LikeStatus)

	// Homeowner routes; role is read from the profiles table, not the token
	client := auth.Group("")
	client.Use(middleware.RequireRole(dbClient, models.RoleUser))

	client.POST("/job-posts", jobPostsHandler.CreateJobPost)
	client.POST("/quote-requests", quoteRequestsHandler.CreateQuoteRequest)
	client.POST("/bookings", bookingsHandler.CreateBooking)

	// Provider routes; role is read from the profiles table, not the token
	provider := auth.Group("")
	provider.Use(middleware.RequireRole(dbClient, models.RoleProvider))

	provider.POST("/job-posts/:post_id/proposals", jobPostsHandler.SubmitProposal)
	provider.POST("/bookings/:booking_id/confirm", bookingsHandler.ConfirmBooking)
	provider.POST("/bookings/:booking_id/complete", bookingsHandler.CompleteBooking)
	provider.POST("/bookings/:booking_id/quotation", bookingsHandler.CreateQuotation)
	provider.POST("/services", servicesHandler.CreateService)
	provider.GET("/services/mine", servicesHandler.ListMyServices)
	provider.POST("/statuses", statusesHandler.PostStatus)
	provider.DELETE("/statuses/:status_id", statusesHandler.DeleteStatus)

	// Admin routes
	admin := auth.Group("/admin")
	admin.Use(middleware.RequireAdmin(dbClient))

	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:user_id/role", adminHandler.ChangeRole)
	admin.GET("/services", adminHandler.ListPendingServices)
	admin.POST("/services/:service_id/approve", adminHandler.ApproveService)
	admin.POST("/services/:service_id/reject", adminHandler.RejectService)
	admin.GET("/quote-requests", quoteRequestsHandler.ListQuoteRequests)
	admin.POST("/quote-requests/:request_id/approve", quoteRequestsHandler.ApproveQuoteRequest)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
