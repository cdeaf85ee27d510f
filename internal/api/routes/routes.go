package routes

import (
	"podcastflow-backend/internal/api/handlers"
	"podcastflow-backend/internal/api/middleware"
	"podcastflow-backend/internal/auth"
	"podcastflow-backend/internal/config"
	"podcastflow-backend/internal/database/models"
	"podcastflow-backend/internal/logger"
	"podcastflow-backend/internal/repository"
	"podcastflow-backend/internal/service"
	"podcastflow-backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, pool *pgxpool.Pool, cfg *config.Config, log *logger.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	validate := validator.New()

	// Tenant infrastructure
	gateway := tenant.NewGateway(pool)
	manager := tenant.NewManager(pool, cfg.DatabaseURL)
	resolver := tenant.NewResolver(db)

	// Platform repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	emailQueueRepo := repository.NewEmailQueueRepository(db)
	emailTemplateRepo := repository.NewEmailTemplateRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	masterInvoiceRepo := repository.NewMasterInvoiceRepository(db)
	syncJobRepo := repository.NewSyncJobRepository(db)

	// Tenant repositories
	agencyRepo := repository.NewAgencyRepository(gateway)
	advertiserRepo := repository.NewAdvertiserRepository(gateway)
	showRepo := repository.NewShowRepository(gateway)
	episodeRepo := repository.NewEpisodeRepository(gateway)
	rateCardRepo := repository.NewRateCardRepository(gateway)
	campaignRepo := repository.NewCampaignRepository(gateway)
	orderRepo := repository.NewOrderRepository(gateway)
	invoiceRepo := repository.NewInvoiceRepository(gateway)
	revenueSharingRepo := repository.NewRevenueSharingRepository(gateway)
	analyticsRepo := repository.NewAnalyticsRepository(gateway)

	// Services
	notificationService := service.NewNotificationService(userRepo, emailTemplateRepo, emailQueueRepo, notificationRepo, log)
	organizationService := service.NewOrganizationService(organizationRepo, manager, resolver, validate)
	userService := service.NewUserService(userRepo, organizationRepo, notificationService, validate, log)
	agencyService := service.NewAgencyService(agencyRepo, validate)
	advertiserService := service.NewAdvertiserService(advertiserRepo, agencyRepo, validate)
	showService := service.NewShowService(showRepo, validate)
	episodeService := service.NewEpisodeService(episodeRepo, showRepo, validate)
	rateCardService := service.NewRateCardService(rateCardRepo, showRepo, validate)
	inventoryService := service.NewInventoryService(showRepo, episodeRepo, orderRepo)
	campaignService := service.NewCampaignService(campaignRepo, advertiserRepo, notificationService, validate, log)
	orderService := service.NewOrderService(orderRepo, campaignRepo, rateCardRepo, episodeRepo, inventoryService, notificationService, validate, log)
	invoiceService := service.NewInvoiceService(invoiceRepo, campaignRepo, orderRepo, notificationService, validate, log)
	masterInvoiceService := service.NewMasterInvoiceService(masterInvoiceRepo, organizationRepo, validate, log)
	revenueSharingService := service.NewRevenueSharingService(revenueSharingRepo, showRepo, validate)
	analyticsService := service.NewAnalyticsService(analyticsRepo, campaignRepo, validate)
	templateService := service.NewTemplateService(emailTemplateRepo, validate, log)
	youtubeService := service.NewYouTubeService(cfg)
	syncService := service.NewYouTubeSyncService(syncJobRepo, episodeRepo, youtubeService, notificationService, log)

	// Auth
	authService := auth.NewService(userRepo, cfg)
	authMiddleware := auth.NewMiddleware(authService, resolver)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, pool)
	authHandler := handlers.NewAuthHandler(authService, userService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	userHandler := handlers.NewUserHandler(userService)
	agencyHandler := handlers.NewAgencyHandler(agencyService)
	advertiserHandler := handlers.NewAdvertiserHandler(advertiserService)
	showHandler := handlers.NewShowHandler(showService)
	episodeHandler := handlers.NewEpisodeHandler(episodeService)
	rateCardHandler := handlers.NewRateCardHandler(rateCardService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	campaignHandler := handlers.NewCampaignHandler(campaignService)
	orderHandler := handlers.NewOrderHandler(orderService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	masterInvoiceHandler := handlers.NewMasterInvoiceHandler(masterInvoiceService)
	revenueSharingHandler := handlers.NewRevenueSharingHandler(revenueSharingService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	templateHandler := handlers.NewTemplateHandler(templateService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	syncHandler := handlers.NewSyncHandler(syncService, log)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Login is the only unauthenticated API endpoint
	v1.POST("/auth/login", authHandler.Login)

	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/auth/me", authHandler.Me)

		// Organization routes (platform administration)
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", authMiddleware.RequireRole(), organizationHandler.ListOrganizations)
			organizations.POST("", authMiddleware.RequireRole(), organizationHandler.CreateOrganization)
			organizations.GET("/:id", authMiddleware.RequireRole(models.UserRoleAdmin), organizationHandler.GetOrganization)
			organizations.GET("/by-slug/:slug", authMiddleware.RequireRole(models.UserRoleAdmin), organizationHandler.GetOrganizationBySlug)
			organizations.PUT("/:id", authMiddleware.RequireRole(), organizationHandler.UpdateOrganization)
			organizations.DELETE("/:id", authMiddleware.RequireRole(), organizationHandler.DeleteOrganization)
			organizations.GET("/:id/master-invoices", authMiddleware.RequireRole(models.UserRoleAdmin), masterInvoiceHandler.ListOrganizationMasterInvoices)
		}

		// User routes
		users := v1.Group("/users")
		users.Use(authMiddleware.RequireRole(models.UserRoleAdmin))
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.InviteUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Agency routes
		agencies := v1.Group("/agencies")
		{
			agencies.GET("", agencyHandler.ListAgencies)
			agencies.POST("", agencyHandler.CreateAgency)
			agencies.GET("/:id", agencyHandler.GetAgency)
			agencies.PUT("/:id", agencyHandler.UpdateAgency)
			agencies.DELETE("/:id", agencyHandler.DeleteAgency)
			agencies.GET("/:id/advertisers", advertiserHandler.ListAgencyAdvertisers)
		}

		// Advertiser routes
		advertisers := v1.Group("/advertisers")
		{
			advertisers.GET("", advertiserHandler.ListAdvertisers)
			advertisers.POST("", advertiserHandler.CreateAdvertiser)
			advertisers.GET("/:id", advertiserHandler.GetAdvertiser)
			advertisers.PUT("/:id", advertiserHandler.UpdateAdvertiser)
			advertisers.DELETE("/:id", advertiserHandler.DeleteAdvertiser)
			advertisers.GET("/:id/campaigns", campaignHandler.ListAdvertiserCampaigns)
		}

		// Show routes, with nested episodes, rate cards, agreements, and availability
		shows := v1.Group("/shows")
		{
			shows.GET("", showHandler.ListShows)
			shows.POST("", showHandler.CreateShow)
			shows.GET("/:id", showHandler.GetShow)
			shows.PUT("/:id", showHandler.UpdateShow)
			shows.DELETE("/:id", showHandler.DeleteShow)
			shows.GET("/:id/episodes", episodeHandler.ListShowEpisodes)
			shows.POST("/:id/episodes", episodeHandler.CreateEpisode)
			shows.GET("/:id/rate-cards", rateCardHandler.ListShowRateCards)
			shows.POST("/:id/rate-cards", rateCardHandler.CreateRateCard)
			shows.GET("/:id/effective-rate", rateCardHandler.GetEffectiveRate)
			shows.GET("/:id/availability", inventoryHandler.GetAvailability)
			shows.GET("/:id/revenue-sharing", revenueSharingHandler.ListShowAgreements)
			shows.POST("/:id/revenue-sharing", revenueSharingHandler.CreateAgreement)
		}

		// Episode routes
		episodes := v1.Group("/episodes")
		{
			episodes.GET("/:id", episodeHandler.GetEpisode)
			episodes.PUT("/:id", episodeHandler.UpdateEpisode)
			episodes.DELETE("/:id", episodeHandler.DeleteEpisode)
		}

		// Rate card routes
		rateCards := v1.Group("/rate-cards")
		{
			rateCards.GET("/:id", rateCardHandler.GetRateCard)
			rateCards.PUT("/:id", rateCardHandler.UpdateRateCard)
			rateCards.DELETE("/:id", rateCardHandler.DeleteRateCard)
		}

		// Revenue sharing routes
		revenueSharing := v1.Group("/revenue-sharing")
		{
			revenueSharing.GET("/:id", revenueSharingHandler.GetAgreement)
			revenueSharing.PUT("/:id", revenueSharingHandler.UpdateAgreement)
			revenueSharing.DELETE("/:id", revenueSharingHandler.DeleteAgreement)
		}

		// Campaign routes
		campaigns := v1.Group("/campaigns")
		{
			campaigns.GET("", campaignHandler.ListCampaigns)
			campaigns.POST("", campaignHandler.CreateCampaign)
			campaigns.GET("/:id", campaignHandler.GetCampaign)
			campaigns.PUT("/:id", campaignHandler.UpdateCampaign)
			campaigns.PATCH("/:id/status", campaignHandler.UpdateCampaignStatus)
			campaigns.DELETE("/:id", campaignHandler.DeleteCampaign)
			campaigns.GET("/:id/orders", orderHandler.ListCampaignOrders)
			campaigns.GET("/:id/invoices", invoiceHandler.ListCampaignInvoices)
			campaigns.PUT("/:id/metrics", analyticsHandler.RecordMetric)
			campaigns.GET("/:id/performance", analyticsHandler.GetCampaignPerformance)
			campaigns.GET("/:id/performance/export", analyticsHandler.ExportCampaignPerformance)
		}

		// Order routes
		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.ListOrders)
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("/:id/items", orderHandler.AddOrderItem)
			orders.DELETE("/:id/items/:itemId", orderHandler.RemoveOrderItem)
			orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
			orders.DELETE("/:id", orderHandler.DeleteOrder)
		}

		// Invoice routes
		invoices := v1.Group("/invoices")
		{
			invoices.GET("", invoiceHandler.ListInvoices)
			invoices.POST("", invoiceHandler.GenerateInvoice)
			invoices.GET("/:id", invoiceHandler.GetInvoice)
			invoices.PATCH("/:id/status", invoiceHandler.UpdateInvoiceStatus)
		}

		// Platform billing routes (master only)
		masterInvoices := v1.Group("/master-invoices")
		masterInvoices.Use(authMiddleware.RequireRole())
		{
			masterInvoices.POST("", masterInvoiceHandler.GenerateMasterInvoice)
			masterInvoices.GET("/:id", masterInvoiceHandler.GetMasterInvoice)
			masterInvoices.PATCH("/:id/status", masterInvoiceHandler.UpdateMasterInvoiceStatus)
		}

		// Analytics routes
		analytics := v1.Group("/analytics")
		{
			analytics.GET("/dashboard", analyticsHandler.GetDashboard)
		}

		// Email template routes
		templates := v1.Group("/templates")
		templates.Use(authMiddleware.RequireRole(models.UserRoleAdmin))
		{
			templates.GET("", templateHandler.ListTemplates)
			templates.POST("", templateHandler.CreateTemplateOverride)
			templates.GET("/resolve/:key", templateHandler.ResolveTemplate)
			templates.PUT("/:id", templateHandler.UpdateTemplate)
			templates.DELETE("/:id", templateHandler.DeleteTemplate)
		}

		// Notification routes
		notifications := v1.Group("/notifications")
		notifications.Use(authMiddleware.RequireRole(models.UserRoleAdmin))
		{
			notifications.GET("", notificationHandler.ListDeliveries)
		}

		// Sync routes
		sync := v1.Group("/sync")
		sync.Use(authMiddleware.RequireRole(models.UserRoleAdmin, models.UserRoleProducer))
		{
			sync.POST("/youtube", syncHandler.StartSync)
			sync.GET("/jobs", syncHandler.ListSyncJobs)
			sync.GET("/jobs/:id", syncHandler.GetSyncJob)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB, pool *pgxpool.Pool, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))

	healthHandler := handlers.NewHealthHandler(db, pool)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
