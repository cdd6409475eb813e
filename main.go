package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"artmarket-api/config"
	"artmarket-api/handlers"
	"artmarket-api/helper"
	"artmarket-api/identity"
	"artmarket-api/middleware"
	"artmarket-api/repositories"
	"artmarket-api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize helpers and collaborators
	httpHelper, err := helper.NewHTTPHelper()
	if err != nil {
		log.Fatalf("Failed to initialize validator: %v", err)
	}
	middleware.HTTPHelper = httpHelper

	identityProvider := identity.NewHTTPProvider(
		os.Getenv("IDENTITY_API_URL"),
		os.Getenv("IDENTITY_API_KEY"),
	)

	// Initialize repositories
	sequenceRepo := repositories.NewSequenceRepository(db)
	artistRepo := repositories.NewArtistRepository(db)
	artRepo := repositories.NewArtRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	homeConfigRepo := repositories.NewHomeConfigRepository(db)
	profileRepo := repositories.NewUserProfileRepository(db)

	// Initialize services
	artistService := services.NewArtistService(artistRepo, artRepo, sequenceRepo, identityProvider)
	artService := services.NewArtService(artRepo, artistRepo, sequenceRepo)
	blogService := services.NewBlogService(blogRepo, sequenceRepo)
	commentService := services.NewCommentService(commentRepo, artRepo, sequenceRepo, identityProvider)
	homepageService := services.NewHomepageService(homeConfigRepo)
	adminService := services.NewAdminService(artistRepo, blogRepo, artRepo)
	userService := services.NewUserService(profileRepo, artistRepo)

	// Initialize handlers
	artistHandler := handlers.NewArtistHandler(artistService, httpHelper)
	artHandler := handlers.NewArtHandler(artService, httpHelper)
	blogHandler := handlers.NewBlogHandler(blogService, httpHelper)
	commentHandler := handlers.NewCommentHandler(commentService, httpHelper)
	homepageHandler := handlers.NewHomepageHandler(homepageService, httpHelper)
	adminHandler := handlers.NewAdminHandler(adminService, httpHelper)
	userHandler := handlers.NewUserHandler(userService, httpHelper)

	// Setup router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.SanitizeInput())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	api := router.Group("/api")
	{
		arts := api.Group("/arts")
		{
			arts.GET("", artHandler.List)
			arts.GET("/:id", artHandler.Get)
			arts.POST("/:id/view", artHandler.IncrementView)
			arts.GET("/:id/comments", commentHandler.ListForArt)
			arts.POST("/:id/comments", commentHandler.Create)

			protected := arts.Group("")
			protected.Use(middleware.AuthMiddleware())
			{
				protected.POST("", artHandler.Create)
				protected.PUT("/:id", artHandler.Update)
				protected.DELETE("/:id", artHandler.Delete)
				protected.POST("/:id/like", artHandler.ToggleLike)
				protected.DELETE("/:id/comments/:commentId", commentHandler.Delete)
			}

			admin := arts.Group("/admin")
			admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(identity.RoleAdmin))
			{
				admin.GET("", artHandler.ListForAdmin)
				admin.PUT("/:id/ban", artHandler.Ban)
				admin.PUT("/:id/unban", artHandler.Unban)
			}
		}

		artists := api.Group("/artists")
		{
			artists.GET("", artistHandler.ListApproved)
			artists.GET("/:id", artistHandler.Get)
			artists.POST("/apply", middleware.AuthMiddleware(), artistHandler.Apply)

			admin := artists.Group("/admin")
			admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(identity.RoleAdmin))
			{
				admin.GET("", artistHandler.ListForAdmin)
				admin.PUT("/:id/approve", artistHandler.Approve)
				admin.PUT("/:id/reject", artistHandler.Reject)
			}
		}

		blogs := api.Group("/blogs")
		{
			blogs.GET("", blogHandler.ListApproved)
			blogs.GET("/:id", blogHandler.Get)
			blogs.POST("", middleware.AuthMiddleware(), blogHandler.Create)

			admin := blogs.Group("/admin")
			admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(identity.RoleAdmin))
			{
				admin.GET("", blogHandler.ListForAdmin)
				admin.PUT("/:id/approve", blogHandler.Approve)
				admin.PUT("/:id/reject", blogHandler.Reject)
			}
		}

		api.GET("/homepage", homepageHandler.Get)
		api.PUT("/homepage",
			middleware.AuthMiddleware(), middleware.RequireRole(identity.RoleAdmin),
			homepageHandler.Set)

		api.GET("/admin/overview",
			middleware.AuthMiddleware(), middleware.RequireRole(identity.RoleAdmin),
			adminHandler.Overview)

		users := api.Group("/users")
		users.Use(middleware.AuthMiddleware())
		{
			users.GET("/me", userHandler.GetMe)
			users.PUT("/me", userHandler.UpsertMe)
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
