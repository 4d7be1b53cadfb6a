package router

import (
	"database/sql"

	"arlab_backend/internal/handlers"
	"arlab_backend/internal/middleware"
	"arlab_backend/internal/repositories"
	"arlab_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup wires repositories, services and handlers against the injected
// database handle and mounts all application routes under /api/v1.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Repositories
	clientRepo := repositories.NewClientRepository(db)
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	userRepo := repositories.NewUserRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	saleRepo := repositories.NewSaleRepository(db)
	reportRepo := repositories.NewReportRepository(db)

	// Services
	clientService := services.NewClientService(clientRepo, db)
	productService := services.NewProductService(productRepo, db)
	userService := services.NewUserService(userRepo, db)
	authService := services.NewAuthService(userRepo)
	saleService := services.NewSaleService(saleRepo, db)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	clientHandler := handlers.NewClientHandler(clientService)
	productHandler := handlers.NewProductHandler(productService)
	lookupHandler := handlers.NewLookupHandler(categoryRepo, roleRepo)
	userHandler := handlers.NewUserHandler(userService)
	saleHandler := handlers.NewSaleHandler(saleService)
	reportHandler := handlers.NewReportHandler(reportRepo)

	apiV1 := engine.Group("/api/v1")

	// Public authentication route
	apiV1.POST("/auth/login", authHandler.Login)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		authenticated.GET("/auth/me", authHandler.GetCurrentUser)

		SetupClientRoutes(authenticated, clientHandler)
		SetupProductRoutes(authenticated, productHandler)
		SetupLookupRoutes(authenticated, lookupHandler)
		SetupUserRoutes(authenticated, userHandler)
		SetupSaleRoutes(authenticated, saleHandler)
		SetupReportRoutes(authenticated, reportHandler)
	}
}
