package router

import (
	"arlab_backend/internal/handlers"
	"arlab_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupClientRoutes sets up the client routes.
func SetupClientRoutes(authenticatedGroup *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	clientRoutes := authenticatedGroup.Group("/clients")
	clientRoutes.Use(middleware.RoleAuthMiddleware("admin", "reception"))
	{
		clientRoutes.GET("", clientHandler.GetClients)
		clientRoutes.GET("/:id", clientHandler.GetClientByID)
		clientRoutes.POST("", clientHandler.CreateClient)
		clientRoutes.PUT("/:id", clientHandler.UpdateClient)
		clientRoutes.DELETE("/:id", clientHandler.DeleteClient)
	}
}

// SetupProductRoutes sets up the lab test catalog routes.
func SetupProductRoutes(authenticatedGroup *gin.RouterGroup, productHandler *handlers.ProductHandler) {
	productRoutes := authenticatedGroup.Group("/products")
	productRoutes.Use(middleware.RoleAuthMiddleware("admin", "reception"))
	{
		productRoutes.GET("", productHandler.GetProducts)
		productRoutes.GET("/:id", productHandler.GetProductByID)
		productRoutes.POST("", productHandler.CreateProduct)
		productRoutes.PUT("/:id", productHandler.UpdateProduct)
		productRoutes.DELETE("/:id", productHandler.DeleteProduct)
	}
}

// SetupLookupRoutes sets up the read-only reference table routes.
func SetupLookupRoutes(authenticatedGroup *gin.RouterGroup, lookupHandler *handlers.LookupHandler) {
	authenticatedGroup.GET("/categories", middleware.RoleAuthMiddleware("admin", "reception"), lookupHandler.GetCategories)
	authenticatedGroup.GET("/roles", middleware.RoleAuthMiddleware("admin"), lookupHandler.GetRoles)
}

// SetupUserRoutes sets up the staff account routes. Account management is
// admin only; there is no delete, accounts are deactivated via update.
func SetupUserRoutes(authenticatedGroup *gin.RouterGroup, userHandler *handlers.UserHandler) {
	userRoutes := authenticatedGroup.Group("/users")
	userRoutes.Use(middleware.RoleAuthMiddleware("admin"))
	{
		userRoutes.GET("", userHandler.GetUsers)
		userRoutes.GET("/:id", userHandler.GetUserByID)
		userRoutes.POST("", userHandler.CreateUser)
		userRoutes.PUT("/:id", userHandler.UpdateUser)
	}
}

// SetupSaleRoutes sets up the sale routes. Sales are immutable once
// created, so only listing and creation exist.
func SetupSaleRoutes(authenticatedGroup *gin.RouterGroup, saleHandler *handlers.SaleHandler) {
	saleRoutes := authenticatedGroup.Group("/sales")
	saleRoutes.Use(middleware.RoleAuthMiddleware("admin", "reception"))
	{
		saleRoutes.GET("", saleHandler.GetSales)
		saleRoutes.POST("", saleHandler.CreateSale)
	}
}

// SetupReportRoutes sets up the report routes.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := authenticatedGroup.Group("/reports")
	reportRoutes.Use(middleware.RoleAuthMiddleware("admin"))
	{
		reportRoutes.GET("/summary", reportHandler.GetSummary)
		reportRoutes.GET("/top-products", reportHandler.GetTopProducts)
		reportRoutes.GET("/weekly-sales", reportHandler.GetWeeklySales)
	}
}
