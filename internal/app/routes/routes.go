package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/omniport/acadsync/internal/app/controllers"
	"github.com/omniport/acadsync/internal/app/models/dto"
	"github.com/omniport/acadsync/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	syncController *controllers.SyncController,
	directoryController *controllers.DirectoryController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Public directory routes ---
	v1.GET("/departments", directoryController.ListDepartments)
	v1.GET("/centres", directoryController.ListCentres)

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/persons", directoryController.ListPersons)

		syncs := authenticated.Group("/sync")
		{
			syncs.POST("/:kind", syncController.RunSync)
			syncs.GET("/batches", syncController.ListBatches)
			syncs.GET("/batches/:id", syncController.GetBatch)
		}

		imports := authenticated.Group("/import")
		{
			imports.POST("/students", syncController.ImportStudent)
			imports.POST("/faculty", syncController.ImportFaculty)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
