package routes

import (
	"github.com/LJMarquez/talentlink-backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every HTTP route. Paths live at the engine root
// because the frontend was built against the unprefixed surface.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	root := ginRouter.Group("")
	{
		appHandlers.AccountHandler.RegisterRoutes(root)
		appHandlers.ApplicationHandler.RegisterRoutes(root)
		appHandlers.JobHandler.RegisterRoutes(root)
		appHandlers.DebugHandler.RegisterRoutes(root)
	}
}
