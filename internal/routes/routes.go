package routes

import (
	"github.com/14kear/movie-voting/internal/handlers"
	"github.com/gin-gonic/gin"
)

func RegisterPublicRoutes(rg *gin.RouterGroup, handler *handlers.VotingHandler) {
	{
		rg.GET("/options", handler.GetOptions)
		rg.POST("/vote", handler.Vote)

		rg.GET("/results", handler.GetResults)
		rg.GET("/recent-votes", handler.GetRecentVotes)
	}
}

// RegisterAdminRoutes registers routes guarded by the admin password in the request body.
func RegisterAdminRoutes(rg *gin.RouterGroup, handler *handlers.VotingHandler) {
	{
		rg.POST("/reset", handler.Reset)
	}
}
