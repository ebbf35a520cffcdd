package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter はAPIのルーティングを設定したエンジンを作成する
func NewRouter(sessions *MapSessionHandler, stream *PanelStreamHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "fend-neighborhood-map",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/points", sessions.GetPoints)
		api.POST("/sessions", sessions.CreateSession)
		api.GET("/sessions/:id", sessions.GetSession)
		api.PUT("/sessions/:id/query", sessions.PutQuery)
		api.POST("/sessions/:id/markers/:markerId/click", sessions.ClickMarker)
		api.POST("/sessions/:id/list/:markerId/click", sessions.ClickListItem)
		api.POST("/sessions/:id/panel/close", sessions.ClosePanel)
		api.POST("/sessions/:id/reset", sessions.Reset)
		api.GET("/sessions/:id/events", stream.Stream)
	}

	return r
}
