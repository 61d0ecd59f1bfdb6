package handlers

import (
	"net/http"
	"time"

	"article-intake/models"

	"github.com/gin-gonic/gin"
)

// Ping reports liveness. It never touches the database.
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, models.PingResponse{
		OK: true,
		TS: models.FormatTimestamp(time.Now()),
	})
}
