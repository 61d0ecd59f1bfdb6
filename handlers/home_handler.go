package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	indexPath string
}

func NewHomeHandler(staticDir string) *HomeHandler {
	return &HomeHandler{indexPath: filepath.Join(staticDir, "index.html")}
}

// Home serves index.html, read from disk on every request. A missing file
// is reported as a bare 500.
func (h *HomeHandler) Home(c *gin.Context) {
	page, err := os.ReadFile(h.indexPath)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
