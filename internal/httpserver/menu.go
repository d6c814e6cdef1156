package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func menuHandler(menu MenuLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := menu.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}
