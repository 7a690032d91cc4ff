package httpserver

import (
	"log"
	"net/http"

	"shopadmin/internal/domain"
	"github.com/gin-gonic/gin"
)

func listOrdersHandler(svc orderService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, logger, err)
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}
