package httpserver

import (
	"log"
	"net/http"

	"shopadmin/internal/domain"
	categorysvc "shopadmin/internal/service/category"
	"github.com/gin-gonic/gin"
)

func listCategoriesHandler(svc categoryService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, logger, err)
			return
		}
		if categories == nil {
			categories = []domain.Category{}
		}
		c.JSON(http.StatusOK, categories)
	}
}

func resolveAttributesHandler(svc categoryService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		attrs, err := svc.Resolve(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"properties": attrs})
	}
}

func createCategoryHandler(svc categoryService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in categorysvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			writeError(c, logger, bindError(err))
			return
		}
		created, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateCategoryHandler(svc categoryService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in categorysvc.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			writeError(c, logger, bindError(err))
			return
		}
		updated, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteCategoryHandler(svc categoryService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		force := c.Query("force") == "true"
		if err := svc.Delete(c.Request.Context(), c.Param("id"), force); err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
	}
}
