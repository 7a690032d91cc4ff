package httpserver

import (
	"context"
	"errors"
	"log"
	"time"

	"shopadmin/internal/domain"
	"shopadmin/internal/objectstore"
	sessionrepo "shopadmin/internal/repository/session"
	categorysvc "shopadmin/internal/service/category"
	productsvc "shopadmin/internal/service/product"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type categoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, in categorysvc.Input) (*domain.Category, error)
	Update(ctx context.Context, id string, in categorysvc.Input) (*domain.Category, error)
	Delete(ctx context.Context, id string, force bool) error
	Resolve(ctx context.Context, id string) ([]domain.AttributeSchema, error)
}

type productService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in productsvc.CreateInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in productsvc.UpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type orderService interface {
	List(ctx context.Context) ([]domain.Order, error)
}

type sessionStore interface {
	Get(ctx context.Context, token string) (*sessionrepo.Session, error)
}

// Deps collects the collaborators the router needs.
type Deps struct {
	CategorySvc    categoryService
	ProductSvc     productService
	OrderSvc       orderService
	Sessions       sessionStore
	Uploads        objectstore.Store
	AdminEmails    []string
	AllowedOrigins []string
}

// buildRouter wires routes for the admin API. All catalog routes require an
// authenticated session; mutations additionally require an allow-listed admin
// email.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.CategorySvc == nil || deps.ProductSvc == nil || deps.OrderSvc == nil {
		return nil, errors.New("missing service dependencies")
	}
	if deps.Sessions == nil {
		return nil, errors.New("missing session store")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(deps.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     deps.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	authed := router.Group("", sessionMiddleware(deps.Sessions, logger))
	admin := authed.Group("", adminOnly(deps.AdminEmails))

	authed.GET("/categories", listCategoriesHandler(deps.CategorySvc, logger))
	authed.GET("/categories/:id/attributes", resolveAttributesHandler(deps.CategorySvc, logger))
	admin.POST("/categories", createCategoryHandler(deps.CategorySvc, logger))
	admin.PUT("/categories/:id", updateCategoryHandler(deps.CategorySvc, logger))
	admin.DELETE("/categories/:id", deleteCategoryHandler(deps.CategorySvc, logger))

	authed.GET("/products", listProductsHandler(deps.ProductSvc, logger))
	authed.GET("/products/:id", getProductHandler(deps.ProductSvc, logger))
	admin.POST("/products", createProductHandler(deps.ProductSvc, logger))
	admin.PUT("/products/:id", updateProductHandler(deps.ProductSvc, logger))
	admin.DELETE("/products/:id", deleteProductHandler(deps.ProductSvc, logger))

	authed.GET("/orders", listOrdersHandler(deps.OrderSvc, logger))

	admin.POST("/uploads", uploadsHandler(deps.Uploads, logger))

	return router, nil
}
