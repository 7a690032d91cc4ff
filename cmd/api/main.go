package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shopadmin/internal/config"
	"shopadmin/internal/db"
	"shopadmin/internal/httpserver"
	"shopadmin/internal/objectstore"
	categoryrepo "shopadmin/internal/repository/category"
	orderrepo "shopadmin/internal/repository/order"
	productrepo "shopadmin/internal/repository/product"
	sessionrepo "shopadmin/internal/repository/session"
	categorysvc "shopadmin/internal/service/category"
	ordersvc "shopadmin/internal/service/order"
	productsvc "shopadmin/internal/service/product"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	categoryRepo := categoryrepo.NewPostgres(dbpool, logger)
	categoryService := categorysvc.New(categoryRepo)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	productService := productsvc.New(productRepo, categoryRepo)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	orderService := ordersvc.New(orderRepo)
	sessionRepo := sessionrepo.NewPostgres(dbpool)

	var uploads objectstore.Store
	if cfg.S3Bucket != "" {
		store, err := objectstore.NewS3(ctx, cfg.S3Region, cfg.S3Bucket, cfg.S3PublicBaseURL)
		if err != nil {
			logger.Fatalf("init object store: %v", err)
		}
		uploads = store
	} else {
		logger.Printf("S3_BUCKET not set, uploads disabled")
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CategorySvc:    categoryService,
		ProductSvc:     productService,
		OrderSvc:       orderService,
		Sessions:       sessionRepo,
		Uploads:        uploads,
		AdminEmails:    cfg.AdminEmails,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
