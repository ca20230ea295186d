package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saaslanding/saaslanding/backend/api/handlers"
	"github.com/saaslanding/saaslanding/backend/api/internal/blog"
	"github.com/saaslanding/saaslanding/backend/api/internal/config"
	"github.com/saaslanding/saaslanding/backend/api/internal/contact"
	"github.com/saaslanding/saaslanding/backend/api/internal/database"
	"github.com/saaslanding/saaslanding/backend/api/internal/users"
	"github.com/saaslanding/saaslanding/backend/api/pkg/logger"
	"github.com/saaslanding/saaslanding/backend/api/pkg/metrics"
	"github.com/saaslanding/saaslanding/backend/api/pkg/middleware"
)

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v database=%q env=%s", cfg.Database.URI != "", cfg.Database.Name, cfg.Server.Environment)

	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(), gin.Recovery())
	r.Use(middleware.Metrics())

	// Connect to MongoDB with retry/backoff to tolerate startup races.
	// A failed connection never crashes the process: handlers run against
	// a disconnected store and /test reports the state.
	ctx := context.Background()
	var client *mongo.Client
	if cfg.Database.URI != "" {
		const maxAttempts = 5
		backoff := time.Second
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn = database.ConnectMongo(ctx, cfg.Database.URI, cfg.Database.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
			client = nil
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
			logger.Infof("connected to MongoDB database %q", cfg.Database.Name)
		}
	} else {
		logger.Warnf("DATABASE_URL not set; running with a disconnected store")
	}

	store := database.NewStore(client, cfg.Database.Name)

	userSvc := users.NewService(users.NewStoreRepository(store))
	blogSvc := blog.NewService(blog.NewStoreRepository(store))
	contactSvc := contact.NewService(contact.NewStoreRepository(store))

	root := r.Group("/")
	handlers.NewAuthHandler(userSvc).Register(root)
	handlers.NewBlogHandler(blogSvc).Register(root)
	handlers.NewContactHandler(contactSvc).Register(root)
	handlers.NewHealthHandler(cfg, store).Register(r)
	handlers.RegisterSwagger(r)

	// liveness + metrics
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	logger.Infof("Starting SaaS Landing API on %s", addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
