package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpctx "github.com/markethub/catalog-server/internal/api/http/context"
	"github.com/markethub/catalog-server/internal/api/http/handler"
	"github.com/markethub/catalog-server/internal/api/http/middleware"
	"github.com/markethub/catalog-server/internal/api/http/router"
	httpServer "github.com/markethub/catalog-server/internal/api/http/server"
	"github.com/markethub/catalog-server/internal/config"
	"github.com/markethub/catalog-server/internal/logger"
	"github.com/markethub/catalog-server/internal/model"
	"github.com/markethub/catalog-server/internal/repository/postgres"
	"github.com/markethub/catalog-server/internal/security"
	"github.com/markethub/catalog-server/internal/service"
	storage "github.com/markethub/catalog-server/internal/storage/minio"
	"github.com/markethub/catalog-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	productRepo := postgres.NewProductRepository(db)

	tokenManager, err := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		logger.Fatal("failed to initialize token manager", "error", err)
	}
	hasher := security.NewBcryptHasher()
	policy := service.NewPolicy(cfg.Admin.Email)

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	authService := service.NewAuth(userRepo, tokenManager, hasher, logger)
	userService := service.NewUser(userRepo, productRepo, hasher, policy, logger)
	productService := service.NewProduct(productRepo, storageClient, policy, logger)

	seeder := service.NewSeeder(userRepo, hasher, logger, cfg.Admin.Email, cfg.Admin.Name, cfg.Admin.Password)
	if err := seeder.Run(ctx); err != nil {
		logger.Fatal("failed to seed default admin", "error", err)
	}

	ctxMgr := httpctx.NewManager()

	srv := registerHTTPServer(logger, db, authService, userService, productService, ctxMgr, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = httpServer.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = httpServer.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerHTTPServer(
	logger *logger.Logger,
	db *postgres.Connection,
	authService *service.Auth,
	userService *service.User,
	productService *service.Product,
	ctxMgr model.ContextManager,
	addr string,
) *httpServer.HTTPServer {
	handlers := router.Handlers{
		Auth:    handler.NewAuth(authService, logger),
		User:    handler.NewUser(userService, ctxMgr, logger),
		Product: handler.NewProduct(productService, ctxMgr, logger),
		Health:  handler.NewHealth(db),
	}

	authenticate := middleware.NewAuthenticate(authService, ctxMgr, logger)
	logging := middleware.NewLogging(logger)

	engine := router.New(handlers, authenticate, logging, logger)

	return httpServer.NewHTTPServer(engine, addr)
}
