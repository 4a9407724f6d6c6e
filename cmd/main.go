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

	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpctx "github.com/respite-app/respite-server/internal/api/http/context"
	"github.com/respite-app/respite-server/internal/api/http/router"
	httpServer "github.com/respite-app/respite-server/internal/api/http/server"
	"github.com/respite-app/respite-server/internal/config"
	"github.com/respite-app/respite-server/internal/logger"
	"github.com/respite-app/respite-server/internal/model"
	repo "github.com/respite-app/respite-server/internal/repository/mongo"
	"github.com/respite-app/respite-server/internal/server"
	"github.com/respite-app/respite-server/internal/service"
	storage "github.com/respite-app/respite-server/internal/storage/minio"
	"github.com/respite-app/respite-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	// Best-effort; absence of a .env file is the normal case in production.
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := repo.NewConnection(ctx, cfg.Database.URI, cfg.Database.Name)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			logger.Error("failed to close database connection", "error", err)
		}
	}()

	userRepo := repo.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("failed to create indexes", "error", err)
	}
	supplyRepo := repo.NewSupplyRepository(db)
	donationRepo := repo.NewDonationRepository(db)
	postRepo := repo.NewPostRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	ctxMgr := httpctx.NewManager()

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

	authService := service.NewAuth(userRepo, tokenManager, logger)
	userService := service.NewUser(userRepo, storageClient, logger)
	supplyService := service.NewSupply(supplyRepo, logger)
	donationService := service.NewDonation(donationRepo, logger)
	postService := service.NewPost(postRepo, logger)

	r := router.New(authService, userService, supplyService, donationService, postService, tokenManager, ctxMgr, logger, cfg.ExposeErrors)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
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
