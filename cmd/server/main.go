package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/lydiaandcrim/wyshdrop-backend/api"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/comment"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/contact"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/hint"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/navigation"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/config"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/database"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/genai"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/health"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/mailer"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/shutdown"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/startup"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/preferences"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/product"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/quiz"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/user"
	"github.com/lydiaandcrim/wyshdrop-backend/internal/wishlist"
	"github.com/lydiaandcrim/wyshdrop-backend/pkg/lifecycle"
	"github.com/lydiaandcrim/wyshdrop-backend/pkg/logger"
	"github.com/lydiaandcrim/wyshdrop-backend/pkg/token"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("unable to load configuration: %v", err))
	}

	log := logger.New(cfg.Server.LogLevel)
	startup.SetLogger(log)
	database.SetStatusLogger(log)

	token.GenerateSecretKey()
	database.InitDB(cfg.Database)
	database.InitRedis(cfg.Database.Redis)

	health.InitializeRunID()

	if err := startup.InitializeApplication(); err != nil {
		panic(fmt.Sprintf("application initialization failed: %v", err))
	}

	log.Info("running post-startup health check")
	health.PerformCheck(log)

	gracefulMgr := lifecycle.NewManager()
	forcefulMgr := lifecycle.NewManager()

	checkerHandle, err := gracefulMgr.NewServiceHandle("redis-health-checker")
	if err != nil {
		panic(fmt.Sprintf("unable to create health checker handle: %v", err))
	}
	go health.StartRedisHealthCheck(checkerHandle, log)

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())

	origins := cfg.Server.Cors.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(router, buildHandlers(cfg, log))

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	go func() {
		log.WithField("address", cfg.Server.Address).Info("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic("server failed: " + err.Error())
		}
	}()

	coordinator := shutdown.NewCoordinator(gracefulMgr, forcefulMgr, log)
	coordinator.ListenForSignalsAndShutdown(server)
}

// buildHandlers wires every module's repository, service and handler.
func buildHandlers(cfg *config.Config, log *logrus.Logger) api.Handlers {
	db := database.DB

	mail := mailer.NewResendMailer(cfg.Mail)
	generator := genai.NewClient(cfg.Gemini)

	userRepo := user.NewRepository(db)
	userSvc := user.NewService(userRepo, mail, log,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		cfg.Mail.AppURL)
	authHandler := user.NewHandler(userSvc)

	productRepo := product.NewRepository(db)
	wishlistSvc := wishlist.NewService(db, productRepo)
	contactSvc := contact.NewService(db)
	commentSvc := comment.NewService(db)
	hintSvc := hint.NewService(db, productRepo, contactSvc, mail, log)
	quizSvc := quiz.NewService(db, userRepo, generator, log)
	prefsSvc := preferences.NewService(userRepo, log)
	navSvc := navigation.NewService(userRepo, contactSvc, prefsSvc, log)

	// Closing the quiz overlay flushes and discards the open flow.
	navSvc.RegisterResetHook(navigation.OverlayQuiz, quizSvc.Close)

	// Sign-out drops the session's controller and any open quiz flow.
	authHandler.OnSignOut = func(sessionID string) {
		quizSvc.Close(sessionID)
		navSvc.Forget(sessionID)
	}

	return api.Handlers{
		Users:       userSvc,
		Auth:        authHandler,
		Products:    product.NewHandler(productRepo),
		Wishlist:    wishlist.NewHandler(wishlistSvc),
		Contacts:    contact.NewHandler(contactSvc),
		Comments:    comment.NewHandler(commentSvc),
		Hints:       hint.NewHandler(hintSvc),
		Quiz:        quiz.NewHandler(quizSvc),
		UI:          navigation.NewHandler(navSvc, prefsSvc),
		Preferences: preferences.NewHandler(prefsSvc),
	}
}
