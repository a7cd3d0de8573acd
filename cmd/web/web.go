package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/chirper-app/chirper-be/app"
	"github.com/chirper-app/chirper-be/config"
	"github.com/chirper-app/chirper-be/db/mysql"
	"github.com/chirper-app/chirper-be/ratelimiter"
	"github.com/chirper-app/chirper-be/routes"
	"github.com/chirper-app/chirper-be/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("error loading config from environment", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("error initializing logger", err)
	}
	defer logger.Sync()

	db, err := mysql.GetDatabase(&mysql.Config{
		User: cfg.DBUser,
		Pass: cfg.DBPass,
		Host: cfg.DBHost,
		Name: cfg.DBName,
	})
	if err != nil {
		logger.Fatal("error connecting to DB", zap.Error(err))
	}
	defer db.Close()

	if err := configureFirebaseCredentials(); err != nil {
		logger.Fatal("error configuring firebase credentials", zap.Error(err))
	}
	fbApp, err := firebase.NewApp(context.Background(), nil)
	if err != nil {
		logger.Fatal("error initializing firebase", zap.Error(err))
	}
	authClient, err := fbApp.Auth(context.Background())
	if err != nil {
		logger.Fatal("error initializing auth client", zap.Error(err))
	}

	directory := services.NewFirebaseDirectory(authClient, cfg.AccountDomain)
	limiter := ratelimiter.NewSlidingWindow(cfg.RateLimitPerWindow, cfg.RateLimitWindow)
	feedService := app.NewFeedService(db, directory, logger, cfg.FeedPageSize)
	postService := app.NewPostService(db, limiter, logger)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.FeOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	routes.AddHealthCheckRoutes(&r.RouterGroup)
	routes.AddPostRoutes(&r.RouterGroup, feedService, postService, authClient)
	routes.AddProfileRoutes(&r.RouterGroup, directory, feedService, logger)

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("error running web server", zap.Error(err))
	}
}

const (
	CredentialsPathEnvVar = "GOOGLE_APPLICATION_CREDENTIALS"
	CredentialsJsonEnvVar = "GOOGLE_APPLICATION_CREDENTIALS_JSON"
	TargetCredentialsFile = "./google-application-credentials.json"
)

func configureFirebaseCredentials() error {
	credentialsPath, hasCredentialsPath := os.LookupEnv(CredentialsPathEnvVar)
	if hasCredentialsPath {
		log.Printf("Credentials path detected in env. Expecting credentials to be at %v\n", credentialsPath)
		return nil
	}
	credentialsJson, hasCredentialsJson := os.LookupEnv(CredentialsJsonEnvVar)
	if hasCredentialsJson {
		log.Println("Credentials JSON string detected in env.")
		if err := os.WriteFile(TargetCredentialsFile, []byte(credentialsJson), 0400); err != nil {
			return fmt.Errorf("error writing credentials to temp file, %w", err)
		}
		if err := os.Setenv(CredentialsPathEnvVar, TargetCredentialsFile); err != nil {
			return fmt.Errorf("error setting %v env var %w", CredentialsPathEnvVar, err)
		}
		return nil
	}
	return fmt.Errorf("must specify either %v (a path)"+
		" or %v (credentials as JSON string)", CredentialsPathEnvVar, CredentialsJsonEnvVar)
}
