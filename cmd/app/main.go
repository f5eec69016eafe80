package main

import (
	"os"

	authadapter "orgboard/internal/adapters/auth"
	dbadapter "orgboard/internal/adapters/database"
	"orgboard/internal/adapters/httpapi"
	redisadapter "orgboard/internal/adapters/redis"
	"orgboard/internal/config"
	"orgboard/internal/core/group"
	groupapp "orgboard/internal/core/group/service"
	"orgboard/internal/core/post"
	postapp "orgboard/internal/core/post/service"
	"orgboard/internal/core/user"
	userapp "orgboard/internal/core/user/service"
	authPort "orgboard/internal/ports/auth"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()
	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.User{},
		&post.Post{},
		&group.Group{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("Database migrations completed")

	config.InitRedis()
	defer closeResources(config.Logger)

	userRepo := dbadapter.NewUserRepositoryDatabase(config.DB)
	postRepo := dbadapter.NewPostRepositoryDatabase(config.DB)
	groupRepo := dbadapter.NewGroupRepositoryDatabase(config.DB)
	txManager := dbadapter.NewTxManagerGorm(config.DB)
	denylist := redisadapter.NewTokenDenylistRedis(config.RedisClient)

	jwtKey := []byte(os.Getenv("JWT_SECRET"))

	// The validator is an external oracle to the services; which
	// implementation backs it is a deployment decision.
	var validator authPort.TokenValidator
	if introspectURL := os.Getenv("AUTH_INTROSPECT_URL"); introspectURL != "" {
		validator = authadapter.NewIntrospectValidator(introspectURL)
		config.Logger.Info("Using remote token introspection", zap.String("url", introspectURL))
	} else {
		validator = authadapter.NewJWTValidator(jwtKey, denylist)
		config.Logger.Info("Using local JWT validation")
	}

	userSvc := userapp.NewUserService(userRepo, denylist, jwtKey)
	postSvc := postapp.NewPostService(postRepo, userRepo, validator, txManager)
	groupSvc := groupapp.NewGroupService(groupRepo, validator)

	r := httpapi.SetupRoutes(userSvc, postSvc, groupSvc)

	config.Logger.Info("App is running...")
	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
