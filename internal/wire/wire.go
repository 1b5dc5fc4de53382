package wire

import (
	"Hearth/internal/api"
	"Hearth/internal/api/config"
	"Hearth/internal/api/handler"
	"Hearth/internal/pkg/minio"
	"Hearth/internal/pkg/redis"
	"Hearth/internal/pkg/security"
	"Hearth/internal/repository"
	"Hearth/internal/service"

	"github.com/gin-gonic/gin"
	rdb "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
}

func BuildApplication(db *mongo.Database, redisClient *rdb.Client, storage *minio.Storage, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewRefreshTokenRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	profileRepo := repository.NewProfileRepo(db)
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	subcommentRepo := repository.NewSubcommentRepo(db)

	tokens := security.NewTokenManager(cfg.JWT)
	cache := redis.NewCache(redisClient)
	gate := service.NewModerationGate(categoryRepo)

	authService := service.NewAuthService(userRepo, tokenRepo, tokens)
	categoryService := service.NewCategoryService(categoryRepo, profileRepo, postRepo, gate, cache)
	profileService := service.NewProfileService(profileRepo, categoryRepo, gate, storage)
	postService := service.NewPostService(postRepo, commentRepo, subcommentRepo, profileRepo, categoryRepo, userRepo, gate, storage)
	commentService := service.NewCommentService(commentRepo, subcommentRepo, postRepo, profileRepo, gate)
	subcommentService := service.NewSubcommentService(subcommentRepo, commentRepo, profileRepo, gate)

	handlers := &api.HandlersGroup{
		AuthHandler:       handler.NewAuthHandler(authService),
		CategoryHandler:   handler.NewCategoryHandler(categoryService),
		ProfileHandler:    handler.NewProfileHandler(profileService),
		PostHandler:       handler.NewPostHandler(postService),
		CommentHandler:    handler.NewCommentHandler(commentService),
		SubcommentHandler: handler.NewSubcommentHandler(subcommentService),
	}

	router := api.SetupRouter(handlers, tokens)

	return &ApplicationContainer{Router: router}, nil
}
