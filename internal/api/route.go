package api

import (
	"Hearth/internal/api/middleware"
	"Hearth/internal/pkg/logger"
	"Hearth/internal/pkg/security"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, tokens *security.TokenManager) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	auth := middleware.AuthMiddleware(tokens)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/signup", group.AuthHandler.SignUp)
			authGroup.POST("/signin", group.AuthHandler.SignIn)
			authGroup.POST("/refresh", group.AuthHandler.Refresh)
			authGroup.POST("/account/check", group.AuthHandler.CheckAccount)
			authGroup.PUT("/password", group.AuthHandler.ResetPassword)
			authGroup.POST("/signout", auth, group.AuthHandler.SignOut)
		}

		categoryGroup := apiGroup.Group("/categories")
		{
			categoryGroup.GET("", group.CategoryHandler.List)
			categoryGroup.GET("/:title", group.CategoryHandler.GetByTitle)
			categoryGroup.POST("", auth, group.CategoryHandler.Create)
			categoryGroup.DELETE("/:id", auth, group.CategoryHandler.Delete)
		}

		profileGroup := apiGroup.Group("/profiles")
		{
			profileGroup.GET("", auth, group.ProfileHandler.ListOwn)
			profileGroup.GET("/:id", group.ProfileHandler.GetById)
			profileGroup.POST("", auth, group.ProfileHandler.Create)
			profileGroup.PUT("/:id", auth, group.ProfileHandler.Update)
			profileGroup.DELETE("/:id", auth, group.ProfileHandler.Delete)
		}

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("", group.PostHandler.List)
			postGroup.GET("/categories/:categoryId", group.PostHandler.ListByCategory)
			postGroup.GET("/categories/title/:title", group.PostHandler.ListByCategoryTitle)
			postGroup.GET("/profiles/:profileId", group.PostHandler.ListByProfile)
			postGroup.GET("/users/:username", group.PostHandler.ListByUsername)
			postGroup.POST("", auth, group.PostHandler.Create)
			postGroup.PUT("/:id", auth, group.PostHandler.Update)
			postGroup.DELETE("/:id", auth, group.PostHandler.Delete)
			postGroup.POST("/:id/block", auth, group.PostHandler.Block)
			postGroup.POST("/:id/like", auth, group.PostHandler.Like)
			postGroup.POST("/:id/dislike", auth, group.PostHandler.Dislike)
		}

		commentGroup := apiGroup.Group("/comments")
		{
			commentGroup.GET("/:postId/:lastDate", group.CommentHandler.ListByPost)
			commentGroup.POST("", auth, group.CommentHandler.Create)
			commentGroup.PUT("/:id", auth, group.CommentHandler.Update)
			commentGroup.DELETE("/:id", auth, group.CommentHandler.Delete)
			commentGroup.POST("/:id/block", auth, group.CommentHandler.Block)
		}

		subcommentGroup := apiGroup.Group("/subcomments")
		{
			subcommentGroup.GET("/:commentId/:lastDate", group.SubcommentHandler.ListByComment)
			subcommentGroup.POST("", auth, group.SubcommentHandler.Create)
			subcommentGroup.PUT("/:id", auth, group.SubcommentHandler.Update)
			subcommentGroup.DELETE("/:id", auth, group.SubcommentHandler.Delete)
			subcommentGroup.POST("/:id/block", auth, group.SubcommentHandler.Block)
		}
	}

	return r
}
