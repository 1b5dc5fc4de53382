package api

import "Hearth/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AuthHandler       *handler.AuthHandler
	CategoryHandler   *handler.CategoryHandler
	ProfileHandler    *handler.ProfileHandler
	PostHandler       *handler.PostHandler
	CommentHandler    *handler.CommentHandler
	SubcommentHandler *handler.SubcommentHandler
}
