package dto

import "go.mongodb.org/mongo-driver/bson/primitive"

// CreateCategoryDTO 创建板块
type CreateCategoryDTO struct {
	Title string `json:"title" binding:"required,min=1,max=30"`
}

// CategoryDTO 板块
type CategoryDTO struct {
	ID    primitive.ObjectID `json:"id"`
	User  primitive.ObjectID `json:"user"`
	Title string             `json:"title"`
}
