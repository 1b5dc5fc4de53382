package dto

import "go.mongodb.org/mongo-driver/bson/primitive"

// CreateProfileDTO 创建身份，multipart 表单，头像文件字段为 profileImage
type CreateProfileDTO struct {
	Category string `form:"category" binding:"required"`
	Nickname string `form:"nickname" binding:"required,min=1,max=20"`
}

// UpdateProfileDTO 修改身份
type UpdateProfileDTO struct {
	Nickname string `form:"nickname" binding:"required,min=1,max=20"`
}

// ProfileDTO 身份
type ProfileDTO struct {
	ID           primitive.ObjectID `json:"id"`
	User         primitive.ObjectID `json:"user"`
	Category     primitive.ObjectID `json:"category"`
	Nickname     string             `json:"nickname"`
	ProfileImage ImageDTO           `json:"profileImage"`
}
