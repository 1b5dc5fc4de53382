package service

import (
	"Hearth/internal/repository"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ModerationGate 统一的权限判定
// 每个写操作有且只有一个判定入口，判定失败返回错误而不是静默忽略
type ModerationGate struct {
	categoryRepo repository.CategoryRepo
}

func NewModerationGate(categoryRepo repository.CategoryRepo) *ModerationGate {
	return &ModerationGate{categoryRepo: categoryRepo}
}

// CanModerate 请求者是否为该板块的版主（创建者）
func (g *ModerationGate) CanModerate(ctx context.Context, categoryID, userID primitive.ObjectID) error {
	category, err := g.categoryRepo.GetById(ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	if category.User != userID {
		return ErrUnauthorized
	}
	return nil
}

// CanEditOwn 请求者是否为内容作者
func (g *ModerationGate) CanEditOwn(owner, userID primitive.ObjectID) error {
	if owner != userID {
		return ErrUnauthorized
	}
	return nil
}
