package repository

import (
	"Hearth/internal/model"
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type RefreshTokenRepo interface {
	Save(ctx context.Context, token string) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}

type RefreshTokenRepoImpl struct {
	coll *mongo.Collection
}

func NewRefreshTokenRepo(db *mongo.Database) RefreshTokenRepo {
	return &RefreshTokenRepoImpl{coll: db.Collection("refresh_tokens")}
}

func (r *RefreshTokenRepoImpl) Save(ctx context.Context, token string) error {
	_, err := r.coll.InsertOne(ctx, &model.RefreshToken{
		Token:     token,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return errors.Wrap(err, "保存 refresh token 失败")
	}
	return nil
}

func (r *RefreshTokenRepoImpl) Exists(ctx context.Context, token string) (bool, error) {
	err := r.coll.FindOne(ctx, bson.M{"refreshToken": token}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, errors.Wrap(err, "查询 refresh token 失败")
	}
	return true, nil
}

func (r *RefreshTokenRepoImpl) Delete(ctx context.Context, token string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"refreshToken": token})
	if err != nil {
		return errors.Wrap(err, "删除 refresh token 失败")
	}
	return nil
}
