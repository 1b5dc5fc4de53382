package repository

import (
	"Hearth/internal/model"
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hashed string) error
}

type UserRepoImpl struct {
	coll *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepo {
	return &UserRepoImpl{coll: db.Collection("users")}
}

func (r *UserRepoImpl) GetUserById(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	user := &model.User{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "查询用户失败")
	}
	return user, nil
}

func (r *UserRepoImpl) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "查询用户失败")
	}
	return user, nil
}

func (r *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "查询用户失败")
	}
	return user, nil
}

func (r *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	user.CreatedAt = time.Now()
	result, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return errors.Wrap(err, "创建用户失败")
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *UserRepoImpl) UpdatePassword(ctx context.Context, id primitive.ObjectID, hashed string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"password": hashed}},
	)
	if err != nil {
		return errors.Wrap(err, "更新密码失败")
	}
	return nil
}
