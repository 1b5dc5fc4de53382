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

type ProfileRepo interface {
	GetById(ctx context.Context, id primitive.ObjectID) (*model.Profile, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.Profile, error)
	GetByUnique(ctx context.Context, userID, categoryID primitive.ObjectID, nickname string) (*model.Profile, error)
	GetByIds(ctx context.Context, ids []primitive.ObjectID) ([]*model.Profile, error)
	CountByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error)
	Create(ctx context.Context, profile *model.Profile) error
	Update(ctx context.Context, id primitive.ObjectID, nickname string, image *model.Image) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProfileRepoImpl struct {
	coll *mongo.Collection
}

func NewProfileRepo(db *mongo.Database) ProfileRepo {
	return &ProfileRepoImpl{coll: db.Collection("profiles")}
}

func (r *ProfileRepoImpl) GetById(ctx context.Context, id primitive.ObjectID) (*model.Profile, error) {
	profile := &model.Profile{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "查询身份失败")
	}
	return profile, nil
}

func (r *ProfileRepoImpl) GetByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.Profile, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, errors.Wrap(err, "查询身份列表失败")
	}
	defer cursor.Close(ctx)

	profiles := make([]*model.Profile, 0)
	if err = cursor.All(ctx, &profiles); err != nil {
		return nil, errors.Wrap(err, "解析身份列表失败")
	}
	return profiles, nil
}

func (r *ProfileRepoImpl) GetByUnique(ctx context.Context, userID, categoryID primitive.ObjectID, nickname string) (*model.Profile, error) {
	profile := &model.Profile{}
	err := r.coll.FindOne(ctx, bson.M{
		"user":     userID,
		"category": categoryID,
		"nickname": nickname,
	}).Decode(profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "查询身份失败")
	}
	return profile, nil
}

func (r *ProfileRepoImpl) GetByIds(ctx context.Context, ids []primitive.ObjectID) ([]*model.Profile, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, errors.Wrap(err, "查询身份列表失败")
	}
	defer cursor.Close(ctx)

	profiles := make([]*model.Profile, 0)
	if err = cursor.All(ctx, &profiles); err != nil {
		return nil, errors.Wrap(err, "解析身份列表失败")
	}
	return profiles, nil
}

func (r *ProfileRepoImpl) CountByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"category": categoryID})
	if err != nil {
		return 0, errors.Wrap(err, "统计板块身份数失败")
	}
	return count, nil
}

func (r *ProfileRepoImpl) Create(ctx context.Context, profile *model.Profile) error {
	profile.CreatedAt = time.Now()
	result, err := r.coll.InsertOne(ctx, profile)
	if err != nil {
		return errors.Wrap(err, "创建身份失败")
	}
	profile.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Update image 为 nil 时只改昵称
func (r *ProfileRepoImpl) Update(ctx context.Context, id primitive.ObjectID, nickname string, image *model.Image) error {
	set := bson.M{"nickname": nickname}
	if image != nil {
		set["profileImage"] = image
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return errors.Wrap(err, "更新身份失败")
	}
	return nil
}

func (r *ProfileRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "删除身份失败")
	}
	return nil
}
