package repository

import (
	"Hearth/internal/model"
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryRepo interface {
	GetAll(ctx context.Context) ([]*model.Category, error)
	GetById(ctx context.Context, id primitive.ObjectID) (*model.Category, error)
	GetByTitle(ctx context.Context, title string) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CategoryRepoImpl struct {
	coll *mongo.Collection
}

func NewCategoryRepo(db *mongo.Database) CategoryRepo {
	return &CategoryRepoImpl{coll: db.Collection("categories")}
}

func (r *CategoryRepoImpl) GetAll(ctx context.Context) ([]*model.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "查询板块列表失败")
	}
	defer cursor.Close(ctx)

	categories := make([]*model.Category, 0)
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, errors.Wrap(err, "解析板块列表失败")
	}
	return categories, nil
}

func (r *CategoryRepoImpl) GetById(ctx context.Context, id primitive.ObjectID) (*model.Category, error) {
	category := &model.Category{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "查询板块失败")
	}
	return category, nil
}

func (r *CategoryRepoImpl) GetByTitle(ctx context.Context, title string) (*model.Category, error) {
	category := &model.Category{}
	err := r.coll.FindOne(ctx, bson.M{"title": title}).Decode(category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "查询板块失败")
	}
	return category, nil
}

func (r *CategoryRepoImpl) Create(ctx context.Context, category *model.Category) error {
	category.CreatedAt = time.Now()
	result, err := r.coll.InsertOne(ctx, category)
	if err != nil {
		return errors.Wrap(err, "创建板块失败")
	}
	category.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *CategoryRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "删除板块失败")
	}
	return nil
}
