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

type SubcommentRepo interface {
	GetById(ctx context.Context, id primitive.ObjectID) (*model.Subcomment, error)
	ListByComment(ctx context.Context, commentID primitive.ObjectID, last *time.Time, limit int64) ([]*model.Subcomment, error)
	Create(ctx context.Context, subcomment *model.Subcomment) error
	UpdateText(ctx context.Context, id primitive.ObjectID, text string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteManyByComment(ctx context.Context, commentID primitive.ObjectID) error
	DeleteManyByPost(ctx context.Context, postID primitive.ObjectID) error
	Block(ctx context.Context, id primitive.ObjectID, placeholder string) error
}

type SubcommentRepoImpl struct {
	coll *mongo.Collection
}

func NewSubcommentRepo(db *mongo.Database) SubcommentRepo {
	return &SubcommentRepoImpl{coll: db.Collection("subcomments")}
}

func (r *SubcommentRepoImpl) GetById(ctx context.Context, id primitive.ObjectID) (*model.Subcomment, error) {
	subcomment := &model.Subcomment{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(subcomment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "查询回复失败")
	}
	return subcomment, nil
}

func (r *SubcommentRepoImpl) ListByComment(ctx context.Context, commentID primitive.ObjectID, last *time.Time, limit int64) ([]*model.Subcomment, error) {
	cursor, err := r.coll.Find(ctx, cursorFilter(bson.M{"commentId": commentID}, last), cursorOptions(limit))
	if err != nil {
		return nil, errors.Wrap(err, "查询回复列表失败")
	}
	defer cursor.Close(ctx)

	subcomments := make([]*model.Subcomment, 0)
	if err = cursor.All(ctx, &subcomments); err != nil {
		return nil, errors.Wrap(err, "解析回复列表失败")
	}
	return subcomments, nil
}

func (r *SubcommentRepoImpl) Create(ctx context.Context, subcomment *model.Subcomment) error {
	subcomment.CreatedAt = time.Now()
	result, err := r.coll.InsertOne(ctx, subcomment)
	if err != nil {
		return errors.Wrap(err, "创建回复失败")
	}
	subcomment.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *SubcommentRepoImpl) UpdateText(ctx context.Context, id primitive.ObjectID, text string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"text": text}},
	)
	if err != nil {
		return errors.Wrap(err, "更新回复失败")
	}
	return nil
}

func (r *SubcommentRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "删除回复失败")
	}
	return nil
}

func (r *SubcommentRepoImpl) DeleteManyByComment(ctx context.Context, commentID primitive.ObjectID) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"commentId": commentID})
	if err != nil {
		return errors.Wrap(err, "删除评论下回复失败")
	}
	return nil
}

// DeleteManyByPost 帖子级联删除先清回复再清评论
func (r *SubcommentRepoImpl) DeleteManyByPost(ctx context.Context, postID primitive.ObjectID) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"postId": postID})
	if err != nil {
		return errors.Wrap(err, "删除帖子下回复失败")
	}
	return nil
}

func (r *SubcommentRepoImpl) Block(ctx context.Context, id primitive.ObjectID, placeholder string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"text": placeholder, "blocked": true}},
	)
	if err != nil {
		return errors.Wrap(err, "屏蔽回复失败")
	}
	return nil
}
