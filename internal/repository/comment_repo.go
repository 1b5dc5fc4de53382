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

type CommentRepo interface {
	GetById(ctx context.Context, id primitive.ObjectID) (*model.Comment, error)
	ListByPost(ctx context.Context, postID primitive.ObjectID, last *time.Time, limit int64) ([]*model.Comment, error)
	Create(ctx context.Context, comment *model.Comment) error
	UpdateText(ctx context.Context, id primitive.ObjectID, text string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteManyByPost(ctx context.Context, postID primitive.ObjectID) error
	Block(ctx context.Context, id primitive.ObjectID, placeholder string) error

	PushSubcomment(ctx context.Context, commentID, subcommentID primitive.ObjectID) error
	PullSubcomment(ctx context.Context, commentID, subcommentID primitive.ObjectID) error
}

type CommentRepoImpl struct {
	coll *mongo.Collection
}

func NewCommentRepo(db *mongo.Database) CommentRepo {
	return &CommentRepoImpl{coll: db.Collection("comments")}
}

func (r *CommentRepoImpl) GetById(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	comment := &model.Comment{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "查询评论失败")
	}
	return comment, nil
}

func (r *CommentRepoImpl) ListByPost(ctx context.Context, postID primitive.ObjectID, last *time.Time, limit int64) ([]*model.Comment, error) {
	cursor, err := r.coll.Find(ctx, cursorFilter(bson.M{"postId": postID}, last), cursorOptions(limit))
	if err != nil {
		return nil, errors.Wrap(err, "查询评论列表失败")
	}
	defer cursor.Close(ctx)

	comments := make([]*model.Comment, 0)
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, errors.Wrap(err, "解析评论列表失败")
	}
	return comments, nil
}

func (r *CommentRepoImpl) Create(ctx context.Context, comment *model.Comment) error {
	comment.CreatedAt = time.Now()
	comment.Subcomments = make([]primitive.ObjectID, 0)

	result, err := r.coll.InsertOne(ctx, comment)
	if err != nil {
		return errors.Wrap(err, "创建评论失败")
	}
	comment.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *CommentRepoImpl) UpdateText(ctx context.Context, id primitive.ObjectID, text string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"text": text}},
	)
	if err != nil {
		return errors.Wrap(err, "更新评论失败")
	}
	return nil
}

func (r *CommentRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "删除评论失败")
	}
	return nil
}

// DeleteManyByPost 帖子级联删除用，可安全重放
func (r *CommentRepoImpl) DeleteManyByPost(ctx context.Context, postID primitive.ObjectID) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"postId": postID})
	if err != nil {
		return errors.Wrap(err, "删除帖子下评论失败")
	}
	return nil
}

func (r *CommentRepoImpl) Block(ctx context.Context, id primitive.ObjectID, placeholder string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"text": placeholder, "blocked": true}},
	)
	if err != nil {
		return errors.Wrap(err, "屏蔽评论失败")
	}
	return nil
}

// PushSubcomment 预览列表只保留最新一条，计数同命令自增
func (r *CommentRepoImpl) PushSubcomment(ctx context.Context, commentID, subcommentID primitive.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": commentID},
		bson.M{
			"$push": bson.M{"subcomments": bson.M{
				"$each":     []primitive.ObjectID{subcommentID},
				"$position": 0,
				"$slice":    model.SubcommentPreviewSize,
			}},
			"$inc": bson.M{"subcommentsCount": 1},
		},
	)
	if err != nil {
		return errors.Wrap(err, "评论挂载回复失败")
	}
	return nil
}

func (r *CommentRepoImpl) PullSubcomment(ctx context.Context, commentID, subcommentID primitive.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": commentID},
		bson.M{
			"$pull": bson.M{"subcomments": subcommentID},
			"$inc":  bson.M{"subcommentsCount": -1},
		},
	)
	if err != nil {
		return errors.Wrap(err, "评论摘除回复失败")
	}
	return nil
}
