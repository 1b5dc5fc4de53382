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

type PostRepo interface {
	GetById(ctx context.Context, id primitive.ObjectID) (*model.Post, error)
	List(ctx context.Context, last *time.Time, limit int64) ([]*model.Post, error)
	ListByCategory(ctx context.Context, categoryID primitive.ObjectID, last *time.Time, limit int64) ([]*model.Post, error)
	ListByProfile(ctx context.Context, profileID primitive.ObjectID, last *time.Time, limit int64) ([]*model.Post, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID, last *time.Time, limit int64) ([]*model.Post, error)
	CountByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error)
	Create(ctx context.Context, post *model.Post) error
	UpdateContent(ctx context.Context, id primitive.ObjectID, text string, images []model.Image) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Block(ctx context.Context, id primitive.ObjectID, placeholder string) error

	AddLike(ctx context.Context, id, userID primitive.ObjectID) error
	RemoveLike(ctx context.Context, id, userID primitive.ObjectID) error
	SwitchToLike(ctx context.Context, id, userID primitive.ObjectID) error
	AddDislike(ctx context.Context, id, userID primitive.ObjectID) error
	RemoveDislike(ctx context.Context, id, userID primitive.ObjectID) error
	SwitchToDislike(ctx context.Context, id, userID primitive.ObjectID) error

	PushComment(ctx context.Context, postID, commentID primitive.ObjectID) error
	PullComment(ctx context.Context, postID, commentID primitive.ObjectID) error
}

type PostRepoImpl struct {
	coll *mongo.Collection
}

func NewPostRepo(db *mongo.Database) PostRepo {
	return &PostRepoImpl{coll: db.Collection("posts")}
}

func (r *PostRepoImpl) GetById(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	post := &model.Post{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "查询帖子失败")
	}
	return post, nil
}

func (r *PostRepoImpl) list(ctx context.Context, base bson.M, last *time.Time, limit int64) ([]*model.Post, error) {
	cursor, err := r.coll.Find(ctx, cursorFilter(base, last), cursorOptions(limit))
	if err != nil {
		return nil, errors.Wrap(err, "查询帖子列表失败")
	}
	defer cursor.Close(ctx)

	posts := make([]*model.Post, 0)
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, errors.Wrap(err, "解析帖子列表失败")
	}
	return posts, nil
}

func (r *PostRepoImpl) List(ctx context.Context, last *time.Time, limit int64) ([]*model.Post, error) {
	return r.list(ctx, bson.M{}, last, limit)
}

func (r *PostRepoImpl) ListByCategory(ctx context.Context, categoryID primitive.ObjectID, last *time.Time, limit int64) ([]*model.Post, error) {
	return r.list(ctx, bson.M{"category": categoryID}, last, limit)
}

func (r *PostRepoImpl) ListByProfile(ctx context.Context, profileID primitive.ObjectID, last *time.Time, limit int64) ([]*model.Post, error) {
	return r.list(ctx, bson.M{"profile": profileID}, last, limit)
}

func (r *PostRepoImpl) ListByUser(ctx context.Context, userID primitive.ObjectID, last *time.Time, limit int64) ([]*model.Post, error) {
	return r.list(ctx, bson.M{"user": userID}, last, limit)
}

func (r *PostRepoImpl) CountByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"category": categoryID})
	if err != nil {
		return 0, errors.Wrap(err, "统计板块帖子数失败")
	}
	return count, nil
}

func (r *PostRepoImpl) Create(ctx context.Context, post *model.Post) error {
	post.CreatedAt = time.Now()
	if post.PostImages == nil {
		post.PostImages = make([]model.Image, 0)
	}
	post.LikeUsers = make([]primitive.ObjectID, 0)
	post.DislikeUsers = make([]primitive.ObjectID, 0)
	post.Comments = make([]primitive.ObjectID, 0)

	result, err := r.coll.InsertOne(ctx, post)
	if err != nil {
		return errors.Wrap(err, "创建帖子失败")
	}
	post.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateContent 由调用方算好最终图片列表后整体覆盖
func (r *PostRepoImpl) UpdateContent(ctx context.Context, id primitive.ObjectID, text string, images []model.Image) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"text": text, "postImages": images}},
	)
	if err != nil {
		return errors.Wrap(err, "更新帖子失败")
	}
	return nil
}

func (r *PostRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "删除帖子失败")
	}
	return nil
}

// Block 正文替换为占位文案并清空图片
func (r *PostRepoImpl) Block(ctx context.Context, id primitive.ObjectID, placeholder string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"text":       placeholder,
			"postImages": make([]model.Image, 0),
			"blocked":    true,
		}},
	)
	if err != nil {
		return errors.Wrap(err, "屏蔽帖子失败")
	}
	return nil
}

// 点赞点踩的每一种状态迁移都是单条原子更新，
// 计数与成员列表永远在同一条命令里变更

func (r *PostRepoImpl) react(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return errors.Wrap(err, "更新帖子点赞状态失败")
	}
	return nil
}

func (r *PostRepoImpl) AddLike(ctx context.Context, id, userID primitive.ObjectID) error {
	return r.react(ctx, id, bson.M{
		"$inc":      bson.M{"likes": 1},
		"$addToSet": bson.M{"likeUsers": userID},
	})
}

func (r *PostRepoImpl) RemoveLike(ctx context.Context, id, userID primitive.ObjectID) error {
	return r.react(ctx, id, bson.M{
		"$inc":  bson.M{"likes": -1},
		"$pull": bson.M{"likeUsers": userID},
	})
}

func (r *PostRepoImpl) SwitchToLike(ctx context.Context, id, userID primitive.ObjectID) error {
	return r.react(ctx, id, bson.M{
		"$inc":      bson.M{"likes": 1, "dislikes": -1},
		"$pull":     bson.M{"dislikeUsers": userID},
		"$addToSet": bson.M{"likeUsers": userID},
	})
}

func (r *PostRepoImpl) AddDislike(ctx context.Context, id, userID primitive.ObjectID) error {
	return r.react(ctx, id, bson.M{
		"$inc":      bson.M{"dislikes": 1},
		"$addToSet": bson.M{"dislikeUsers": userID},
	})
}

func (r *PostRepoImpl) RemoveDislike(ctx context.Context, id, userID primitive.ObjectID) error {
	return r.react(ctx, id, bson.M{
		"$inc":  bson.M{"dislikes": -1},
		"$pull": bson.M{"dislikeUsers": userID},
	})
}

func (r *PostRepoImpl) SwitchToDislike(ctx context.Context, id, userID primitive.ObjectID) error {
	return r.react(ctx, id, bson.M{
		"$inc":      bson.M{"dislikes": 1, "likes": -1},
		"$pull":     bson.M{"likeUsers": userID},
		"$addToSet": bson.M{"dislikeUsers": userID},
	})
}

// PushComment 新评论 id 插到开头，列表截断为最新若干条，计数同命令自增
func (r *PostRepoImpl) PushComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{
			"$push": bson.M{"comments": bson.M{
				"$each":     []primitive.ObjectID{commentID},
				"$position": 0,
				"$slice":    model.CommentPreviewSize,
			}},
			"$inc": bson.M{"commentsCount": 1},
		},
	)
	if err != nil {
		return errors.Wrap(err, "帖子挂载评论失败")
	}
	return nil
}

func (r *PostRepoImpl) PullComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{
			"$pull": bson.M{"comments": commentID},
			"$inc":  bson.M{"commentsCount": -1},
		},
	)
	if err != nil {
		return errors.Wrap(err, "帖子摘除评论失败")
	}
	return nil
}
