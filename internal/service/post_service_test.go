package service

import (
	"Hearth/internal/model"
	"Hearth/internal/pkg/consts"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type postFixture struct {
	svc         PostService
	posts       *fakePostRepo
	comments    *fakeCommentRepo
	subcomments *fakeSubcommentRepo
	profiles    *fakeProfileRepo
	categories  *fakeCategoryRepo
	users       *fakeUserRepo
	storage     *fakeStorage

	moderator  primitive.ObjectID
	author     primitive.ObjectID
	categoryID primitive.ObjectID
	profileID  primitive.ObjectID
}

func newPostFixture(t *testing.T) *postFixture {
	t.Helper()

	f := &postFixture{
		posts:       newFakePostRepo(),
		comments:    newFakeCommentRepo(),
		subcomments: newFakeSubcommentRepo(),
		profiles:    newFakeProfileRepo(),
		categories:  newFakeCategoryRepo(),
		users:       newFakeUserRepo(),
		storage:     &fakeStorage{},
		moderator:   primitive.NewObjectID(),
		author:      primitive.NewObjectID(),
	}

	category := &model.Category{User: f.moderator, Title: "general"}
	require.NoError(t, f.categories.Create(context.Background(), category))
	f.categoryID = category.ID

	profile := &model.Profile{User: f.author, Category: f.categoryID, Nickname: "writer"}
	require.NoError(t, f.profiles.Create(context.Background(), profile))
	f.profileID = profile.ID

	gate := NewModerationGate(f.categories)
	f.svc = NewPostService(f.posts, f.comments, f.subcomments, f.profiles, f.categories, f.users, gate, f.storage)
	return f
}

func (f *postFixture) seedPost(t *testing.T, createdAt time.Time, images ...model.Image) primitive.ObjectID {
	t.Helper()
	post := &model.Post{
		Category:   f.categoryID,
		Profile:    f.profileID,
		User:       f.author,
		Text:       "hello",
		PostImages: images,
		CreatedAt:  createdAt,
	}
	require.NoError(t, f.posts.Create(context.Background(), post))
	return post.ID
}

func TestReactionToggleScenario(t *testing.T) {
	f := newPostFixture(t)
	postID := f.seedPost(t, time.Now())
	reader := primitive.NewObjectID()
	ctx := context.Background()

	current := func() *model.Post {
		post, err := f.posts.GetById(ctx, postID)
		require.NoError(t, err)
		return post
	}

	require.NoError(t, f.svc.Like(ctx, postID, reader, ReactionCreate))
	post := current()
	assert.Equal(t, 1, post.Likes)
	assert.Equal(t, 0, post.Dislikes)
	assert.True(t, post.HasLiked(reader))

	// 重复点赞不翻转
	require.NoError(t, f.svc.Like(ctx, postID, reader, ReactionCreate))
	post = current()
	assert.Equal(t, 1, post.Likes)
	assert.True(t, post.HasLiked(reader))

	// 已点赞状态下点踩，迁移为点踩
	require.NoError(t, f.svc.Dislike(ctx, postID, reader, ReactionCreate))
	post = current()
	assert.Equal(t, 0, post.Likes)
	assert.Equal(t, 1, post.Dislikes)
	assert.False(t, post.HasLiked(reader))
	assert.True(t, post.HasDisliked(reader))

	// 取消点踩回到初始状态
	require.NoError(t, f.svc.Dislike(ctx, postID, reader, ReactionDelete))
	post = current()
	assert.Equal(t, 0, post.Likes)
	assert.Equal(t, 0, post.Dislikes)
	assert.False(t, post.HasLiked(reader))
	assert.False(t, post.HasDisliked(reader))

	// 未点赞时取消点赞是无操作
	require.NoError(t, f.svc.Like(ctx, postID, reader, ReactionDelete))
	post = current()
	assert.Equal(t, 0, post.Likes)
}

func TestReactionExclusive(t *testing.T) {
	f := newPostFixture(t)
	postID := f.seedPost(t, time.Now())
	reader := primitive.NewObjectID()
	ctx := context.Background()

	require.NoError(t, f.svc.Dislike(ctx, postID, reader, ReactionCreate))
	require.NoError(t, f.svc.Like(ctx, postID, reader, ReactionCreate))

	post, _ := f.posts.GetById(ctx, postID)
	assert.True(t, post.HasLiked(reader))
	assert.False(t, post.HasDisliked(reader))
	assert.Equal(t, 1, post.Likes)
	assert.Equal(t, 0, post.Dislikes)
}

func TestReactionUnknownPost(t *testing.T) {
	f := newPostFixture(t)
	err := f.svc.Like(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), ReactionCreate)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeletePostCascade(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()
	postID := f.seedPost(t, time.Now(),
		model.Image{URL: "u1", Key: "k1"},
		model.Image{URL: "u2", Key: "k2"},
	)

	comment := &model.Comment{ID: primitive.NewObjectID(), PostID: postID, Category: f.categoryID, Profile: f.profileID, User: f.author, Text: "c"}
	require.NoError(t, f.comments.Create(ctx, comment))
	sub := &model.Subcomment{ID: primitive.NewObjectID(), PostID: postID, CommentID: comment.ID, Category: f.categoryID, Profile: f.profileID, User: f.author, Text: "s"}
	require.NoError(t, f.subcomments.Create(ctx, sub))

	// 非作者删除被拒
	err := f.svc.Delete(ctx, postID, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, f.svc.Delete(ctx, postID, f.author))

	post, _ := f.posts.GetById(ctx, postID)
	assert.Nil(t, post)
	got, _ := f.comments.GetById(ctx, comment.ID)
	assert.Nil(t, got)
	gotSub, _ := f.subcomments.GetById(ctx, sub.ID)
	assert.Nil(t, gotSub)
	assert.ElementsMatch(t, []string{"k1", "k2"}, f.storage.deleted)
}

func TestBlockPost(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()
	postID := f.seedPost(t, time.Now(), model.Image{URL: "u1", Key: "k1"})

	// 不是板块版主，即使是作者也不能屏蔽
	err := f.svc.Block(ctx, postID, f.author)
	assert.ErrorIs(t, err, ErrUnauthorized)

	require.NoError(t, f.svc.Block(ctx, postID, f.moderator))

	post, _ := f.posts.GetById(ctx, postID)
	assert.True(t, post.Blocked)
	assert.Equal(t, consts.BlockedPostText, post.Text)
	assert.Empty(t, post.PostImages)
	assert.Contains(t, f.storage.deleted, "k1")
}

func TestPostPaginationWalk(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	total := 14
	for i := 0; i < total; i++ {
		f.seedPost(t, base.Add(time.Duration(i)*time.Minute))
	}

	seen := map[primitive.ObjectID]struct{}{}
	var last *time.Time
	pages := 0
	for {
		posts, err := f.svc.List(ctx, last)
		require.NoError(t, err)
		if len(posts) == 0 {
			break
		}
		pages++
		require.LessOrEqual(t, len(posts), consts.PostPageSize)
		for i, post := range posts {
			if i > 0 {
				assert.True(t, posts[i-1].CreatedAt.After(post.CreatedAt))
			}
			_, dup := seen[post.ID]
			require.False(t, dup, "page walk returned a duplicate")
			seen[post.ID] = struct{}{}
		}
		cursor := posts[len(posts)-1].CreatedAt
		last = &cursor
	}

	assert.Equal(t, total, len(seen))
	assert.Equal(t, 3, pages)
}

func TestUpdatePostImages(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()
	postID := f.seedPost(t, time.Now(),
		model.Image{URL: "u1", Key: "k1"},
		model.Image{URL: "u2", Key: "k2"},
	)

	_, err := f.svc.Update(ctx, postID, primitive.NewObjectID(), "edited", nil, nil)
	assert.ErrorIs(t, err, ErrUnauthorized)

	updated, err := f.svc.Update(ctx, postID, f.author, "edited", []string{"k1"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)
	require.Len(t, updated.PostImages, 1)
	assert.Equal(t, "k2", updated.PostImages[0].Key)
	assert.Contains(t, f.storage.deleted, "k1")
}

func TestListByCategoryTitleUnknown(t *testing.T) {
	f := newPostFixture(t)
	_, err := f.svc.ListByCategoryTitle(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
