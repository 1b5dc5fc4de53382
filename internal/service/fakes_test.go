package service

import (
	"Hearth/internal/model"
	"context"
	"io"
	"sort"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 内存版仓储，行为与真实实现保持一致：
// 计数与成员列表在同一个方法内一起变化，找不到返回 (nil, nil)

type fakeUserRepo struct {
	users map[primitive.ObjectID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*model.User{}}
}

func (r *fakeUserRepo) GetUserById(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id primitive.ObjectID, hashed string) error {
	if u, ok := r.users[id]; ok {
		u.Password = hashed
	}
	return nil
}

type fakeTokenRepo struct {
	tokens map[string]struct{}
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]struct{}{}}
}

func (r *fakeTokenRepo) Save(_ context.Context, token string) error {
	r.tokens[token] = struct{}{}
	return nil
}

func (r *fakeTokenRepo) Exists(_ context.Context, token string) (bool, error) {
	_, ok := r.tokens[token]
	return ok, nil
}

func (r *fakeTokenRepo) Delete(_ context.Context, token string) error {
	delete(r.tokens, token)
	return nil
}

type fakeCategoryRepo struct {
	categories map[primitive.ObjectID]*model.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[primitive.ObjectID]*model.Category{}}
}

func (r *fakeCategoryRepo) GetAll(_ context.Context) ([]*model.Category, error) {
	out := make([]*model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *fakeCategoryRepo) GetById(_ context.Context, id primitive.ObjectID) (*model.Category, error) {
	return r.categories[id], nil
}

func (r *fakeCategoryRepo) GetByTitle(_ context.Context, title string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.Title == title {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *model.Category) error {
	category.ID = primitive.NewObjectID()
	category.CreatedAt = time.Now()
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.categories, id)
	return nil
}

type fakeProfileRepo struct {
	profiles map[primitive.ObjectID]*model.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[primitive.ObjectID]*model.Profile{}}
}

func (r *fakeProfileRepo) GetById(_ context.Context, id primitive.ObjectID) (*model.Profile, error) {
	return r.profiles[id], nil
}

func (r *fakeProfileRepo) GetByUser(_ context.Context, userID primitive.ObjectID) ([]*model.Profile, error) {
	out := make([]*model.Profile, 0)
	for _, p := range r.profiles {
		if p.User == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) GetByUnique(_ context.Context, userID, categoryID primitive.ObjectID, nickname string) (*model.Profile, error) {
	for _, p := range r.profiles {
		if p.User == userID && p.Category == categoryID && p.Nickname == nickname {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) GetByIds(_ context.Context, ids []primitive.ObjectID) ([]*model.Profile, error) {
	out := make([]*model.Profile, 0)
	for _, id := range ids {
		if p, ok := r.profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) CountByCategory(_ context.Context, categoryID primitive.ObjectID) (int64, error) {
	var n int64
	for _, p := range r.profiles {
		if p.Category == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *model.Profile) error {
	profile.ID = primitive.NewObjectID()
	profile.CreatedAt = time.Now()
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeProfileRepo) Update(_ context.Context, id primitive.ObjectID, nickname string, image *model.Image) error {
	if p, ok := r.profiles[id]; ok {
		p.Nickname = nickname
		if image != nil {
			p.ProfileImage = *image
		}
	}
	return nil
}

func (r *fakeProfileRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.profiles, id)
	return nil
}

type fakePostRepo struct {
	posts map[primitive.ObjectID]*model.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[primitive.ObjectID]*model.Post{}}
}

func (r *fakePostRepo) GetById(_ context.Context, id primitive.ObjectID) (*model.Post, error) {
	if p, ok := r.posts[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, nil
}

func (r *fakePostRepo) list(filter func(*model.Post) bool, last *time.Time, limit int64) ([]*model.Post, error) {
	out := make([]*model.Post, 0)
	for _, p := range r.posts {
		if !filter(p) {
			continue
		}
		if last != nil && !p.CreatedAt.Before(*last) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakePostRepo) List(_ context.Context, last *time.Time, limit int64) ([]*model.Post, error) {
	return r.list(func(*model.Post) bool { return true }, last, limit)
}

func (r *fakePostRepo) ListByCategory(_ context.Context, categoryID primitive.ObjectID, last *time.Time, limit int64) ([]*model.Post, error) {
	return r.list(func(p *model.Post) bool { return p.Category == categoryID }, last, limit)
}

func (r *fakePostRepo) ListByProfile(_ context.Context, profileID primitive.ObjectID, last *time.Time, limit int64) ([]*model.Post, error) {
	return r.list(func(p *model.Post) bool { return p.Profile == profileID }, last, limit)
}

func (r *fakePostRepo) ListByUser(_ context.Context, userID primitive.ObjectID, last *time.Time, limit int64) ([]*model.Post, error) {
	return r.list(func(p *model.Post) bool { return p.User == userID }, last, limit)
}

func (r *fakePostRepo) CountByCategory(_ context.Context, categoryID primitive.ObjectID) (int64, error) {
	var n int64
	for _, p := range r.posts {
		if p.Category == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *fakePostRepo) Create(_ context.Context, post *model.Post) error {
	post.ID = primitive.NewObjectID()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	if post.PostImages == nil {
		post.PostImages = make([]model.Image, 0)
	}
	post.LikeUsers = make([]primitive.ObjectID, 0)
	post.DislikeUsers = make([]primitive.ObjectID, 0)
	post.Comments = make([]primitive.ObjectID, 0)
	r.posts[post.ID] = post
	return nil
}

func (r *fakePostRepo) UpdateContent(_ context.Context, id primitive.ObjectID, text string, images []model.Image) error {
	if p, ok := r.posts[id]; ok {
		p.Text = text
		p.PostImages = images
	}
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) Block(_ context.Context, id primitive.ObjectID, placeholder string) error {
	if p, ok := r.posts[id]; ok {
		p.Text = placeholder
		p.PostImages = make([]model.Image, 0)
		p.Blocked = true
	}
	return nil
}

func removeID(ids []primitive.ObjectID, target primitive.ObjectID) []primitive.ObjectID {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

func (r *fakePostRepo) AddLike(_ context.Context, id, userID primitive.ObjectID) error {
	p := r.posts[id]
	p.Likes++
	p.LikeUsers = append(p.LikeUsers, userID)
	return nil
}

func (r *fakePostRepo) RemoveLike(_ context.Context, id, userID primitive.ObjectID) error {
	p := r.posts[id]
	p.Likes--
	p.LikeUsers = removeID(p.LikeUsers, userID)
	return nil
}

func (r *fakePostRepo) SwitchToLike(_ context.Context, id, userID primitive.ObjectID) error {
	p := r.posts[id]
	p.Likes++
	p.Dislikes--
	p.DislikeUsers = removeID(p.DislikeUsers, userID)
	p.LikeUsers = append(p.LikeUsers, userID)
	return nil
}

func (r *fakePostRepo) AddDislike(_ context.Context, id, userID primitive.ObjectID) error {
	p := r.posts[id]
	p.Dislikes++
	p.DislikeUsers = append(p.DislikeUsers, userID)
	return nil
}

func (r *fakePostRepo) RemoveDislike(_ context.Context, id, userID primitive.ObjectID) error {
	p := r.posts[id]
	p.Dislikes--
	p.DislikeUsers = removeID(p.DislikeUsers, userID)
	return nil
}

func (r *fakePostRepo) SwitchToDislike(_ context.Context, id, userID primitive.ObjectID) error {
	p := r.posts[id]
	p.Dislikes++
	p.Likes--
	p.LikeUsers = removeID(p.LikeUsers, userID)
	p.DislikeUsers = append(p.DislikeUsers, userID)
	return nil
}

func (r *fakePostRepo) PushComment(_ context.Context, postID, commentID primitive.ObjectID) error {
	p := r.posts[postID]
	p.Comments = append([]primitive.ObjectID{commentID}, p.Comments...)
	if len(p.Comments) > model.CommentPreviewSize {
		p.Comments = p.Comments[:model.CommentPreviewSize]
	}
	p.CommentsCount++
	return nil
}

func (r *fakePostRepo) PullComment(_ context.Context, postID, commentID primitive.ObjectID) error {
	p := r.posts[postID]
	p.Comments = removeID(p.Comments, commentID)
	p.CommentsCount--
	return nil
}

type fakeCommentRepo struct {
	comments   map[primitive.ObjectID]*model.Comment
	failCreate bool
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[primitive.ObjectID]*model.Comment{}}
}

func (r *fakeCommentRepo) GetById(_ context.Context, id primitive.ObjectID) (*model.Comment, error) {
	if c, ok := r.comments[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeCommentRepo) ListByPost(_ context.Context, postID primitive.ObjectID, last *time.Time, limit int64) ([]*model.Comment, error) {
	out := make([]*model.Comment, 0)
	for _, c := range r.comments {
		if c.PostID != postID {
			continue
		}
		if last != nil && !c.CreatedAt.Before(*last) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *model.Comment) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	comment.Subcomments = make([]primitive.ObjectID, 0)
	r.comments[comment.ID] = comment
	return nil
}

func (r *fakeCommentRepo) UpdateText(_ context.Context, id primitive.ObjectID, text string) error {
	if c, ok := r.comments[id]; ok {
		c.Text = text
	}
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.comments, id)
	return nil
}

func (r *fakeCommentRepo) DeleteManyByPost(_ context.Context, postID primitive.ObjectID) error {
	for id, c := range r.comments {
		if c.PostID == postID {
			delete(r.comments, id)
		}
	}
	return nil
}

func (r *fakeCommentRepo) Block(_ context.Context, id primitive.ObjectID, placeholder string) error {
	if c, ok := r.comments[id]; ok {
		c.Text = placeholder
		c.Blocked = true
	}
	return nil
}

func (r *fakeCommentRepo) PushSubcomment(_ context.Context, commentID, subcommentID primitive.ObjectID) error {
	c := r.comments[commentID]
	c.Subcomments = append([]primitive.ObjectID{subcommentID}, c.Subcomments...)
	if len(c.Subcomments) > model.SubcommentPreviewSize {
		c.Subcomments = c.Subcomments[:model.SubcommentPreviewSize]
	}
	c.SubcommentsCount++
	return nil
}

func (r *fakeCommentRepo) PullSubcomment(_ context.Context, commentID, subcommentID primitive.ObjectID) error {
	c := r.comments[commentID]
	c.Subcomments = removeID(c.Subcomments, subcommentID)
	c.SubcommentsCount--
	return nil
}

type fakeSubcommentRepo struct {
	subcomments map[primitive.ObjectID]*model.Subcomment
	failCreate  bool
}

func newFakeSubcommentRepo() *fakeSubcommentRepo {
	return &fakeSubcommentRepo{subcomments: map[primitive.ObjectID]*model.Subcomment{}}
}

func (r *fakeSubcommentRepo) GetById(_ context.Context, id primitive.ObjectID) (*model.Subcomment, error) {
	if s, ok := r.subcomments[id]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeSubcommentRepo) ListByComment(_ context.Context, commentID primitive.ObjectID, last *time.Time, limit int64) ([]*model.Subcomment, error) {
	out := make([]*model.Subcomment, 0)
	for _, s := range r.subcomments {
		if s.CommentID != commentID {
			continue
		}
		if last != nil && !s.CreatedAt.Before(*last) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeSubcommentRepo) Create(_ context.Context, subcomment *model.Subcomment) error {
	if r.failCreate {
		return errors.New("insert failed")
	}
	if subcomment.ID.IsZero() {
		subcomment.ID = primitive.NewObjectID()
	}
	if subcomment.CreatedAt.IsZero() {
		subcomment.CreatedAt = time.Now()
	}
	r.subcomments[subcomment.ID] = subcomment
	return nil
}

func (r *fakeSubcommentRepo) UpdateText(_ context.Context, id primitive.ObjectID, text string) error {
	if s, ok := r.subcomments[id]; ok {
		s.Text = text
	}
	return nil
}

func (r *fakeSubcommentRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.subcomments, id)
	return nil
}

func (r *fakeSubcommentRepo) DeleteManyByComment(_ context.Context, commentID primitive.ObjectID) error {
	for id, s := range r.subcomments {
		if s.CommentID == commentID {
			delete(r.subcomments, id)
		}
	}
	return nil
}

func (r *fakeSubcommentRepo) DeleteManyByPost(_ context.Context, postID primitive.ObjectID) error {
	for id, s := range r.subcomments {
		if s.PostID == postID {
			delete(r.subcomments, id)
		}
	}
	return nil
}

func (r *fakeSubcommentRepo) Block(_ context.Context, id primitive.ObjectID, placeholder string) error {
	if s, ok := r.subcomments[id]; ok {
		s.Text = placeholder
		s.Blocked = true
	}
	return nil
}

type fakeStorage struct {
	uploaded []string
	deleted  []string
}

func (s *fakeStorage) UploadFile(_ context.Context, objectName string, _ io.Reader, _ int64, _ string) (string, error) {
	s.uploaded = append(s.uploaded, objectName)
	return objectName, nil
}

func (s *fakeStorage) DeleteFile(_ context.Context, objectName string) error {
	s.deleted = append(s.deleted, objectName)
	return nil
}

func (s *fakeStorage) DeleteFiles(_ context.Context, objectNames []string) error {
	s.deleted = append(s.deleted, objectNames...)
	return nil
}

func (s *fakeStorage) GetPublicURL(objectName string) string {
	return "https://storage.test/" + objectName
}

type fakeCache struct {
	values map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}}
}

func (c *fakeCache) GetValue(_ context.Context, key string) (string, error) {
	return c.values[key], nil
}

func (c *fakeCache) SetWithExpiration(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.values[key] = value.(string)
	return nil
}

func (c *fakeCache) DeleteKey(_ context.Context, key string) error {
	delete(c.values, key)
	return nil
}
