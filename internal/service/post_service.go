package service

import (
	"Hearth/internal/api/dto"
	"Hearth/internal/model"
	"Hearth/internal/pkg/consts"
	"Hearth/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 点赞点踩请求里 type 字段的两个取值
const (
	ReactionCreate = "create"
	ReactionDelete = "delete"
)

type PostService interface {
	GetById(ctx context.Context, id primitive.ObjectID) (*dto.PostDTO, error)
	List(ctx context.Context, last *time.Time) ([]*dto.PostDTO, error)
	ListByCategory(ctx context.Context, categoryID primitive.ObjectID, last *time.Time) ([]*dto.PostDTO, error)
	ListByCategoryTitle(ctx context.Context, title string, last *time.Time) ([]*dto.PostDTO, error)
	ListByProfile(ctx context.Context, profileID primitive.ObjectID, last *time.Time) ([]*dto.PostDTO, error)
	ListByUsername(ctx context.Context, username string, last *time.Time) ([]*dto.PostDTO, error)
	Create(ctx context.Context, userID primitive.ObjectID, req *dto.CreatePostDTO, images []ImageUpload) (*dto.PostDTO, error)
	Update(ctx context.Context, id, userID primitive.ObjectID, text string, removedKeys []string, images []ImageUpload) (*dto.PostDTO, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
	Block(ctx context.Context, id, userID primitive.ObjectID) error
	Like(ctx context.Context, id, userID primitive.ObjectID, action string) error
	Dislike(ctx context.Context, id, userID primitive.ObjectID, action string) error
}

type postServiceImpl struct {
	postRepo       repository.PostRepo
	commentRepo    repository.CommentRepo
	subcommentRepo repository.SubcommentRepo
	profileRepo    repository.ProfileRepo
	categoryRepo   repository.CategoryRepo
	userRepo       repository.UserRepo
	gate           *ModerationGate
	storage        ObjectStorage
}

func NewPostService(
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	subcommentRepo repository.SubcommentRepo,
	profileRepo repository.ProfileRepo,
	categoryRepo repository.CategoryRepo,
	userRepo repository.UserRepo,
	gate *ModerationGate,
	storage ObjectStorage,
) PostService {
	return &postServiceImpl{
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		subcommentRepo: subcommentRepo,
		profileRepo:    profileRepo,
		categoryRepo:   categoryRepo,
		userRepo:       userRepo,
		gate:           gate,
		storage:        storage,
	}
}

func toPostDTO(post *model.Post, profile *dto.ProfileDTO) *dto.PostDTO {
	item := &dto.PostDTO{}
	_ = copier.Copy(item, post)
	item.Profile = profile
	return item
}

func (s *postServiceImpl) expand(ctx context.Context, posts []*model.Post) ([]*dto.PostDTO, error) {
	ids := make([]primitive.ObjectID, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.Profile)
	}
	profiles, err := loadProfiles(ctx, s.profileRepo, ids)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		items = append(items, toPostDTO(post, profiles[post.Profile]))
	}
	return items, nil
}

func (s *postServiceImpl) GetById(ctx context.Context, id primitive.ObjectID) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	items, err := s.expand(ctx, []*model.Post{post})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

func (s *postServiceImpl) List(ctx context.Context, last *time.Time) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.List(ctx, last, consts.PostPageSize)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, posts)
}

func (s *postServiceImpl) ListByCategory(ctx context.Context, categoryID primitive.ObjectID, last *time.Time) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.ListByCategory(ctx, categoryID, last, consts.PostPageSize)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, posts)
}

func (s *postServiceImpl) ListByCategoryTitle(ctx context.Context, title string, last *time.Time) ([]*dto.PostDTO, error) {
	category, err := s.categoryRepo.GetByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return s.ListByCategory(ctx, category.ID, last)
}

func (s *postServiceImpl) ListByProfile(ctx context.Context, profileID primitive.ObjectID, last *time.Time) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.ListByProfile(ctx, profileID, last, consts.PostPageSize)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, posts)
}

func (s *postServiceImpl) ListByUsername(ctx context.Context, username string, last *time.Time) ([]*dto.PostDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	posts, err := s.postRepo.ListByUser(ctx, user.ID, last, consts.PostPageSize)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, posts)
}

// Create 发帖身份必须属于请求者且挂在目标板块下
func (s *postServiceImpl) Create(ctx context.Context, userID primitive.ObjectID, req *dto.CreatePostDTO, images []ImageUpload) (*dto.PostDTO, error) {
	categoryID, err := primitive.ObjectIDFromHex(req.Category)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	profileID, err := primitive.ObjectIDFromHex(req.Profile)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	category, err := s.categoryRepo.GetById(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	profile, err := s.profileRepo.GetById(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.Category != categoryID {
		return nil, ErrProfileNotFound
	}
	if err = s.gate.CanEditOwn(profile.User, userID); err != nil {
		return nil, err
	}

	uploaded := make([]model.Image, 0, len(images))
	for _, image := range images {
		img, err := uploadPostImage(ctx, s.storage, userID, image)
		if err != nil {
			return nil, err
		}
		uploaded = append(uploaded, *img)
	}

	post := &model.Post{
		Category:   categoryID,
		Profile:    profileID,
		User:       userID,
		Text:       req.Text,
		PostImages: uploaded,
	}
	if err = s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return toPostDTO(post, toProfileDTO(profile)), nil
}

// Update 被移除的图片先从对象存储清掉，新图片压缩上传后追加
func (s *postServiceImpl) Update(ctx context.Context, id, userID primitive.ObjectID, text string, removedKeys []string, images []ImageUpload) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if err = s.gate.CanEditOwn(post.User, userID); err != nil {
		return nil, err
	}

	removed := make(map[string]struct{}, len(removedKeys))
	for _, key := range removedKeys {
		removed[key] = struct{}{}
	}

	remaining := make([]model.Image, 0, len(post.PostImages))
	deleted := make([]string, 0, len(removedKeys))
	for _, image := range post.PostImages {
		if _, ok := removed[image.Key]; ok {
			deleted = append(deleted, image.Key)
			continue
		}
		remaining = append(remaining, image)
	}
	if len(deleted) > 0 {
		if err = s.storage.DeleteFiles(ctx, deleted); err != nil {
			log.WarnContext(ctx, "删除帖子图片失败", "err", err)
		}
	}

	for _, image := range images {
		img, err := uploadPostImage(ctx, s.storage, userID, image)
		if err != nil {
			return nil, err
		}
		remaining = append(remaining, *img)
	}

	if err = s.postRepo.UpdateContent(ctx, id, text, remaining); err != nil {
		return nil, err
	}

	post.Text = text
	post.PostImages = remaining
	items, err := s.expand(ctx, []*model.Post{post})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

// Delete 级联删除，步骤幂等：存储对象、回复、评论、帖子本身
func (s *postServiceImpl) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	post, err := s.postRepo.GetById(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if err = s.gate.CanEditOwn(post.User, userID); err != nil {
		return err
	}

	if keys := imageKeys(post.PostImages); len(keys) > 0 {
		if err = s.storage.DeleteFiles(ctx, keys); err != nil {
			return err
		}
	}
	if err = s.subcommentRepo.DeleteManyByPost(ctx, id); err != nil {
		return err
	}
	if err = s.commentRepo.DeleteManyByPost(ctx, id); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, id)
}

// Block 版主屏蔽，正文替换为占位文案，图片全部清除
func (s *postServiceImpl) Block(ctx context.Context, id, userID primitive.ObjectID) error {
	post, err := s.postRepo.GetById(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if err = s.gate.CanModerate(ctx, post.Category, userID); err != nil {
		return err
	}

	if keys := imageKeys(post.PostImages); len(keys) > 0 {
		if err = s.storage.DeleteFiles(ctx, keys); err != nil {
			return err
		}
	}
	return s.postRepo.Block(ctx, id, consts.BlockedPostText)
}

// Like type=create 时重复点赞不再翻转，已点踩则迁移为点赞
func (s *postServiceImpl) Like(ctx context.Context, id, userID primitive.ObjectID, action string) error {
	post, err := s.postRepo.GetById(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	switch action {
	case ReactionCreate:
		if post.HasLiked(userID) {
			return nil
		}
		if post.HasDisliked(userID) {
			return s.postRepo.SwitchToLike(ctx, id, userID)
		}
		return s.postRepo.AddLike(ctx, id, userID)
	case ReactionDelete:
		if !post.HasLiked(userID) {
			return nil
		}
		return s.postRepo.RemoveLike(ctx, id, userID)
	default:
		return ErrMissingData
	}
}

func (s *postServiceImpl) Dislike(ctx context.Context, id, userID primitive.ObjectID, action string) error {
	post, err := s.postRepo.GetById(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	switch action {
	case ReactionCreate:
		if post.HasDisliked(userID) {
			return nil
		}
		if post.HasLiked(userID) {
			return s.postRepo.SwitchToDislike(ctx, id, userID)
		}
		return s.postRepo.AddDislike(ctx, id, userID)
	case ReactionDelete:
		if !post.HasDisliked(userID) {
			return nil
		}
		return s.postRepo.RemoveDislike(ctx, id, userID)
	default:
		return ErrMissingData
	}
}

func imageKeys(images []model.Image) []string {
	keys := make([]string, 0, len(images))
	for _, image := range images {
		if image.Key != "" {
			keys = append(keys, image.Key)
		}
	}
	return keys
}
