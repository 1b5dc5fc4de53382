package service

import (
	"Hearth/internal/api/dto"
	"Hearth/internal/model"
	"Hearth/internal/pkg/consts"
	"Hearth/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryCacheTTL 板块列表缓存时长
const CategoryCacheTTL = time.Hour

// Cache 服务层需要的缓存能力，*redis.Cache 满足该接口
type Cache interface {
	GetValue(ctx context.Context, key string) (string, error)
	SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	DeleteKey(ctx context.Context, key string) error
}

type CategoryService interface {
	List(ctx context.Context) ([]*dto.CategoryDTO, error)
	GetByTitle(ctx context.Context, title string) (*dto.CategoryDTO, error)
	Create(ctx context.Context, userID primitive.ObjectID, req *dto.CreateCategoryDTO) (*dto.CategoryDTO, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepo
	profileRepo  repository.ProfileRepo
	postRepo     repository.PostRepo
	gate         *ModerationGate
	cache        Cache
}

func NewCategoryService(categoryRepo repository.CategoryRepo, profileRepo repository.ProfileRepo, postRepo repository.PostRepo, gate *ModerationGate, cache Cache) CategoryService {
	return &categoryServiceImpl{
		categoryRepo: categoryRepo,
		profileRepo:  profileRepo,
		postRepo:     postRepo,
		gate:         gate,
		cache:        cache,
	}
}

// List 旁路缓存，缓存异常时直接回源
func (s *categoryServiceImpl) List(ctx context.Context) ([]*dto.CategoryDTO, error) {
	cached, err := s.cache.GetValue(ctx, consts.CategoryListKey)
	if err == nil && cached != "" {
		categories := make([]*dto.CategoryDTO, 0)
		if err = json.Unmarshal([]byte(cached), &categories); err == nil {
			return categories, nil
		}
		log.WarnContext(ctx, "板块列表缓存解析失败", "err", err)
	}

	records, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]*dto.CategoryDTO, 0, len(records))
	for _, record := range records {
		item := &dto.CategoryDTO{}
		_ = copier.Copy(item, record)
		categories = append(categories, item)
	}

	if data, err := json.Marshal(categories); err == nil {
		if err = s.cache.SetWithExpiration(ctx, consts.CategoryListKey, string(data), CategoryCacheTTL); err != nil {
			log.WarnContext(ctx, "写入板块列表缓存失败", "err", err)
		}
	}
	return categories, nil
}

func (s *categoryServiceImpl) GetByTitle(ctx context.Context, title string) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepo.GetByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	item := &dto.CategoryDTO{}
	_ = copier.Copy(item, category)
	return item, nil
}

func (s *categoryServiceImpl) Create(ctx context.Context, userID primitive.ObjectID, req *dto.CreateCategoryDTO) (*dto.CategoryDTO, error) {
	existing, err := s.categoryRepo.GetByTitle(ctx, req.Title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCategoryExist
	}

	category := &model.Category{
		User:  userID,
		Title: req.Title,
	}
	if err = s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	item := &dto.CategoryDTO{}
	_ = copier.Copy(item, category)
	return item, nil
}

// Delete 仅版主可删，且板块下不能再有身份或帖子
func (s *categoryServiceImpl) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	if err := s.gate.CanModerate(ctx, id, userID); err != nil {
		return err
	}

	postCount, err := s.postRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	profileCount, err := s.profileRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if postCount > 0 || profileCount > 0 {
		return ErrCategoryInUse
	}

	if err = s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *categoryServiceImpl) invalidate(ctx context.Context) {
	if err := s.cache.DeleteKey(ctx, consts.CategoryListKey); err != nil {
		log.WarnContext(ctx, "清除板块列表缓存失败", "err", err)
	}
}
