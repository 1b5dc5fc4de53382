package service

import (
	"Hearth/internal/api/dto"
	"Hearth/internal/model"
	"Hearth/internal/repository"
	"context"
	log "log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProfileService interface {
	GetById(ctx context.Context, id primitive.ObjectID) (*dto.ProfileDTO, error)
	ListOwn(ctx context.Context, userID primitive.ObjectID) ([]*dto.ProfileDTO, error)
	Create(ctx context.Context, userID primitive.ObjectID, req *dto.CreateProfileDTO, image *ImageUpload) (*dto.ProfileDTO, error)
	Update(ctx context.Context, id, userID primitive.ObjectID, req *dto.UpdateProfileDTO, image *ImageUpload) (*dto.ProfileDTO, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

type profileServiceImpl struct {
	profileRepo  repository.ProfileRepo
	categoryRepo repository.CategoryRepo
	gate         *ModerationGate
	storage      ObjectStorage
}

func NewProfileService(profileRepo repository.ProfileRepo, categoryRepo repository.CategoryRepo, gate *ModerationGate, storage ObjectStorage) ProfileService {
	return &profileServiceImpl{
		profileRepo:  profileRepo,
		categoryRepo: categoryRepo,
		gate:         gate,
		storage:      storage,
	}
}

func (s *profileServiceImpl) GetById(ctx context.Context, id primitive.ObjectID) (*dto.ProfileDTO, error) {
	profile, err := s.profileRepo.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return toProfileDTO(profile), nil
}

func (s *profileServiceImpl) ListOwn(ctx context.Context, userID primitive.ObjectID) ([]*dto.ProfileDTO, error) {
	profiles, err := s.profileRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ProfileDTO, 0, len(profiles))
	for _, profile := range profiles {
		items = append(items, toProfileDTO(profile))
	}
	return items, nil
}

// Create (user, category, nickname) 三元组重复即 409，头像可选
func (s *profileServiceImpl) Create(ctx context.Context, userID primitive.ObjectID, req *dto.CreateProfileDTO, image *ImageUpload) (*dto.ProfileDTO, error) {
	categoryID, err := primitive.ObjectIDFromHex(req.Category)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	category, err := s.categoryRepo.GetById(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	existing, err := s.profileRepo.GetByUnique(ctx, userID, categoryID, req.Nickname)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileExist
	}

	profile := &model.Profile{
		User:     userID,
		Category: categoryID,
		Nickname: req.Nickname,
	}
	if image != nil {
		uploaded, err := uploadProfileImage(ctx, s.storage, userID, *image)
		if err != nil {
			return nil, err
		}
		profile.ProfileImage = *uploaded
	}

	if err = s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return toProfileDTO(profile), nil
}

// Update 换头像时旧对象尽力删除，失败只记日志
func (s *profileServiceImpl) Update(ctx context.Context, id, userID primitive.ObjectID, req *dto.UpdateProfileDTO, image *ImageUpload) (*dto.ProfileDTO, error) {
	profile, err := s.profileRepo.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	if err = s.gate.CanEditOwn(profile.User, userID); err != nil {
		return nil, err
	}

	if req.Nickname != profile.Nickname {
		existing, err := s.profileRepo.GetByUnique(ctx, userID, profile.Category, req.Nickname)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrProfileExist
		}
	}

	var uploaded *model.Image
	if image != nil {
		if uploaded, err = uploadProfileImage(ctx, s.storage, userID, *image); err != nil {
			return nil, err
		}
		if profile.ProfileImage.Key != "" {
			if err = s.storage.DeleteFile(ctx, profile.ProfileImage.Key); err != nil {
				log.WarnContext(ctx, "删除旧头像失败", "key", profile.ProfileImage.Key, "err", err)
			}
		}
	}

	if err = s.profileRepo.Update(ctx, id, req.Nickname, uploaded); err != nil {
		return nil, err
	}

	profile.Nickname = req.Nickname
	if uploaded != nil {
		profile.ProfileImage = *uploaded
	}
	return toProfileDTO(profile), nil
}

// Delete 先清对象存储再删文档
func (s *profileServiceImpl) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	profile, err := s.profileRepo.GetById(ctx, id)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}
	if err = s.gate.CanEditOwn(profile.User, userID); err != nil {
		return err
	}

	if profile.ProfileImage.Key != "" {
		if err = s.storage.DeleteFile(ctx, profile.ProfileImage.Key); err != nil {
			log.WarnContext(ctx, "删除头像失败", "key", profile.ProfileImage.Key, "err", err)
		}
	}
	return s.profileRepo.Delete(ctx, id)
}
