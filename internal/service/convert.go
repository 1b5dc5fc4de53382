package service

import (
	"Hearth/internal/api/dto"
	"Hearth/internal/model"
	"Hearth/internal/repository"
	"context"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func toProfileDTO(profile *model.Profile) *dto.ProfileDTO {
	if profile == nil {
		return nil
	}
	item := &dto.ProfileDTO{}
	_ = copier.Copy(item, profile)
	return item
}

// loadProfiles 批量取出身份并建索引，供列表展开 profile 引用
// 身份已被删除的内容 profile 字段为 null
func loadProfiles(ctx context.Context, repo repository.ProfileRepo, ids []primitive.ObjectID) (map[primitive.ObjectID]*dto.ProfileDTO, error) {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	unique := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return map[primitive.ObjectID]*dto.ProfileDTO{}, nil
	}

	profiles, err := repo.GetByIds(ctx, unique)
	if err != nil {
		return nil, err
	}

	index := make(map[primitive.ObjectID]*dto.ProfileDTO, len(profiles))
	for _, profile := range profiles {
		index[profile.ID] = toProfileDTO(profile)
	}
	return index, nil
}
