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

type SubcommentService interface {
	ListByComment(ctx context.Context, commentID primitive.ObjectID, last *time.Time) ([]*dto.SubcommentDTO, error)
	Create(ctx context.Context, userID primitive.ObjectID, req *dto.CreateSubcommentDTO) (*dto.SubcommentDTO, error)
	Update(ctx context.Context, id, userID primitive.ObjectID, text string) (*dto.SubcommentDTO, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
	Block(ctx context.Context, id, userID primitive.ObjectID) error
}

type subcommentServiceImpl struct {
	subcommentRepo repository.SubcommentRepo
	commentRepo    repository.CommentRepo
	profileRepo    repository.ProfileRepo
	gate           *ModerationGate
}

func NewSubcommentService(
	subcommentRepo repository.SubcommentRepo,
	commentRepo repository.CommentRepo,
	profileRepo repository.ProfileRepo,
	gate *ModerationGate,
) SubcommentService {
	return &subcommentServiceImpl{
		subcommentRepo: subcommentRepo,
		commentRepo:    commentRepo,
		profileRepo:    profileRepo,
		gate:           gate,
	}
}

func toSubcommentDTO(subcomment *model.Subcomment, profile *dto.ProfileDTO) *dto.SubcommentDTO {
	item := &dto.SubcommentDTO{}
	_ = copier.Copy(item, subcomment)
	item.Profile = profile
	return item
}

func (s *subcommentServiceImpl) expand(ctx context.Context, subcomments []*model.Subcomment) ([]*dto.SubcommentDTO, error) {
	ids := make([]primitive.ObjectID, 0, len(subcomments))
	for _, subcomment := range subcomments {
		ids = append(ids, subcomment.Profile)
	}
	profiles, err := loadProfiles(ctx, s.profileRepo, ids)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.SubcommentDTO, 0, len(subcomments))
	for _, subcomment := range subcomments {
		items = append(items, toSubcommentDTO(subcomment, profiles[subcomment.Profile]))
	}
	return items, nil
}

func (s *subcommentServiceImpl) ListByComment(ctx context.Context, commentID primitive.ObjectID, last *time.Time) ([]*dto.SubcommentDTO, error) {
	subcomments, err := s.subcommentRepo.ListByComment(ctx, commentID, last, consts.SubcommentPageSize)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, subcomments)
}

// Create 与评论创建同构：父评论先挂载预览与计数，插入失败反向补偿
func (s *subcommentServiceImpl) Create(ctx context.Context, userID primitive.ObjectID, req *dto.CreateSubcommentDTO) (*dto.SubcommentDTO, error) {
	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		return nil, ErrPostNotFound
	}
	commentID, err := primitive.ObjectIDFromHex(req.CommentID)
	if err != nil {
		return nil, ErrCommentNotFound
	}
	profileID, err := primitive.ObjectIDFromHex(req.Profile)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	comment, err := s.commentRepo.GetById(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil || comment.PostID != postID {
		return nil, ErrCommentNotFound
	}

	profile, err := s.profileRepo.GetById(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.Category != comment.Category {
		return nil, ErrProfileNotFound
	}
	if err = s.gate.CanEditOwn(profile.User, userID); err != nil {
		return nil, err
	}

	subcomment := &model.Subcomment{
		ID:        primitive.NewObjectID(),
		PostID:    postID,
		CommentID: commentID,
		Category:  comment.Category,
		Profile:   profileID,
		User:      userID,
		Text:      req.Text,
	}

	if err = s.commentRepo.PushSubcomment(ctx, commentID, subcomment.ID); err != nil {
		return nil, err
	}
	if err = s.subcommentRepo.Create(ctx, subcomment); err != nil {
		if compErr := s.commentRepo.PullSubcomment(ctx, commentID, subcomment.ID); compErr != nil {
			log.ErrorContext(ctx, "回复插入失败后补偿回滚失败", "comment", commentID.Hex(), "err", compErr)
		}
		return nil, err
	}

	return toSubcommentDTO(subcomment, toProfileDTO(profile)), nil
}

func (s *subcommentServiceImpl) Update(ctx context.Context, id, userID primitive.ObjectID, text string) (*dto.SubcommentDTO, error) {
	subcomment, err := s.subcommentRepo.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if subcomment == nil {
		return nil, ErrSubcommentNotFound
	}
	if err = s.gate.CanEditOwn(subcomment.User, userID); err != nil {
		return nil, err
	}

	if err = s.subcommentRepo.UpdateText(ctx, id, text); err != nil {
		return nil, err
	}

	subcomment.Text = text
	items, err := s.expand(ctx, []*model.Subcomment{subcomment})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

func (s *subcommentServiceImpl) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	subcomment, err := s.subcommentRepo.GetById(ctx, id)
	if err != nil {
		return err
	}
	if subcomment == nil {
		return ErrSubcommentNotFound
	}
	if err = s.gate.CanEditOwn(subcomment.User, userID); err != nil {
		return err
	}

	if err = s.commentRepo.PullSubcomment(ctx, subcomment.CommentID, id); err != nil {
		return err
	}
	return s.subcommentRepo.Delete(ctx, id)
}

func (s *subcommentServiceImpl) Block(ctx context.Context, id, userID primitive.ObjectID) error {
	subcomment, err := s.subcommentRepo.GetById(ctx, id)
	if err != nil {
		return err
	}
	if subcomment == nil {
		return ErrSubcommentNotFound
	}
	if err = s.gate.CanModerate(ctx, subcomment.Category, userID); err != nil {
		return err
	}
	return s.subcommentRepo.Block(ctx, id, consts.BlockedCommentText)
}
