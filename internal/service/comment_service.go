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

type CommentService interface {
	ListByPost(ctx context.Context, postID primitive.ObjectID, last *time.Time) ([]*dto.CommentDTO, error)
	Create(ctx context.Context, userID primitive.ObjectID, req *dto.CreateCommentDTO) (*dto.CommentDTO, error)
	Update(ctx context.Context, id, userID primitive.ObjectID, text string) (*dto.CommentDTO, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
	Block(ctx context.Context, id, userID primitive.ObjectID) error
}

type commentServiceImpl struct {
	commentRepo    repository.CommentRepo
	subcommentRepo repository.SubcommentRepo
	postRepo       repository.PostRepo
	profileRepo    repository.ProfileRepo
	gate           *ModerationGate
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	subcommentRepo repository.SubcommentRepo,
	postRepo repository.PostRepo,
	profileRepo repository.ProfileRepo,
	gate *ModerationGate,
) CommentService {
	return &commentServiceImpl{
		commentRepo:    commentRepo,
		subcommentRepo: subcommentRepo,
		postRepo:       postRepo,
		profileRepo:    profileRepo,
		gate:           gate,
	}
}

func toCommentDTO(comment *model.Comment, profile *dto.ProfileDTO) *dto.CommentDTO {
	item := &dto.CommentDTO{}
	_ = copier.Copy(item, comment)
	item.Profile = profile
	return item
}

func (s *commentServiceImpl) expand(ctx context.Context, comments []*model.Comment) ([]*dto.CommentDTO, error) {
	ids := make([]primitive.ObjectID, 0, len(comments))
	for _, comment := range comments {
		ids = append(ids, comment.Profile)
	}
	profiles, err := loadProfiles(ctx, s.profileRepo, ids)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		items = append(items, toCommentDTO(comment, profiles[comment.Profile]))
	}
	return items, nil
}

func (s *commentServiceImpl) ListByPost(ctx context.Context, postID primitive.ObjectID, last *time.Time) ([]*dto.CommentDTO, error) {
	comments, err := s.commentRepo.ListByPost(ctx, postID, last, consts.CommentPageSize)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, comments)
}

// Create 先在帖子上挂载预览与计数，再插入评论本体
// 插入失败时以反向更新补偿，避免计数悬空
func (s *commentServiceImpl) Create(ctx context.Context, userID primitive.ObjectID, req *dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	postID, err := primitive.ObjectIDFromHex(req.PostID)
	if err != nil {
		return nil, ErrPostNotFound
	}
	profileID, err := primitive.ObjectIDFromHex(req.Profile)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	post, err := s.postRepo.GetById(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	profile, err := s.profileRepo.GetById(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.Category != post.Category {
		return nil, ErrProfileNotFound
	}
	if err = s.gate.CanEditOwn(profile.User, userID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ID:       primitive.NewObjectID(),
		PostID:   postID,
		Category: post.Category,
		Profile:  profileID,
		User:     userID,
		Text:     req.Text,
	}

	if err = s.postRepo.PushComment(ctx, postID, comment.ID); err != nil {
		return nil, err
	}
	if err = s.commentRepo.Create(ctx, comment); err != nil {
		if compErr := s.postRepo.PullComment(ctx, postID, comment.ID); compErr != nil {
			log.ErrorContext(ctx, "评论插入失败后补偿回滚失败", "post", postID.Hex(), "err", compErr)
		}
		return nil, err
	}

	return toCommentDTO(comment, toProfileDTO(profile)), nil
}

func (s *commentServiceImpl) Update(ctx context.Context, id, userID primitive.ObjectID, text string) (*dto.CommentDTO, error) {
	comment, err := s.commentRepo.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if err = s.gate.CanEditOwn(comment.User, userID); err != nil {
		return nil, err
	}

	if err = s.commentRepo.UpdateText(ctx, id, text); err != nil {
		return nil, err
	}

	comment.Text = text
	items, err := s.expand(ctx, []*model.Comment{comment})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

// Delete 先摘除父帖的预览与计数，再清回复，最后删评论
func (s *commentServiceImpl) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	comment, err := s.commentRepo.GetById(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if err = s.gate.CanEditOwn(comment.User, userID); err != nil {
		return err
	}

	if err = s.postRepo.PullComment(ctx, comment.PostID, id); err != nil {
		return err
	}
	if err = s.subcommentRepo.DeleteManyByComment(ctx, id); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, id)
}

func (s *commentServiceImpl) Block(ctx context.Context, id, userID primitive.ObjectID) error {
	comment, err := s.commentRepo.GetById(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if err = s.gate.CanModerate(ctx, comment.Category, userID); err != nil {
		return err
	}
	return s.commentRepo.Block(ctx, id, consts.BlockedCommentText)
}
