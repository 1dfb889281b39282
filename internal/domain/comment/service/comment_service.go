package service

import (
	"context"
	"strings"

	"social_backend/internal/domain/comment/model"
	"social_backend/internal/domain/comment/repository"
	"social_backend/internal/pkg/bizerr"
	"social_backend/pkg/logger"

	"go.uber.org/zap"
)

// CommentService 评论服务
type CommentService interface {
	CreateComment(ctx context.Context, userID, postID uint, content string) (*model.Comment, error)
	UpdateComment(ctx context.Context, commentID, userID uint, content string) (*model.Comment, error)
	DeleteComment(ctx context.Context, commentID, userID uint) (*model.Comment, error)
	ListPostComments(ctx context.Context, postID uint, limit, offset int) ([]model.CommentWithAuthor, error)
	GetCommentByID(ctx context.Context, commentID uint) (*model.CommentWithAuthor, error)
	CountComments(ctx context.Context, postID uint) (int64, error)
	CountCommentsByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error)
}

type commentService struct {
	repo repository.CommentRepository
}

func NewCommentService(repo repository.CommentRepository) CommentService {
	return &commentService{repo: repo}
}

func (s *commentService) CreateComment(ctx context.Context, userID, postID uint, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, bizerr.InvalidInput("Comment content is required")
	}

	state, err := s.repo.PostState(ctx, postID)
	if err != nil {
		return nil, bizerr.Internal("comment.CreateComment", err)
	}
	if !state.Exists {
		return nil, bizerr.NotFound("Post not found")
	}
	if !state.CommentsEnabled {
		return nil, bizerr.CommentsDisabled("Comments are disabled for this post")
	}

	comment := &model.Comment{UserID: userID, PostID: postID, Content: content}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, bizerr.Internal("comment.CreateComment", err)
	}

	logger.L().Debug("comment created",
		zap.Uint("comment_id", comment.ID),
		zap.Uint("post_id", postID),
		zap.Uint("user_id", userID),
	)
	return comment, nil
}

// UpdateComment 修改评论
// 评论不存在、已删除或不属于当前用户统一返回 NotFound
func (s *commentService) UpdateComment(ctx context.Context, commentID, userID uint, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, bizerr.InvalidInput("Comment content is required")
	}

	comment, err := s.repo.UpdateOwned(ctx, commentID, userID, content)
	if err != nil {
		return nil, bizerr.Internal("comment.UpdateComment", err)
	}
	if comment == nil {
		return nil, bizerr.NotFound("Comment not found or not authorized")
	}
	return comment, nil
}

// DeleteComment 软删除评论，返回删除前的快照
func (s *commentService) DeleteComment(ctx context.Context, commentID, userID uint) (*model.Comment, error) {
	comment, err := s.repo.SoftDeleteOwned(ctx, commentID, userID)
	if err != nil {
		return nil, bizerr.Internal("comment.DeleteComment", err)
	}
	if comment == nil {
		return nil, bizerr.NotFound("Comment not found or not authorized")
	}
	return comment, nil
}

func (s *commentService) ListPostComments(ctx context.Context, postID uint, limit, offset int) ([]model.CommentWithAuthor, error) {
	comments, err := s.repo.ListByPost(ctx, postID, limit, offset)
	if err != nil {
		return nil, bizerr.Internal("comment.ListPostComments", err)
	}
	return comments, nil
}

func (s *commentService) GetCommentByID(ctx context.Context, commentID uint) (*model.CommentWithAuthor, error) {
	comment, err := s.repo.GetWithAuthor(ctx, commentID)
	if err != nil {
		if bizerr.IsRecordNotFound(err) {
			return nil, bizerr.NotFound("Comment not found")
		}
		return nil, bizerr.Internal("comment.GetCommentByID", err)
	}
	return comment, nil
}

func (s *commentService) CountComments(ctx context.Context, postID uint) (int64, error) {
	count, err := s.repo.Count(ctx, postID)
	if err != nil {
		return 0, bizerr.Internal("comment.CountComments", err)
	}
	return count, nil
}

func (s *commentService) CountCommentsByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	counts, err := s.repo.CountByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, bizerr.Internal("comment.CountCommentsByPostIDs", err)
	}
	return counts, nil
}
