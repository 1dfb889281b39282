package service

import (
	"context"
	"strings"

	"social_backend/internal/domain/post/model"
	"social_backend/internal/domain/post/repository"
	"social_backend/internal/pkg/bizerr"
	"social_backend/pkg/logger"
	"social_backend/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// LikeStats 帖子列表组装所需的点赞批量查询
type LikeStats interface {
	CountLikesByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error)
	LikedPostIDs(ctx context.Context, userID uint, postIDs []uint) (map[uint]bool, error)
}

// CommentStats 帖子列表组装所需的评论批量查询
type CommentStats interface {
	CountCommentsByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error)
}

// PostService 帖子与动态流服务
type PostService interface {
	CreatePost(ctx context.Context, userID uint, content string, mediaURL *string, commentsEnabled bool) (*model.Post, error)
	DeletePost(ctx context.Context, postID, userID uint) error
	GetPostView(ctx context.Context, postID uint, viewerID *uint) (*model.PostView, error)
	ListUserPosts(ctx context.Context, targetUserID uint, viewerID *uint, page, limit int) ([]model.PostView, bool, error)
	GetFeed(ctx context.Context, viewerID uint, page, limit int) ([]model.PostView, bool, error)
}

type postService struct {
	repo     repository.PostRepository
	likes    LikeStats
	comments CommentStats
}

func NewPostService(repo repository.PostRepository, likes LikeStats, comments CommentStats) PostService {
	return &postService{repo: repo, likes: likes, comments: comments}
}

func (s *postService) CreatePost(ctx context.Context, userID uint, content string, mediaURL *string, commentsEnabled bool) (*model.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, bizerr.InvalidInput("Post content is required")
	}
	if mediaURL != nil {
		if trimmed := strings.TrimSpace(*mediaURL); trimmed != "" {
			mediaURL = &trimmed
		} else {
			mediaURL = nil
		}
	}

	post := &model.Post{
		UserID:          userID,
		Content:         content,
		MediaURL:        mediaURL,
		CommentsEnabled: commentsEnabled,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, bizerr.Internal("post.CreatePost", err)
	}

	logger.L().Info("post created", zap.Uint("post_id", post.ID), zap.Uint("user_id", userID))
	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, postID, userID uint) error {
	ok, err := s.repo.SoftDeleteOwned(ctx, postID, userID)
	if err != nil {
		return bizerr.Internal("post.DeletePost", err)
	}
	if !ok {
		return bizerr.NotFound("Post not found or unauthorized")
	}
	logger.L().Info("post deleted", zap.Uint("post_id", postID), zap.Uint("user_id", userID))
	return nil
}

// GetPostView 帖子详情，匿名浏览者 has_liked 恒为 false
func (s *postService) GetPostView(ctx context.Context, postID uint, viewerID *uint) (*model.PostView, error) {
	post, err := s.repo.GetWithAuthor(ctx, postID)
	if err != nil {
		if bizerr.IsRecordNotFound(err) {
			return nil, bizerr.NotFound("Post not found")
		}
		return nil, bizerr.Internal("post.GetPostView", err)
	}

	views, err := s.enrich(ctx, []model.PostWithAuthor{*post}, viewerID)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// ListUserPosts 用户的帖子，hasMore 仅表示本页已满
func (s *postService) ListUserPosts(ctx context.Context, targetUserID uint, viewerID *uint, page, limit int) ([]model.PostView, bool, error) {
	p := utils.Pagination{Page: page, Limit: limit}
	offset, limit := p.GetPageOffset()

	posts, err := s.repo.ListByUser(ctx, targetUserID, limit, offset)
	if err != nil {
		return nil, false, bizerr.Internal("post.ListUserPosts", err)
	}

	views, err := s.enrich(ctx, posts, viewerID)
	if err != nil {
		return nil, false, err
	}
	return views, len(views) == limit, nil
}

// GetFeed 动态流：本人及关注对象的帖子，按时间倒序
func (s *postService) GetFeed(ctx context.Context, viewerID uint, page, limit int) ([]model.PostView, bool, error) {
	p := utils.Pagination{Page: page, Limit: limit}
	offset, limit := p.GetPageOffset()

	posts, err := s.repo.Feed(ctx, viewerID, limit, offset)
	if err != nil {
		return nil, false, bizerr.Internal("post.GetFeed", err)
	}

	views, err := s.enrich(ctx, posts, &viewerID)
	if err != nil {
		return nil, false, err
	}
	return views, len(views) == limit, nil
}

// enrich 并发执行三组批量查询，并按原有顺序组装结果
func (s *postService) enrich(ctx context.Context, posts []model.PostWithAuthor, viewerID *uint) ([]model.PostView, error) {
	views := make([]model.PostView, len(posts))
	if len(posts) == 0 {
		return views, nil
	}

	ids := make([]uint, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}

	var (
		likeCounts    map[uint]int64
		commentCounts map[uint]int64
		liked         map[uint]bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		likeCounts, err = s.likes.CountLikesByPostIDs(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		commentCounts, err = s.comments.CountCommentsByPostIDs(gctx, ids)
		return err
	})
	if viewerID != nil {
		g.Go(func() (err error) {
			liked, err = s.likes.LikedPostIDs(gctx, *viewerID, ids)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, p := range posts {
		views[i] = model.PostView{
			PostWithAuthor: p,
			LikeCount:      likeCounts[p.ID],
			CommentCount:   commentCounts[p.ID],
			HasLiked:       liked[p.ID],
		}
	}
	return views, nil
}
