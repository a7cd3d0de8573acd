package app

import (
	"context"
	"unicode/utf8"

	"github.com/chirper-app/chirper-be/db"
	"github.com/chirper-app/chirper-be/model"
	"github.com/chirper-app/chirper-be/ratelimiter"
	"github.com/chirper-app/chirper-be/util"
	"go.uber.org/zap"
)

const MaxContentLength = 280

// PostService validates, rate-limits, and persists new posts. Calls are
// not idempotent: a retry after a network failure creates a second post.
type PostService struct {
	db      db.PostDatabase
	limiter ratelimiter.Limiter
	log     *zap.Logger
}

func NewPostService(db db.PostDatabase, limiter ratelimiter.Limiter, log *zap.Logger) *PostService {
	return &PostService{
		db:      db,
		limiter: limiter,
		log:     log,
	}
}

func (ps *PostService) CreatePost(ctx context.Context, authorId, content string) (*model.Post, *util.HTTPError) {
	length := utf8.RuneCountInString(content)
	if length == 0 {
		return nil, util.BuildValidationHTTPErr("content", "content must not be empty")
	}
	if length > MaxContentLength {
		return nil, util.BuildValidationHTTPErr("content", "content must be at most 280 characters")
	}

	decision, err := ps.limiter.Check(ctx, authorId)
	if err != nil {
		ps.log.Error("error checking rate limit", zap.String("authorId", authorId), zap.Error(err))
		return nil, &util.InternalHTTPErr
	}
	if !decision.Allowed {
		return nil, &util.RateLimitHTTPErr
	}

	post, err := ps.db.CreatePost(ctx, &db.CreatePost{
		AuthorId: authorId,
		Content:  content,
	})
	if err != nil {
		ps.log.Error("error persisting post", zap.String("authorId", authorId), zap.Error(err))
		return nil, util.BuildDbHTTPErr(err)
	}
	return post, nil
}
