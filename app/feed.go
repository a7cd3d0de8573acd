package app

import (
	"context"

	"github.com/chirper-app/chirper-be/db"
	"github.com/chirper-app/chirper-be/model"
	"github.com/chirper-app/chirper-be/services"
	"github.com/chirper-app/chirper-be/util"
	"go.uber.org/zap"
)

// FeedService joins pages of posts with their authors' public profiles.
// The post store and the identity directory are independently owned read
// models; the join happens here at query time, so display data may be
// stale relative to the directory.
type FeedService struct {
	db        db.PostDatabase
	directory services.IdentityDirectory
	log       *zap.Logger
	pageSize  int
}

func NewFeedService(db db.PostDatabase, directory services.IdentityDirectory, log *zap.Logger, pageSize int) *FeedService {
	return &FeedService{
		db:        db,
		directory: directory,
		log:       log,
		pageSize:  pageSize,
	}
}

func (fs *FeedService) GetFeed(ctx context.Context) ([]*model.FeedEntry, *util.HTTPError) {
	posts, err := fs.db.GetRecentPosts(ctx, fs.pageSize)
	if err != nil {
		fs.log.Error("error fetching feed page", zap.Error(err))
		return nil, util.BuildDbHTTPErr(err)
	}
	return fs.joinAuthors(ctx, posts)
}

func (fs *FeedService) GetFeedByAuthor(ctx context.Context, authorId string) ([]*model.FeedEntry, *util.HTTPError) {
	posts, err := fs.db.GetPostsByAuthor(ctx, authorId, fs.pageSize)
	if err != nil {
		fs.log.Error("error fetching author feed", zap.String("authorId", authorId), zap.Error(err))
		return nil, util.BuildDbHTTPErr(err)
	}
	return fs.joinAuthors(ctx, posts)
}

func (fs *FeedService) GetPostById(ctx context.Context, id string) (*model.FeedEntry, *util.HTTPError) {
	post, err := fs.db.GetPostById(ctx, id)
	if err != nil {
		fs.log.Error("error fetching post", zap.String("postId", id), zap.Error(err))
		return nil, util.BuildDbHTTPErr(err)
	}
	if post == nil {
		return nil, util.BuildNotFoundHTTPErr("post not found")
	}
	entries, httpErr := fs.joinAuthors(ctx, []*model.Post{post})
	if httpErr != nil {
		return nil, httpErr
	}
	return entries[0], nil
}

// joinAuthors resolves every author through one batched directory lookup.
// A post whose author is missing from the directory is a consistency fault
// between the two read models: the whole page fails rather than silently
// dropping the entry.
func (fs *FeedService) joinAuthors(ctx context.Context, posts []*model.Post) ([]*model.FeedEntry, *util.HTTPError) {
	authors, err := fs.directory.LookupByIds(ctx, distinctAuthorIds(posts))
	if err != nil {
		fs.log.Error("error fetching authors from directory", zap.Error(err))
		return nil, &util.InternalHTTPErr
	}

	entries := make([]*model.FeedEntry, len(posts))
	for i, post := range posts {
		author, found := authors[post.AuthorId]
		if !found {
			fs.log.Error("post author missing from identity directory",
				zap.String("postId", post.Id),
				zap.String("authorId", post.AuthorId))
			return nil, &util.InternalHTTPErr
		}
		entries[i] = &model.FeedEntry{
			Post:   post,
			Author: author,
		}
	}
	return entries, nil
}

func distinctAuthorIds(posts []*model.Post) []string {
	seen := make(map[string]bool, len(posts))
	ids := make([]string, 0, len(posts))
	for _, post := range posts {
		if !seen[post.AuthorId] {
			seen[post.AuthorId] = true
			ids = append(ids, post.AuthorId)
		}
	}
	return ids
}
