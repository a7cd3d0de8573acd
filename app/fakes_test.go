package app

import (
	"context"
	"errors"
	"time"

	"github.com/chirper-app/chirper-be/db"
	"github.com/chirper-app/chirper-be/model"
	"github.com/chirper-app/chirper-be/ratelimiter"
	"github.com/google/uuid"
)

type fakePostDB struct {
	posts     []*model.Post
	createErr error
	fetchErr  error
}

func (f *fakePostDB) CreatePost(ctx context.Context, req *db.CreatePost) (*model.Post, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	post := &model.Post{
		Id:        uuid.NewString(),
		AuthorId:  req.AuthorId,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}
	f.posts = append(f.posts, post)
	return post, nil
}

func (f *fakePostDB) GetPostById(ctx context.Context, id string) (*model.Post, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	for _, post := range f.posts {
		if post.Id == id {
			return post, nil
		}
	}
	return nil, nil
}

func (f *fakePostDB) GetRecentPosts(ctx context.Context, limit int) ([]*model.Post, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	if len(f.posts) > limit {
		return f.posts[:limit], nil
	}
	return f.posts, nil
}

func (f *fakePostDB) GetPostsByAuthor(ctx context.Context, authorId string, limit int) ([]*model.Post, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	var posts []*model.Post
	for _, post := range f.posts {
		if post.AuthorId == authorId && len(posts) < limit {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

type fakeDirectory struct {
	profiles    map[string]*model.PublicProfile
	lookupErr   error
	lookupCalls int
	lastIds     []string
}

func (f *fakeDirectory) LookupByIds(ctx context.Context, ids []string) (map[string]*model.PublicProfile, error) {
	f.lookupCalls++
	f.lastIds = ids
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	found := map[string]*model.PublicProfile{}
	for _, id := range ids {
		if profile, ok := f.profiles[id]; ok {
			found[id] = profile
		}
	}
	return found, nil
}

func (f *fakeDirectory) LookupByUsername(ctx context.Context, username string) (*model.PublicProfile, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, profile := range f.profiles {
		if profile.Username == username {
			return profile, nil
		}
	}
	return nil, nil
}

type fakeLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (f *fakeLimiter) Check(ctx context.Context, key string) (ratelimiter.Decision, error) {
	f.keys = append(f.keys, key)
	if f.err != nil {
		return ratelimiter.Decision{}, f.err
	}
	return ratelimiter.Decision{Allowed: f.allowed}, nil
}

var errDbDown = errors.New("db down")
