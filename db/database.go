package db

import (
	"context"
	"database/sql"

	"github.com/chirper-app/chirper-be/model"

	_ "github.com/go-sql-driver/mysql"
)

type Database interface {
	PostDatabase
	GetSQLDB() *sql.DB
	Close() error
}

type CreatePost struct {
	AuthorId string
	Content  string
}

type PostDatabase interface {
	CreatePost(ctx context.Context, req *CreatePost) (*model.Post, error)
	// GetPostById returns nil, nil when no post has the id.
	GetPostById(ctx context.Context, id string) (*model.Post, error)
	// GetRecentPosts returns at most limit posts ordered by created_at
	// descending, ties broken by id ascending.
	GetRecentPosts(ctx context.Context, limit int) ([]*model.Post, error)
	GetPostsByAuthor(ctx context.Context, authorId string, limit int) ([]*model.Post, error)
}
