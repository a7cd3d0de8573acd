package mysql

import (
	"context"
	"time"

	db2 "github.com/chirper-app/chirper-be/db"
	"github.com/chirper-app/chirper-be/model"
	"github.com/google/uuid"
	"github.com/upper/db/v4"
)

type PostDB struct {
	sess db.Session
}

func getPostDB(sess db.Session) *PostDB {
	return &PostDB{sess}
}

type flattenedPost struct {
	Id        string    `db:"id"`
	AuthorId  string    `db:"author_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

func (pdb *PostDB) CreatePost(ctx context.Context, req *db2.CreatePost) (*model.Post, error) {
	post := &model.Post{
		Id:       uuid.NewString(),
		AuthorId: req.AuthorId,
		Content:  req.Content,
		// DATETIME(6) column; anything finer is lost on the round trip
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	if _, err := pdb.sess.SQL().
		InsertInto("post").
		Columns("id", "author_id", "content", "created_at").
		Values(post.Id, post.AuthorId, post.Content, post.CreatedAt).
		ExecContext(ctx); err != nil {
		return nil, err
	}
	return post, nil
}

func (pdb *PostDB) GetPostById(ctx context.Context, id string) (*model.Post, error) {
	var flattened flattenedPost
	if err := pdb.sess.SQL().
		Select("id", "author_id", "content", "created_at").
		From("post").
		Where("id = ?", id).
		IteratorContext(ctx).
		One(&flattened); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return buildPostFromFlattened(&flattened), nil
}

func (pdb *PostDB) GetRecentPosts(ctx context.Context, limit int) ([]*model.Post, error) {
	return pdb.getPosts(ctx, nil, limit)
}

func (pdb *PostDB) GetPostsByAuthor(ctx context.Context, authorId string, limit int) ([]*model.Post, error) {
	return pdb.getPosts(ctx, db.Cond{"author_id": authorId}, limit)
}

func (pdb *PostDB) getPosts(ctx context.Context, cond db.Cond, limit int) ([]*model.Post, error) {
	selector := pdb.sess.SQL().
		Select("id", "author_id", "content", "created_at").
		From("post")
	if cond != nil {
		selector = selector.Where(cond)
	}
	var flattenedPosts []flattenedPost
	if err := selector.
		OrderBy("created_at DESC", "id ASC").
		Limit(limit).
		IteratorContext(ctx).
		All(&flattenedPosts); err != nil {
		return nil, err
	}
	posts := make([]*model.Post, len(flattenedPosts))
	for i := range flattenedPosts {
		posts[i] = buildPostFromFlattened(&flattenedPosts[i])
	}
	return posts, nil
}

func buildPostFromFlattened(flattened *flattenedPost) *model.Post {
	return &model.Post{
		Id:        flattened.Id,
		AuthorId:  flattened.AuthorId,
		Content:   flattened.Content,
		CreatedAt: flattened.CreatedAt,
	}
}
