package repository

import (
	"context"
	"time"

	"github.com/forumfuncionario/portal-service/internal/domain"
	"github.com/forumfuncionario/portal-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type PostRepository interface {
	AddPost(ctx context.Context, data domain.Post) (id int64, err error)
	GetPostsByCategory(ctx context.Context, category string) (data []domain.Post, err error)
	GetLatestPosts(ctx context.Context, limit int) (data []domain.Post, err error)
}

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewPostRepository(db *sqlx.DB) PostRepository {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) AddPost(ctx context.Context, data domain.Post) (id int64, err error) {
	data.CreatedAt = time.Now().UnixMilli()
	data.Active = true

	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO posts(title, body, author, category, tags, active, created_at) VALUES (:title, :body, :author, :category, :tags, :active, :created_at) RETURNING id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddPost").Msg("")
		return 0, errs.ErrInternalServer
	}

	err = nstmt.GetContext(ctx, &id, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddPost").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *PostRepositoryImpl) GetPostsByCategory(ctx context.Context, category string) (data []domain.Post, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM posts WHERE category = $1 AND active = TRUE ORDER BY created_at DESC", category)
	if err != nil {
		log.Error().Err(err).Str("component", "GetPostsByCategory").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *PostRepositoryImpl) GetLatestPosts(ctx context.Context, limit int) (data []domain.Post, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM posts WHERE active = TRUE ORDER BY created_at DESC LIMIT $1", limit)
	if err != nil {
		log.Error().Err(err).Str("component", "GetLatestPosts").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}
