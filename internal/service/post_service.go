package service

import (
	"context"

	"github.com/forumfuncionario/portal-service/internal/domain"
	"github.com/forumfuncionario/portal-service/internal/dto"
	"github.com/forumfuncionario/portal-service/internal/repository"
	"github.com/forumfuncionario/portal-service/pkg/errs"
)

const latestPostsLimit = 20

type PostService interface {
	CreatePost(ctx context.Context, payload dto.PostRequest) (resp dto.PostResponse, err error)
	GetPostsByCategory(ctx context.Context, category string) (resp []dto.PostResponse, err error)
	GetLatestPosts(ctx context.Context) (resp []dto.PostResponse, err error)
}

type PostServiceImpl struct {
	repo repository.PostRepository
}

func CreateNewPostService(repo repository.PostRepository) PostService {
	return &PostServiceImpl{repo: repo}
}

func toPostResponse(post domain.Post) dto.PostResponse {
	return dto.PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Body:      post.Body,
		Author:    post.Author,
		Category:  post.Category,
		Tags:      post.Tags,
		CreatedAt: post.CreatedAt,
		EditedAt:  post.EditedAt,
	}
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, payload dto.PostRequest) (resp dto.PostResponse, err error) {
	if payload.Title == "" || payload.Body == "" {
		return resp, errs.NewValidationError("title and body are required")
	}

	category, ok := domain.ParseCategory(payload.Category)
	if !ok {
		return resp, errs.ErrInvalidCategory
	}

	post := domain.Post{
		Title:    payload.Title,
		Body:     payload.Body,
		Author:   payload.Author,
		Category: string(category),
		Tags:     payload.Tags,
		Active:   true,
	}

	id, err := s.repo.AddPost(ctx, post)
	if err != nil {
		return
	}

	post.ID = id

	return toPostResponse(post), nil
}

func (s *PostServiceImpl) GetPostsByCategory(ctx context.Context, category string) (resp []dto.PostResponse, err error) {
	parsed, ok := domain.ParseCategory(category)
	if !ok {
		return nil, errs.ErrInvalidCategory
	}

	posts, err := s.repo.GetPostsByCategory(ctx, string(parsed))
	if err != nil {
		return
	}

	if len(posts) == 0 {
		return nil, errs.ErrNotFound
	}

	for _, post := range posts {
		resp = append(resp, toPostResponse(post))
	}

	return
}

func (s *PostServiceImpl) GetLatestPosts(ctx context.Context) (resp []dto.PostResponse, err error) {
	posts, err := s.repo.GetLatestPosts(ctx, latestPostsLimit)
	if err != nil {
		return
	}

	if len(posts) == 0 {
		return nil, errs.ErrNotFound
	}

	for _, post := range posts {
		resp = append(resp, toPostResponse(post))
	}

	return
}
