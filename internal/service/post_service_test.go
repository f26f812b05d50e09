package service

import (
	"context"
	"testing"

	"github.com/forumfuncionario/portal-service/internal/domain"
	"github.com/forumfuncionario/portal-service/internal/dto"
	"github.com/forumfuncionario/portal-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePostRepo struct {
	posts  []domain.Post
	nextID int64
}

func (r *fakePostRepo) AddPost(_ context.Context, data domain.Post) (int64, error) {
	r.nextID++
	data.ID = r.nextID
	r.posts = append(r.posts, data)
	return data.ID, nil
}

func (r *fakePostRepo) GetPostsByCategory(_ context.Context, category string) ([]domain.Post, error) {
	var out []domain.Post
	for _, p := range r.posts {
		if p.Category == category && p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) GetLatestPosts(_ context.Context, limit int) ([]domain.Post, error) {
	if len(r.posts) > limit {
		return r.posts[len(r.posts)-limit:], nil
	}
	return r.posts, nil
}

func TestCreatePost_UnknownCategory(t *testing.T) {
	repo := &fakePostRepo{}
	svc := CreateNewPostService(repo)

	_, err := svc.CreatePost(context.Background(), dto.PostRequest{
		Title:    "Novo benefício",
		Body:     "Detalhes do benefício",
		Category: "Fofocas",
		Author:   "jdoe",
	})

	assert.ErrorIs(t, err, errs.ErrInvalidCategory)
	assert.Empty(t, repo.posts)
}

func TestCreatePost_CanonicalizesCategory(t *testing.T) {
	repo := &fakePostRepo{}
	svc := CreateNewPostService(repo)

	resp, err := svc.CreatePost(context.Background(), dto.PostRequest{
		Title:    "Comunicado",
		Body:     "Conteúdo do comunicado",
		Category: "fiquepordentro",
		Tags:     []string{"aviso", "geral"},
		Author:   "jdoe",
	})

	require.NoError(t, err)
	assert.Equal(t, "FiquePorDentro", resp.Category)
	assert.Equal(t, "jdoe", resp.Author)
	require.Len(t, repo.posts, 1)
	assert.True(t, repo.posts[0].Active)
}

func TestCreatePost_RequiresTitleAndBody(t *testing.T) {
	repo := &fakePostRepo{}
	svc := CreateNewPostService(repo)

	_, err := svc.CreatePost(context.Background(), dto.PostRequest{Category: "Rh"})

	var validationErr *errs.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Empty(t, repo.posts)
}

func TestGetPostsByCategory(t *testing.T) {
	repo := &fakePostRepo{}
	svc := CreateNewPostService(repo)

	_, err := svc.CreatePost(context.Background(), dto.PostRequest{
		Title:    "Vagas internas",
		Body:     "Confira as vagas",
		Category: "Rh",
		Author:   "jdoe",
	})
	require.NoError(t, err)

	resp, err := svc.GetPostsByCategory(context.Background(), "rh")
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Vagas internas", resp[0].Title)

	_, err = svc.GetPostsByCategory(context.Background(), "Inexistente")
	assert.ErrorIs(t, err, errs.ErrInvalidCategory)

	_, err = svc.GetPostsByCategory(context.Background(), "Qualidade")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestGetLatestPosts_Empty(t *testing.T) {
	svc := CreateNewPostService(&fakePostRepo{})

	_, err := svc.GetLatestPosts(context.Background())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
