package service

import (
	"context"

	"github.com/forumfuncionario/portal-service/internal/dto"
	"github.com/forumfuncionario/portal-service/internal/repository"
	"github.com/forumfuncionario/portal-service/pkg/errs"
)

type RamalService interface {
	GetRamais(ctx context.Context) (resp []dto.RamalResponse, err error)
}

type RamalServiceImpl struct {
	repo repository.RamalRepository
}

func CreateNewRamalService(repo repository.RamalRepository) RamalService {
	return &RamalServiceImpl{repo: repo}
}

func (s *RamalServiceImpl) GetRamais(ctx context.Context) (resp []dto.RamalResponse, err error) {
	ramais, err := s.repo.GetRamais(ctx)
	if err != nil {
		return
	}

	if len(ramais) == 0 {
		return nil, errs.ErrNotFound
	}

	for _, ramal := range ramais {
		resp = append(resp, dto.RamalResponse{
			ID:        ramal.ID,
			Name:      ramal.Name,
			Extension: ramal.Extension,
		})
	}

	return
}
