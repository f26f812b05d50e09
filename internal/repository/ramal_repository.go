package repository

import (
	"context"

	"github.com/forumfuncionario/portal-service/internal/domain"
	"github.com/forumfuncionario/portal-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type RamalRepository interface {
	GetRamais(ctx context.Context) (data []domain.Ramal, err error)
}

type RamalRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewRamalRepository(db *sqlx.DB) RamalRepository {
	return &RamalRepositoryImpl{db: db}
}

func (r *RamalRepositoryImpl) GetRamais(ctx context.Context) (data []domain.Ramal, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT id, name, ramal_number FROM ramais ORDER BY name")
	if err != nil {
		log.Error().Err(err).Str("component", "GetRamais").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}
