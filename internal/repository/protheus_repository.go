package repository

import (
	"context"
	"database/sql"

	"github.com/forumfuncionario/portal-service/internal/domain"
	"github.com/forumfuncionario/portal-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type ProtheusRepository interface {
	GetUserProtheusByUsername(ctx context.Context, username string) (res domain.UserProtheus, err error)
}

type ProtheusRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewProtheusRepository(db *sqlx.DB) ProtheusRepository {
	return &ProtheusRepositoryImpl{db: db}
}

// GetUserProtheusByUsername reads the payroll user table. Rows flagged
// with the Protheus logical-delete marker are ignored. A zero-value
// record with nil error means not found.
func (r *ProtheusRepositoryImpl) GetUserProtheusByUsername(ctx context.Context, username string) (res domain.UserProtheus, err error) {
	row := r.db.QueryRowxContext(ctx, `SELECT
			usr_codigo AS username,
			usr_id AS protheus_id,
			usr_email AS email
		FROM sys_usr
		WHERE d_e_l_e_t_ <> '*'
		AND usr_codigo = $1`, username)

	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetUserProtheusByUsername").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}
