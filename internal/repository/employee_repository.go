package repository

import (
	"context"

	"github.com/forumfuncionario/portal-service/internal/domain"
	"github.com/forumfuncionario/portal-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type EmployeeRepository interface {
	GetEmployeesByCurrentMonth(ctx context.Context) (data []domain.Employee, err error)
}

type EmployeeRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewEmployeeRepository(db *sqlx.DB) EmployeeRepository {
	return &EmployeeRepositoryImpl{db: db}
}

// GetEmployeesByCurrentMonth lists active payroll employees whose
// birthday falls in the current month. RA_SITFOLH filters to active
// payroll situations.
func (r *EmployeeRepositoryImpl) GetEmployeesByCurrentMonth(ctx context.Context) (data []domain.Employee, err error) {
	err = r.db.SelectContext(ctx, &data, `SELECT ra_nome AS nome, ra_nasc AS dt_nasc, ra_filial AS filial
		FROM sra010
		WHERE ra_sitfolh IN ('', 'A', 'F') AND d_e_l_e_t_ <> '*'
		AND EXTRACT(MONTH FROM ra_nasc) = EXTRACT(MONTH FROM CURRENT_DATE)`)
	if err != nil {
		log.Error().Err(err).Str("component", "GetEmployeesByCurrentMonth").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}
