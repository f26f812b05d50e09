package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/forumfuncionario/portal-service/internal/domain"
	pkgdto "github.com/forumfuncionario/portal-service/pkg/dto"
	"github.com/forumfuncionario/portal-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type UserRepository interface {
	GetUserByUsername(ctx context.Context, username string) (res domain.User, err error)
	GetUserByID(ctx context.Context, id int64) (res domain.User, err error)
	AddUser(ctx context.Context, data domain.User) (id int64, err error)
	UpdateUser(ctx context.Context, data domain.User) (err error)
	DeleteUser(ctx context.Context, id int64) (err error)
	GetUsers(ctx context.Context, filter pkgdto.Filter) (data []domain.User, err error)
	CountUsers(ctx context.Context, filter pkgdto.Filter) (count int64, err error)
	GetRoles(ctx context.Context, userID int64) (roles []string, err error)
	AddRole(ctx context.Context, userID int64, role string) (err error)
	UpdatePassword(ctx context.Context, userID int64, hashedPassword string, securityStamp string) (err error)
	UpdateCapabilities(ctx context.Context, userID int64, caps domain.Capabilities) (err error)
}

type UserRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewUserRepository(db *sqlx.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) GetUserByUsername(ctx context.Context, username string) (res domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM users WHERE username = $1 AND deleted_at IS NULL", username)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetUserByUsername").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, id int64) (res domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM users WHERE id = $1 AND deleted_at IS NULL", id)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetUserByID").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id int64, err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO users(username, ra_nome, email, protheus_id, hashed_password, security_stamp, can_moderate, can_manage_users, created_at, updated_at) VALUES (:username, :ra_nome, :email, :protheus_id, :hashed_password, :security_stamp, :can_moderate, :can_manage_users, :created_at, :updated_at) RETURNING id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return 0, errs.ErrInternalServer
	}

	err = nstmt.GetContext(ctx, &id, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) UpdateUser(ctx context.Context, data domain.User) (err error) {
	data.UpdatedAt = time.Now().UnixMilli()

	_, err = r.db.NamedExecContext(ctx, "UPDATE users SET ra_nome=:ra_nome, email=:email, updated_at=:updated_at WHERE id=:id AND deleted_at IS NULL", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateUser").Msg("")
		return errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) DeleteUser(ctx context.Context, id int64) (err error) {
	_, err = r.db.ExecContext(ctx, "UPDATE users SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL", time.Now().UnixMilli(), id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteUser").Msg("")
		return errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) GetUsers(ctx context.Context, filter pkgdto.Filter) (data []domain.User, err error) {
	query := "SELECT * FROM users WHERE deleted_at IS NULL ORDER BY id"

	args := make(map[string]interface{})

	if filter.Limit != 0 && filter.Page != 0 {
		offset := (filter.Page - 1) * filter.Limit
		query += " LIMIT :limit OFFSET :offset"
		args["limit"] = filter.Limit
		args["offset"] = offset
	}

	nstmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("component", "GetUsers").Msg("")
		return nil, errs.ErrInternalServer
	}

	err = nstmt.SelectContext(ctx, &data, args)
	if err != nil {
		log.Error().Err(err).Str("component", "GetUsers").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *UserRepositoryImpl) CountUsers(ctx context.Context, filter pkgdto.Filter) (count int64, err error) {
	err = r.db.GetContext(ctx, &count, "SELECT COUNT(id) FROM users WHERE deleted_at IS NULL")
	if err != nil {
		log.Error().Err(err).Str("component", "CountUsers").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) GetRoles(ctx context.Context, userID int64) (roles []string, err error) {
	err = r.db.SelectContext(ctx, &roles, "SELECT role FROM user_roles WHERE user_id = $1 ORDER BY role", userID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetRoles").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

// AddRole is idempotent: granting a role the account already holds is a
// no-op enforced by the primary key on (user_id, role).
func (r *UserRepositoryImpl) AddRole(ctx context.Context, userID int64, role string) (err error) {
	_, err = r.db.ExecContext(ctx, "INSERT INTO user_roles(user_id, role) VALUES ($1, $2) ON CONFLICT (user_id, role) DO NOTHING", userID, role)
	if err != nil {
		log.Error().Err(err).Str("component", "AddRole").Msg("")
		return errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, userID int64, hashedPassword string, securityStamp string) (err error) {
	_, err = r.db.ExecContext(ctx, "UPDATE users SET hashed_password = $1, security_stamp = $2, updated_at = $3 WHERE id = $4 AND deleted_at IS NULL", hashedPassword, securityStamp, time.Now().UnixMilli(), userID)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdatePassword").Msg("")
		return errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) UpdateCapabilities(ctx context.Context, userID int64, caps domain.Capabilities) (err error) {
	_, err = r.db.ExecContext(ctx, "UPDATE users SET can_moderate = $1, can_manage_users = $2, updated_at = $3 WHERE id = $4 AND deleted_at IS NULL", caps.CanModerate, caps.CanManageUsers, time.Now().UnixMilli(), userID)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCapabilities").Msg("")
		return errs.ErrInternalServer
	}

	return
}
