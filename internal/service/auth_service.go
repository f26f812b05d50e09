package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
	"unicode"

	"github.com/forumfuncionario/portal-service/config"
	"github.com/forumfuncionario/portal-service/internal/domain"
	"github.com/forumfuncionario/portal-service/internal/dto"
	circuitbreaker "github.com/forumfuncionario/portal-service/internal/infrastructure/circuit-breaker"
	"github.com/forumfuncionario/portal-service/internal/repository"
	pkgdto "github.com/forumfuncionario/portal-service/pkg/dto"
	"github.com/forumfuncionario/portal-service/pkg/errs"
	"github.com/forumfuncionario/portal-service/pkg/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = 2 * time.Hour

// Mailer delivers outbound mail. Satisfied by utils.SMTPMailer.
type Mailer interface {
	Send(to string, subject string, htmlBody string) error
}

type AuthService interface {
	RegistrationStatus(ctx context.Context, username string) (resp dto.RegistrationStatusResponse, err error)
	SignUp(ctx context.Context, payload dto.SignUpRequest) (err error)
	SignIn(ctx context.Context, payload dto.SignInRequest, clientIP string) (resp dto.SignInResponse, err error)
	AddUserToAdminRole(ctx context.Context, userID int64) (err error)
	GetCurrentUser(ctx context.Context, userID int64) (resp dto.UserResponse, err error)
	GetUserByID(ctx context.Context, userID int64) (resp dto.UserResponse, err error)
	ListUsers(ctx context.Context, filter pkgdto.Filter) (resp pkgdto.PaginationResponse, err error)
	UpdateUser(ctx context.Context, payload dto.UpdateUserRequest) (err error)
	ForgotPassword(ctx context.Context, username string) (err error)
	ResetPassword(ctx context.Context, payload dto.ResetPasswordRequest) (err error)
}

type AuthServiceImpl struct {
	userRepo        repository.UserRepository
	protheusRepo    repository.ProtheusRepository
	config          config.Config
	kafkaProducer   *kafka.Conn
	mailer          Mailer
	protheusBreaker *gobreaker.CircuitBreaker[domain.UserProtheus]
}

func CreateNewAuthService(userRepo repository.UserRepository, protheusRepo repository.ProtheusRepository, config config.Config, kafkaProducer *kafka.Conn, mailer Mailer) AuthService {
	return &AuthServiceImpl{
		userRepo:        userRepo,
		protheusRepo:    protheusRepo,
		config:          config,
		kafkaProducer:   kafkaProducer,
		mailer:          mailer,
		protheusBreaker: circuitbreaker.CreateCircuitBreaker[domain.UserProtheus]("protheus-lookup"),
	}
}

func (s *AuthServiceImpl) lookupProtheusUser(ctx context.Context, username string) (domain.UserProtheus, error) {
	return s.protheusBreaker.Execute(func() (domain.UserProtheus, error) {
		return s.protheusRepo.GetUserProtheusByUsername(ctx, username)
	})
}

func (s *AuthServiceImpl) RegistrationStatus(ctx context.Context, username string) (resp dto.RegistrationStatusResponse, err error) {
	protheusUser, err := s.lookupProtheusUser(ctx, username)
	if err != nil {
		return resp, errs.ErrInternalServer
	}

	if protheusUser.Username == "" {
		resp.Status = domain.StatusUsuarioNaoEncontrado
		resp.Message = "Usuário não encontrado."
		return resp, nil
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return resp, err
	}

	if user.ID == 0 {
		resp.Status = domain.StatusUsuarioNaoRegistrado
		resp.Message = "Usuário encontrado, mas não registrado."
		return resp, nil
	}

	resp.Login = true
	resp.Status = domain.StatusUsuarioRegistrado
	resp.Message = "Usuário registrado."
	return resp, nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return errs.NewValidationError("password must be at least 8 characters long")
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasLetter || !hasDigit {
		return errs.NewValidationError("password must contain at least one letter and one digit")
	}

	return nil
}

func (s *AuthServiceImpl) SignUp(ctx context.Context, payload dto.SignUpRequest) (err error) {
	if payload.Username == "" {
		return errs.NewValidationError("username is required")
	}

	if payload.Password != payload.ConfirmPassword {
		return errs.NewValidationError("password confirmation does not match")
	}

	if err := validatePassword(payload.Password); err != nil {
		return err
	}

	protheusUser, err := s.lookupProtheusUser(ctx, payload.Username)
	if err != nil {
		return errs.ErrInternalServer
	}

	if protheusUser.Username == "" {
		return errs.ErrNotRegisteredInPayroll
	}

	user, err := s.userRepo.GetUserByUsername(ctx, payload.Username)
	if err != nil {
		return err
	}

	if user.ID != 0 {
		return errs.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return errs.ErrInternalServer
	}

	userEnt := domain.User{
		Username:       payload.Username,
		RaNome:         payload.Username,
		Email:          protheusUser.Email,
		ProtheusID:     protheusUser.ProtheusID,
		HashedPassword: string(hash),
		SecurityStamp:  ulid.Make().String(),
	}

	id, err := s.userRepo.AddUser(ctx, userEnt)
	if err != nil {
		return err
	}

	s.publishEvent("user_signed_up", dto.UserResponse{
		ID:         id,
		Username:   userEnt.Username,
		RaNome:     userEnt.RaNome,
		Email:      userEnt.Email,
		ProtheusID: userEnt.ProtheusID,
	})

	return nil
}

// SignIn distinguishes an unknown account (not found) from a wrong
// password (invalid credentials).
func (s *AuthServiceImpl) SignIn(ctx context.Context, payload dto.SignInRequest, clientIP string) (resp dto.SignInResponse, err error) {
	user, err := s.userRepo.GetUserByUsername(ctx, payload.Username)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return resp, errs.ErrAccountNotFound
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(payload.Password))
	if err != nil {
		log.Error().Err(err).Str("component", "SignIn").Msg("")
		return resp, errs.ErrInvalidCredentials
	}

	roles, err := s.userRepo.GetRoles(ctx, user.ID)
	if err != nil {
		return
	}

	token, expiration, err := utils.CreateJWTToken(user.ID, user.Username, user.Email, roles, clientIP, s.config.JWTConfig)
	if err != nil {
		log.Error().Err(err).Str("component", "SignIn").Msg("")
		return resp, errs.ErrInternalServer
	}

	resp.Token = token
	resp.Expiration = expiration
	resp.Roles = roles
	resp.ClientIP = clientIP
	resp.User = dto.UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		RaNome:     user.RaNome,
		Email:      user.Email,
		ProtheusID: user.ProtheusID,
		Roles:      roles,
	}

	return
}

func (s *AuthServiceImpl) AddUserToAdminRole(ctx context.Context, userID int64) (err error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return errs.ErrNotFound
	}

	err = s.userRepo.AddRole(ctx, user.ID, domain.RoleAdmin)
	if err != nil {
		return
	}

	if caps, ok := domain.CapabilitiesForRole(domain.RoleAdmin); ok {
		err = s.userRepo.UpdateCapabilities(ctx, user.ID, caps)
		if err != nil {
			return
		}
	}

	s.publishEvent("user_role_granted", map[string]interface{}{
		"user_id": user.ID,
		"role":    domain.RoleAdmin,
	})

	return nil
}

func (s *AuthServiceImpl) GetCurrentUser(ctx context.Context, userID int64) (resp dto.UserResponse, err error) {
	return s.GetUserByID(ctx, userID)
}

func (s *AuthServiceImpl) GetUserByID(ctx context.Context, userID int64) (resp dto.UserResponse, err error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return resp, errs.ErrAccountNotFound
	}

	roles, err := s.userRepo.GetRoles(ctx, user.ID)
	if err != nil {
		return
	}

	resp = dto.UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		RaNome:     user.RaNome,
		Email:      user.Email,
		ProtheusID: user.ProtheusID,
		Roles:      roles,
	}

	return
}

func (s *AuthServiceImpl) ListUsers(ctx context.Context, filter pkgdto.Filter) (resp pkgdto.PaginationResponse, err error) {
	users, err := s.userRepo.GetUsers(ctx, filter)
	if err != nil {
		return
	}

	count, err := s.userRepo.CountUsers(ctx, filter)
	if err != nil {
		return
	}

	records := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		records = append(records, dto.UserResponse{
			ID:         user.ID,
			Username:   user.Username,
			RaNome:     user.RaNome,
			Email:      user.Email,
			ProtheusID: user.ProtheusID,
		})
	}

	resp.Records = records
	resp.Metadata = pkgdto.PaginationMetadata{
		TotalCount: uint64(count),
		Page:       uint64(filter.Page),
		Limit:      filter.Limit,
	}

	return
}

func (s *AuthServiceImpl) UpdateUser(ctx context.Context, payload dto.UpdateUserRequest) (err error) {
	user, err := s.userRepo.GetUserByID(ctx, payload.ID)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return errs.ErrAccountNotFound
	}

	if payload.RaNome != "" {
		user.RaNome = payload.RaNome
	}
	if payload.Email != "" {
		user.Email = payload.Email
	}

	return s.userRepo.UpdateUser(ctx, user)
}

func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, username string) (err error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return errs.ErrAccountNotFound
	}

	resetToken := utils.GeneratePasswordResetToken(user.ID, user.SecurityStamp, s.config.JWTConfig.Secret, resetTokenTTL)
	resetLink := fmt.Sprintf("%s/reset-password?token=%s&username=%s", s.config.FrontendURL, url.QueryEscape(resetToken), url.QueryEscape(user.Username))

	err = s.mailer.Send(user.Email, "Recuperação de Senha",
		fmt.Sprintf("Clique no link abaixo para redefinir sua senha: <a href='%s'>Redefinir Senha</a>", resetLink))
	if err != nil {
		log.Error().Err(err).Str("component", "ForgotPassword").Msg("")
		return errs.ErrEmailDelivery
	}

	log.Info().Str("component", "ForgotPassword").Msg("password reset link sent")

	return nil
}

func (s *AuthServiceImpl) ResetPassword(ctx context.Context, payload dto.ResetPasswordRequest) (err error) {
	user, err := s.userRepo.GetUserByUsername(ctx, payload.Username)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return errs.ErrAccountNotFound
	}

	err = utils.VerifyPasswordResetToken(payload.Token, user.ID, user.SecurityStamp, s.config.JWTConfig.Secret)
	if err != nil {
		return
	}

	if err := validatePassword(payload.NewPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return errs.ErrInternalServer
	}

	// Rotating the stamp invalidates every outstanding reset token.
	return s.userRepo.UpdatePassword(ctx, user.ID, string(hash), ulid.Make().String())
}

func (s *AuthServiceImpl) publishEvent(eventType string, data interface{}) {
	if s.kafkaProducer == nil {
		return
	}

	kafkaMsg := dto.EventMessage{
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		_, err = s.kafkaProducer.WriteMessages(kafka.Message{Value: jsonMsg})
		if err == nil {
			return
		}
		log.Error().Err(err).Str("component", "publishEvent").Msgf("failed to write message (attempt %d/%d)", i+1, maxRetries)
		time.Sleep(time.Second * time.Duration(i+1))
	}
}
