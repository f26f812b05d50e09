package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/forumfuncionario/portal-service/config"
	"github.com/forumfuncionario/portal-service/internal/domain"
	"github.com/forumfuncionario/portal-service/internal/dto"
	pkgdto "github.com/forumfuncionario/portal-service/pkg/dto"
	"github.com/forumfuncionario/portal-service/pkg/errs"
	"github.com/forumfuncionario/portal-service/pkg/utils"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users  map[int64]domain.User
	roles  map[int64]map[string]struct{}
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[int64]domain.User),
		roles: make(map[int64]map[string]struct{}),
	}
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id int64) (domain.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) AddUser(_ context.Context, data domain.User) (int64, error) {
	r.nextID++
	data.ID = r.nextID
	r.users[data.ID] = data
	return data.ID, nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, data domain.User) error {
	r.users[data.ID] = data
	return nil
}

func (r *fakeUserRepo) DeleteUser(_ context.Context, id int64) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) GetUsers(_ context.Context, _ pkgdto.Filter) ([]domain.User, error) {
	var users []domain.User
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *fakeUserRepo) CountUsers(_ context.Context, _ pkgdto.Filter) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) GetRoles(_ context.Context, userID int64) ([]string, error) {
	var roles []string
	for role := range r.roles[userID] {
		roles = append(roles, role)
	}
	return roles, nil
}

func (r *fakeUserRepo) AddRole(_ context.Context, userID int64, role string) error {
	if r.roles[userID] == nil {
		r.roles[userID] = make(map[string]struct{})
	}
	r.roles[userID][role] = struct{}{}
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, userID int64, hashedPassword string, securityStamp string) error {
	u := r.users[userID]
	u.HashedPassword = hashedPassword
	u.SecurityStamp = securityStamp
	r.users[userID] = u
	return nil
}

func (r *fakeUserRepo) UpdateCapabilities(_ context.Context, userID int64, caps domain.Capabilities) error {
	u := r.users[userID]
	u.CanModerate = caps.CanModerate
	u.CanManageUsers = caps.CanManageUsers
	r.users[userID] = u
	return nil
}

type fakeProtheusRepo struct {
	records map[string]domain.UserProtheus
	err     error
}

func (r *fakeProtheusRepo) GetUserProtheusByUsername(_ context.Context, username string) (domain.UserProtheus, error) {
	if r.err != nil {
		return domain.UserProtheus{}, r.err
	}
	return r.records[username], nil
}

type fakeMailer struct {
	to      string
	subject string
	body    string
	err     error
}

func (m *fakeMailer) Send(to string, subject string, htmlBody string) error {
	if m.err != nil {
		return m.err
	}
	m.to = to
	m.subject = subject
	m.body = htmlBody
	return nil
}

type AuthServiceTestSuite struct {
	suite.Suite
	userRepo     *fakeUserRepo
	protheusRepo *fakeProtheusRepo
	mailer       *fakeMailer
	svc          AuthService
	cfg          config.Config
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.userRepo = newFakeUserRepo()
	s.protheusRepo = &fakeProtheusRepo{records: map[string]domain.UserProtheus{
		"jdoe": {Username: "jdoe", ProtheusID: "001042", Email: "jdoe@example.com"},
	}}
	s.mailer = &fakeMailer{}
	s.cfg = config.Config{
		FrontendURL: "https://portal.example.com",
		JWTConfig: config.JWTConfig{
			Secret:        "test-secret",
			Issuer:        "portal-service",
			Audience:      "portal-frontend",
			LifetimeHours: 3,
		},
	}
	s.svc = CreateNewAuthService(s.userRepo, s.protheusRepo, s.cfg, nil, s.mailer)
}

func (s *AuthServiceTestSuite) signUp(username, password string) {
	err := s.svc.SignUp(context.Background(), dto.SignUpRequest{
		Username:        username,
		Password:        password,
		ConfirmPassword: password,
	})
	s.Require().NoError(err)
}

func (s *AuthServiceTestSuite) TestSignUp_NotRegisteredInPayroll() {
	err := s.svc.SignUp(context.Background(), dto.SignUpRequest{
		Username:        "ghost",
		Password:        "P@ss1234",
		ConfirmPassword: "P@ss1234",
	})

	s.ErrorIs(err, errs.ErrNotRegisteredInPayroll)
	s.Empty(s.userRepo.users)
}

func (s *AuthServiceTestSuite) TestSignUp_UsernameTaken() {
	s.signUp("jdoe", "P@ss1234")

	err := s.svc.SignUp(context.Background(), dto.SignUpRequest{
		Username:        "jdoe",
		Password:        "P@ss1234",
		ConfirmPassword: "P@ss1234",
	})

	s.ErrorIs(err, errs.ErrUsernameTaken)
	s.Len(s.userRepo.users, 1)
}

func (s *AuthServiceTestSuite) TestSignUp_CopiesPayrollRecord() {
	s.signUp("jdoe", "P@ss1234")

	user, err := s.userRepo.GetUserByUsername(context.Background(), "jdoe")
	s.Require().NoError(err)
	s.Equal("001042", user.ProtheusID)
	s.Equal("jdoe@example.com", user.Email)
	s.NotEmpty(user.SecurityStamp)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("P@ss1234")))
}

func (s *AuthServiceTestSuite) TestSignUp_PasswordPolicy() {
	testCases := []struct {
		name     string
		password string
		confirm  string
	}{
		{name: "too short", password: "a1", confirm: "a1"},
		{name: "no digit", password: "abcdefgh", confirm: "abcdefgh"},
		{name: "no letter", password: "12345678", confirm: "12345678"},
		{name: "confirmation mismatch", password: "P@ss1234", confirm: "P@ss5678"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.svc.SignUp(context.Background(), dto.SignUpRequest{
				Username:        "jdoe",
				Password:        tc.password,
				ConfirmPassword: tc.confirm,
			})

			var validationErr *errs.ValidationError
			s.ErrorAs(err, &validationErr)
			s.Empty(s.userRepo.users)
		})
	}
}

func (s *AuthServiceTestSuite) TestSignUp_PayrollLookupFailure() {
	s.protheusRepo.err = errors.New("connection refused")

	err := s.svc.SignUp(context.Background(), dto.SignUpRequest{
		Username:        "jdoe",
		Password:        "P@ss1234",
		ConfirmPassword: "P@ss1234",
	})

	s.ErrorIs(err, errs.ErrInternalServer)
	s.Empty(s.userRepo.users)
}

func (s *AuthServiceTestSuite) TestSignIn_UnknownUser() {
	resp, err := s.svc.SignIn(context.Background(), dto.SignInRequest{Username: "nobody", Password: "P@ss1234"}, "")

	s.ErrorIs(err, errs.ErrAccountNotFound)
	s.Empty(resp.Token)
}

func (s *AuthServiceTestSuite) TestSignIn_WrongPassword() {
	s.signUp("jdoe", "P@ss1234")

	resp, err := s.svc.SignIn(context.Background(), dto.SignInRequest{Username: "jdoe", Password: "wrong"}, "")

	s.ErrorIs(err, errs.ErrInvalidCredentials)
	s.Empty(resp.Token)
}

func (s *AuthServiceTestSuite) TestSignIn_IssuesCredential() {
	s.signUp("jdoe", "P@ss1234")
	s.Require().NoError(s.svc.AddUserToAdminRole(context.Background(), 1))

	resp, err := s.svc.SignIn(context.Background(), dto.SignInRequest{Username: "jdoe", Password: "P@ss1234"}, "10.0.0.7")
	s.Require().NoError(err)

	s.NotEmpty(resp.Token)
	s.Contains(resp.Roles, domain.RoleAdmin)
	s.Equal("jdoe", resp.User.Username)
	s.WithinDuration(time.Now().Add(3*time.Hour), resp.Expiration, 5*time.Second)

	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTConfig.Secret), nil
	})
	s.Require().NoError(err)
	s.True(token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	s.Equal("jdoe", claims["sub"])
	s.Equal("10.0.0.7", claims["client_ip"])
	s.NotEmpty(claims["jti"])
}

func (s *AuthServiceTestSuite) TestAddUserToAdminRole_Idempotent() {
	s.signUp("jdoe", "P@ss1234")

	s.Require().NoError(s.svc.AddUserToAdminRole(context.Background(), 1))
	s.Require().NoError(s.svc.AddUserToAdminRole(context.Background(), 1))

	s.Len(s.userRepo.roles[1], 1)
	s.True(s.userRepo.users[1].CanModerate)
	s.True(s.userRepo.users[1].CanManageUsers)
}

func (s *AuthServiceTestSuite) TestAddUserToAdminRole_UnknownUser() {
	err := s.svc.AddUserToAdminRole(context.Background(), 42)
	s.ErrorIs(err, errs.ErrNotFound)
}

func (s *AuthServiceTestSuite) TestRegistrationStatus() {
	resp, err := s.svc.RegistrationStatus(context.Background(), "ghost")
	s.Require().NoError(err)
	s.Equal(domain.StatusUsuarioNaoEncontrado, resp.Status)

	resp, err = s.svc.RegistrationStatus(context.Background(), "jdoe")
	s.Require().NoError(err)
	s.Equal(domain.StatusUsuarioNaoRegistrado, resp.Status)
	s.False(resp.Login)

	s.signUp("jdoe", "P@ss1234")
	resp, err = s.svc.RegistrationStatus(context.Background(), "jdoe")
	s.Require().NoError(err)
	s.Equal(domain.StatusUsuarioRegistrado, resp.Status)
	s.True(resp.Login)
}

func (s *AuthServiceTestSuite) TestUpdateUser() {
	s.signUp("jdoe", "P@ss1234")

	err := s.svc.UpdateUser(context.Background(), dto.UpdateUserRequest{
		ID:     1,
		RaNome: "John Doe",
	})
	s.Require().NoError(err)

	s.Equal("John Doe", s.userRepo.users[1].RaNome)
	s.Equal("jdoe@example.com", s.userRepo.users[1].Email)

	err = s.svc.UpdateUser(context.Background(), dto.UpdateUserRequest{ID: 42})
	s.ErrorIs(err, errs.ErrAccountNotFound)
}

func (s *AuthServiceTestSuite) TestGetCurrentUser_DeletedAccount() {
	s.signUp("jdoe", "P@ss1234")
	s.Require().NoError(s.userRepo.DeleteUser(context.Background(), 1))

	_, err := s.svc.GetCurrentUser(context.Background(), 1)
	s.ErrorIs(err, errs.ErrAccountNotFound)
}

func (s *AuthServiceTestSuite) TestForgotPassword_SendsResetLink() {
	s.signUp("jdoe", "P@ss1234")

	err := s.svc.ForgotPassword(context.Background(), "jdoe")
	s.Require().NoError(err)

	s.Equal("jdoe@example.com", s.mailer.to)
	s.Contains(s.mailer.body, "https://portal.example.com/reset-password?token=")
	s.Contains(s.mailer.body, "username=jdoe")
}

func (s *AuthServiceTestSuite) TestForgotPassword_UnknownUser() {
	err := s.svc.ForgotPassword(context.Background(), "nobody")
	s.ErrorIs(err, errs.ErrAccountNotFound)
}

func (s *AuthServiceTestSuite) TestForgotPassword_DeliveryFailure() {
	s.signUp("jdoe", "P@ss1234")
	s.mailer.err = errors.New("smtp: connection refused")

	err := s.svc.ForgotPassword(context.Background(), "jdoe")
	s.ErrorIs(err, errs.ErrEmailDelivery)
}

func (s *AuthServiceTestSuite) TestResetPassword_RotatesStamp() {
	s.signUp("jdoe", "P@ss1234")
	user := s.userRepo.users[1]

	token := utils.GeneratePasswordResetToken(user.ID, user.SecurityStamp, s.cfg.JWTConfig.Secret, time.Hour)

	err := s.svc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Username:    "jdoe",
		Token:       token,
		NewPassword: "N3wSenha99",
	})
	s.Require().NoError(err)

	updated := s.userRepo.users[1]
	s.NoError(bcrypt.CompareHashAndPassword([]byte(updated.HashedPassword), []byte("N3wSenha99")))
	s.NotEqual(user.SecurityStamp, updated.SecurityStamp)

	// The stamp rotation makes the token single-use.
	err = s.svc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Username:    "jdoe",
		Token:       token,
		NewPassword: "An0therSenha",
	})
	s.ErrorIs(err, errs.ErrInvalidResetToken)
}

func (s *AuthServiceTestSuite) TestResetPassword_RejectsWeakPassword() {
	s.signUp("jdoe", "P@ss1234")
	user := s.userRepo.users[1]

	token := utils.GeneratePasswordResetToken(user.ID, user.SecurityStamp, s.cfg.JWTConfig.Secret, time.Hour)

	err := s.svc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Username:    "jdoe",
		Token:       token,
		NewPassword: "short",
	})

	var validationErr *errs.ValidationError
	s.ErrorAs(err, &validationErr)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
