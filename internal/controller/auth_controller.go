package controller

import (
	"strconv"

	"github.com/forumfuncionario/portal-service/internal/dto"
	"github.com/forumfuncionario/portal-service/internal/service"
	pkgdto "github.com/forumfuncionario/portal-service/pkg/dto"
	"github.com/forumfuncionario/portal-service/pkg/errs"
	"github.com/forumfuncionario/portal-service/pkg/response"
	"github.com/forumfuncionario/portal-service/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	service service.AuthService
}

func CreateAuthController(e *echo.Group, service service.AuthService, isLoggedIn echo.MiddlewareFunc, isAdmin echo.MiddlewareFunc) {
	ac := AuthController{
		service: service,
	}
	e.GET("/auth/registration-status/:username", ac.RegistrationStatus)
	e.POST("/auth/sign-up", ac.SignUp)
	e.POST("/auth/sign-in", ac.SignIn)
	e.POST("/auth/forgot-password", ac.ForgotPassword)
	e.POST("/auth/reset-password", ac.ResetPassword)
	e.POST("/auth/add-user-to-admin-role", ac.AddUserToAdminRole, isLoggedIn, isAdmin)
	e.GET("/auth/get-current-user", ac.GetCurrentUser, isLoggedIn)
	e.GET("/auth/list-users", ac.ListUsers, isLoggedIn, isAdmin)
	e.GET("/auth/users/:id", ac.GetUser, isLoggedIn)
}

func (c *AuthController) RegistrationStatus(e echo.Context) error {
	username := e.Param("username")

	resp, err := c.service.RegistrationStatus(e.Request().Context(), username)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *AuthController) SignUp(e echo.Context) error {
	payload := dto.SignUpRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "SignUp").Msg("")
	}

	err = c.service.SignUp(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *AuthController) SignIn(e echo.Context) error {
	payload := dto.SignInRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "SignIn").Msg("")
	}

	respPayload, err := c.service.SignIn(e.Request().Context(), payload, e.RealIP())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *AuthController) AddUserToAdminRole(e echo.Context) error {
	payload := dto.AddAdminRoleRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUserToAdminRole").Msg("")
	}

	err = c.service.AddUserToAdminRole(e.Request().Context(), payload.UserID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *AuthController) GetCurrentUser(e echo.Context) error {
	userID, _, _ := utils.ExtractTokenUser(e)

	resp, err := c.service.GetCurrentUser(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *AuthController) ListUsers(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "ListUsers").Msg("")
	}

	resp, err := c.service.ListUsers(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *AuthController) GetUser(e echo.Context) error {
	id := e.Param("id")
	idInt, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.GetUserByID(e.Request().Context(), idInt)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *AuthController) ForgotPassword(e echo.Context) error {
	payload := dto.ForgotPasswordRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "ForgotPassword").Msg("")
	}

	err = c.service.ForgotPassword(e.Request().Context(), payload.Username)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "password reset link sent", nil)
}

func (c *AuthController) ResetPassword(e echo.Context) error {
	payload := dto.ResetPasswordRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "ResetPassword").Msg("")
	}

	err = c.service.ResetPassword(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "password has been reset", nil)
}
