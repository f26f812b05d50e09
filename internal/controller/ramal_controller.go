package controller

import (
	"github.com/forumfuncionario/portal-service/internal/service"
	"github.com/forumfuncionario/portal-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type RamalController struct {
	service service.RamalService
}

func CreateRamalController(e *echo.Group, service service.RamalService, isLoggedIn echo.MiddlewareFunc) {
	rc := RamalController{
		service: service,
	}
	e.GET("/ramais", rc.GetRamais, isLoggedIn)
}

func (c *RamalController) GetRamais(e echo.Context) error {
	resp, err := c.service.GetRamais(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
