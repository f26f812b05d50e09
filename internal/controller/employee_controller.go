package controller

import (
	"github.com/forumfuncionario/portal-service/internal/service"
	"github.com/forumfuncionario/portal-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type EmployeeController struct {
	service service.EmployeeService
}

func CreateEmployeeController(e *echo.Group, service service.EmployeeService) {
	ec := EmployeeController{
		service: service,
	}
	e.GET("/employees/birthdays/current-month", ec.GetBirthdaysCurrentMonth)
}

func (c *EmployeeController) GetBirthdaysCurrentMonth(e echo.Context) error {
	resp, err := c.service.GetBirthdaysCurrentMonth(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
