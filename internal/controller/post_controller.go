package controller

import (
	"github.com/forumfuncionario/portal-service/internal/dto"
	"github.com/forumfuncionario/portal-service/internal/service"
	"github.com/forumfuncionario/portal-service/pkg/response"
	"github.com/forumfuncionario/portal-service/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type PostController struct {
	service service.PostService
}

func CreatePostController(e *echo.Group, service service.PostService, isLoggedIn echo.MiddlewareFunc) {
	pc := PostController{
		service: service,
	}
	e.POST("/posts", pc.CreatePost, isLoggedIn)
	e.GET("/posts/categoria/:categoria", pc.GetPostsByCategory, isLoggedIn)
	e.GET("/posts/recentes", pc.GetLatestPosts, isLoggedIn)
}

func (c *PostController) CreatePost(e echo.Context) error {
	_, username, _ := utils.ExtractTokenUser(e)

	payload := dto.PostRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "CreatePost").Msg("")
	}

	payload.Author = username

	resp, err := c.service.CreatePost(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *PostController) GetPostsByCategory(e echo.Context) error {
	categoria := e.Param("categoria")

	resp, err := c.service.GetPostsByCategory(e.Request().Context(), categoria)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *PostController) GetLatestPosts(e echo.Context) error {
	resp, err := c.service.GetLatestPosts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
