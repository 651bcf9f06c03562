package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pocket/di"
	"pocket/domain"
)

func registerArticleRoutes(api *echo.Group, container *di.ApplicationComponents) {
	api.GET("/articles", handleListArticles(container))
	api.POST("/articles", handleCreateArticle(container))
	api.GET("/articles/:id", handleGetArticle(container))
	api.PATCH("/articles/:id", handleUpdateArticle(container))
	api.DELETE("/articles/:id", handleDeleteArticle(container))
	api.POST("/articles/:id/opened", handleMarkArticleOpened(container))
}

func handleListArticles(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articles, err := container.FetchArticlesUsecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "list_articles")
		}
		return c.JSON(http.StatusOK, articles)
	}
}

func handleGetArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseArticleID(c)
		if err != nil {
			return handleError(c, err, "get_article")
		}

		article, err := container.FetchArticlesUsecase.ExecuteByID(c.Request().Context(), id)
		if err != nil {
			return handleError(c, err, "get_article")
		}
		return c.JSON(http.StatusOK, article)
	}
}

func handleCreateArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req createArticleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		}

		article, err := container.SaveArticleUsecase.Execute(c.Request().Context(), domain.InsertArticle{
			URL:         req.URL,
			Title:       req.Title,
			Description: req.Description,
			Content:     req.Content,
			IsRead:      req.IsRead,
			Archived:    req.Archived,
			Tags:        req.Tags,
		})
		if err != nil {
			return handleError(c, err, "create_article")
		}
		return c.JSON(http.StatusCreated, article)
	}
}

func handleUpdateArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseArticleID(c)
		if err != nil {
			return handleError(c, err, "update_article")
		}

		var req updateArticleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		}

		article, err := container.UpdateArticleUsecase.Execute(c.Request().Context(), id, domain.ArticleUpdate{
			URL:         req.URL,
			Title:       req.Title,
			Description: req.Description,
			Content:     req.Content,
			IsRead:      req.IsRead,
			Archived:    req.Archived,
			Tags:        req.Tags,
		})
		if err != nil {
			return handleError(c, err, "update_article")
		}
		return c.JSON(http.StatusOK, article)
	}
}

func handleDeleteArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseArticleID(c)
		if err != nil {
			return handleError(c, err, "delete_article")
		}

		if err := container.DeleteArticleUsecase.Execute(c.Request().Context(), id); err != nil {
			return handleError(c, err, "delete_article")
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func handleMarkArticleOpened(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseArticleID(c)
		if err != nil {
			return handleError(c, err, "mark_article_opened")
		}

		article, err := container.MarkArticleOpenedUsecase.Execute(c.Request().Context(), id)
		if err != nil {
			return handleError(c, err, "mark_article_opened")
		}
		return c.JSON(http.StatusOK, article)
	}
}
