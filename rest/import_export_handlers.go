package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pocket/di"
	"pocket/domain"
)

func registerImportExportRoutes(api *echo.Group, container *di.ApplicationComponents) {
	api.POST("/import", handleImportArticles(container))
	api.GET("/export", handleExportArticles(container))
}

func handleImportArticles(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req importRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		}

		inputs := make([]domain.InsertArticle, 0, len(req.Articles))
		for _, entry := range req.Articles {
			inputs = append(inputs, domain.InsertArticle{
				URL:         entry.URL,
				Title:       entry.Title,
				Description: entry.Description,
				Content:     entry.Content,
				IsRead:      entry.IsRead,
				Archived:    entry.Archived,
				Tags:        entry.Tags,
			})
		}

		count, err := container.ImportArticlesUsecase.Execute(c.Request().Context(), inputs)
		if err != nil {
			return handleError(c, err, "import_articles")
		}
		return c.JSON(http.StatusOK, importResponse{Count: count})
	}
}

// handleExportArticles dumps every article as a JSON array usable as a
// backup file for /api/import.
func handleExportArticles(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articles, err := container.FetchArticlesUsecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "export_articles")
		}

		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="pocket-export.json"`)
		return c.JSON(http.StatusOK, articles)
	}
}
