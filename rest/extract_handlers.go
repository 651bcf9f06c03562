package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pocket/di"
	"pocket/utils/errors"
	"pocket/utils/logger"
)

func registerExtractRoutes(api *echo.Group, container *di.ApplicationComponents) {
	api.POST("/extract", handleExtractContent(container))
}

// handleExtractContent runs on-demand extraction. A fetch or parse
// failure is a normal outcome for arbitrary third-party pages, so it
// answers {ok:false} with 200 rather than an error status; only invalid
// input is a client error.
func handleExtractContent(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req extractRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		}

		if req.URL != "" && !isAllowedURL(req.URL) {
			return handleError(c, errors.ValidationError("url points to a disallowed host", "url"), "extract_content")
		}

		content, err := container.ExtractContentUsecase.Execute(c.Request().Context(), req.URL)
		if err != nil {
			if appErr, ok := err.(*errors.AppError); ok && appErr.Code == errors.ErrCodeValidation {
				return handleError(c, err, "extract_content")
			}
			logger.SafeWarnContext(c.Request().Context(), "extraction failed", "url", req.URL, "error", err)
			return c.JSON(http.StatusOK, extractResponse{OK: false})
		}
		if content == nil {
			return c.JSON(http.StatusOK, extractResponse{OK: false})
		}

		return c.JSON(http.StatusOK, extractResponse{
			OK:          true,
			Title:       content.Title,
			Description: content.Description,
			Content:     content.Content,
			SiteName:    content.SiteName,
		})
	}
}
