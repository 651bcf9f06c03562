package rest

import (
	"net"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"pocket/utils/errors"
	"pocket/utils/logger"
)

// handleError funnels every handler failure through the AppError mapping:
// code decides the HTTP status, the response body carries the message and,
// for validation failures, the offending field.
func handleError(c echo.Context, err error, operation string) error {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.UnknownError("internal server error", err, map[string]interface{}{
			"operation": operation,
		})
	}

	errors.LogError(logger.Logger, appErr, operation)
	return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
}

// parseArticleID reads the :id path parameter as a positive integer.
func parseArticleID(c echo.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ValidationError("id must be a positive integer", "id")
	}
	return id, nil
}

// isAllowedURL rejects extraction targets that point at internal
// infrastructure. Only absolute http(s) URLs to public hosts pass.
func isAllowedURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil || !parsed.IsAbs() {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}

	hostname := parsed.Hostname()
	if hostname == "" || hostname == "localhost" {
		return false
	}

	if ip := net.ParseIP(hostname); ip != nil {
		return !isPrivateIP(ip)
	}

	addrs, err := net.LookupIP(hostname)
	if err != nil || len(addrs) == 0 {
		// Unresolvable hosts fail later at fetch time with a clearer error.
		return true
	}
	for _, addr := range addrs {
		if isPrivateIP(addr) {
			return false
		}
	}
	return true
}

func isPrivateIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() || ip.IsUnspecified()
}
