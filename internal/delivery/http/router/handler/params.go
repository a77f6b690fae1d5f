// Package handler contains the Echo handlers for the HTTP API.
package handler

import (
	"strconv"

	domainerrors "blog/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// parseUintParam reads a required numeric path parameter.
func parseUintParam(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " path parameter")
	}

	return uint(value), nil
}

// parseRequiredUintQuery reads a numeric query parameter that must be present.
func parseRequiredUintQuery(c echo.Context, name string) (uint, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, domainerrors.ErrValidationFailed.WithDetails("missing " + name + " query parameter")
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " query parameter")
	}

	return uint(value), nil
}

// parseOptionalUintQuery reads a numeric query parameter, returning nil when
// it is absent.
func parseOptionalUintQuery(c echo.Context, name string) (*uint, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " query parameter")
	}

	parsed := uint(value)

	return &parsed, nil
}

// parseIntQuery reads a numeric query parameter with a fallback default.
func parseIntQuery(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " query parameter")
	}

	return value, nil
}
