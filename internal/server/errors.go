// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/internal/facility"
	"github.com/katalvlaran/wayfind/scenario"
)

// statusOf maps a domain error to an HTTP status code.
func statusOf(err error) int {
	switch {
	case errors.Is(err, core.ErrVertexNotFound), errors.Is(err, core.ErrEdgeNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrDuplicateVertex):
		return http.StatusConflict
	case errors.Is(err, core.ErrEmptyVertexID),
		errors.Is(err, core.ErrLoopNotAllowed),
		errors.Is(err, core.ErrBadWeight),
		errors.Is(err, core.ErrUnknownEdgeType),
		errors.Is(err, core.ErrBadFactor),
		errors.Is(err, core.ErrBadRange),
		errors.Is(err, scenario.ErrMalformedScenario),
		errors.Is(err, facility.ErrBadK),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errBadRequest marks malformed query parameters and bodies.
var errBadRequest = errors.New("bad request")

// fail aborts the request with the status matching err.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusOf(err), gin.H{
		"error":      err.Error(),
		"request_id": c.GetString(requestIDKey),
	})
}
