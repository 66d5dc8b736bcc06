// Package controller holds the helpers shared by the admin and user HTTP
// handlers: id parsing, error translation and file streaming.
package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/lshigami/lms/internal/dto"
	"github.com/lshigami/lms/internal/middleware"
	"github.com/lshigami/lms/internal/service"
	"github.com/rs/zerolog/log"
)

// RespondError writes err with the status its kind calls for. Unknown errors
// are logged and answered with a generic 500 so driver messages never leak.
func RespondError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	var fieldErrs validator.ValidationErrors
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: vErr.Fields})
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Details: fieldMessages(fieldErrs)})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Resource already exists"})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid email or password"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Operation not permitted"})
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn().Err(err).Str("path", c.FullPath()).Msg("Request timed out")
		c.JSON(http.StatusGatewayTimeout, dto.ErrorResponse{Error: "Request timed out"})
	default:
		log.Error().Err(err).Str("method", c.Request.Method).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
	}
}

// BindError answers a failed ShouldBind call. Validator errors keep their
// field map, anything else is a malformed body.
func BindError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		RespondError(c, err)
		return
	}
	log.Warn().Err(err).Str("path", c.FullPath()).Msg("Failed to bind request")
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: err.Error()})
}

func fieldMessages(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		if fe.Param() != "" {
			out[fe.Field()] = fmt.Sprintf("failed on '%s=%s'", fe.Tag(), fe.Param())
			continue
		}
		out[fe.Field()] = fmt.Sprintf("failed on '%s'", fe.Tag())
	}
	return out
}

// ParseIDParam reads a positive integer path parameter. It writes the 400
// itself and returns false when the parameter is malformed.
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: fmt.Sprintf("Invalid %s", name)})
		return 0, false
	}
	return uint(id), true
}

// Actor returns the authenticated caller.
func Actor(c *gin.Context) service.Actor {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return service.Actor{}
	}
	return service.Actor{ID: claims.ID, RoleID: claims.RoleID}
}

// Uploads opens every multipart file under field. The returned closer must
// be called once the handler is done with the readers.
func Uploads(c *gin.Context, field string) ([]service.FileUpload, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, func() {}, err
	}
	return openAll(form.File[field])
}

func openAll(headers []*multipart.FileHeader) ([]service.FileUpload, func(), error) {
	files := make([]service.FileUpload, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("open upload %s: %w", h.Filename, err)
		}
		opened = append(opened, f)
		files = append(files, service.FileUpload{Filename: h.Filename, Size: h.Size, Content: f})
	}
	return files, closeAll, nil
}

// SendFile streams r as an attachment named name.
func SendFile(c *gin.Context, name string, r io.Reader) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.DataFromReader(http.StatusOK, -1, "application/octet-stream", r, nil)
}
