package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"catalog-api/internal/service"
)

const internalErrorMessage = "Internal server error"

type errorBody struct {
	status  int
	message string
}

var serviceErrors = []struct {
	target error
	body   errorBody
}{
	{service.ErrInvalidID, errorBody{http.StatusBadRequest, "Invalid ID"}},
	{service.ErrUserAlreadyExists, errorBody{http.StatusBadRequest, "User already exists"}},
	{service.ErrUserNotFound, errorBody{http.StatusBadRequest, "User not found"}},
	{service.ErrInvalidCredentials, errorBody{http.StatusBadRequest, "Invalid credentials"}},
	{service.ErrCategoryExists, errorBody{http.StatusBadRequest, "Category already exists"}},
	{service.ErrCategoryMissing, errorBody{http.StatusBadRequest, "Category does not exist"}},
	{service.ErrCategoryInUse, errorBody{http.StatusBadRequest, "Category is in use by products"}},
	{service.ErrCategoryNotFound, errorBody{http.StatusNotFound, "Category not found"}},
	{service.ErrProductNotFound, errorBody{http.StatusNotFound, "Product not found"}},
}

// bindingMessages maps "<StructField>.<tag>" to the client message for payload validation.
var bindingMessages = map[string]string{
	"Name.required":  "Name is required",
	"Email.required": "Email is required",
	"Email.email":    "Email is invalid",
	"Pass.required":  "Password is required",
}

// typeMessages maps a JSON field to the message used when its value has the wrong type.
var typeMessages = map[string]string{
	"name":        "Name must be a string",
	"email":       "Email must be a string",
	"pass":        "Password must be a string",
	"price":       "Price must be a positive number",
	"category_id": "Category ID must be a positive integer",
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		return
	}
	for _, known := range serviceErrors {
		if errors.Is(err, known.target) {
			c.JSON(known.body.status, gin.H{"error": known.body.message})
			return
		}
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": c.GetString(requestIDKey),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
	}).WithError(err).Error("internal error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": internalErrorMessage})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// bindJSON decodes the request body, replying 400 with a field-level message on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		badRequest(c, bindErrorMessage(err))
		return false
	}
	return true
}

func bindErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if msg, ok := typeMessages[typeErr.Field]; ok {
			return msg
		}
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if msg, ok := bindingMessages[fe.Field()+"."+fe.Tag()]; ok {
			return msg
		}
	}

	if errors.Is(err, io.EOF) {
		return "Request body is required"
	}
	return "Invalid request body"
}
