package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strings"
	"time"

	"batepapo/database"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Handler carries the store handle shared by all routes.
type Handler struct {
	store database.Store
}

func New(store database.Store) *Handler {
	return &Handler{store: store}
}

var validate = validator.New()

func init() {
	// Report violations under the json field names clients actually sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validationMessages flattens a validator error into one message per
// violated rule, all of them, not just the first.
func validationMessages(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(verrs))
	for _, e := range verrs {
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of [%s]", e.Field(), e.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}
	return messages
}

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), 10*time.Second)
}

// storeError logs the failure and answers an explicit 500 so the caller
// is never left with a hanging request.
func storeError(c *gin.Context, op string, err error) {
	log.Printf("%s store error: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "database operation failed"})
}
