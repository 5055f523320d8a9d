package v1

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// currentUser returns the account loaded by the auth middleware. Routes that
// are not behind AuthMiddleware get a nil user.
func currentUser(c *gin.Context) *domain.User {
	value, exists := c.Get(string(domain.KeyUser))
	if !exists {
		return nil
	}
	user, _ := value.(*domain.User)
	return user
}

func currentUserID(c *gin.Context) int64 {
	value, exists := c.Get(string(domain.KeyUserID))
	if !exists {
		return 0
	}
	id, _ := value.(int64)
	return id
}

// bindJSON decodes and validates the request body, translating validator
// failures into field-level messages.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.Error(apperror.Validation(validation.FormatValidationErrors(verrs)))
			return false
		}
		c.Error(apperror.BadRequest("Invalid request body"))
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.Error(apperror.BadRequest("Invalid id parameter"))
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	if raw := c.Query(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

// csvQuery splits a comma-separated query parameter, dropping empty parts.
func csvQuery(c *gin.Context, name string) []string {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FlexibleList accepts either a JSON array of strings or a single string
// (split on commas), matching what existing API clients send for
// requirements and skills.
type FlexibleList []string

func (f *FlexibleList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = normalizeList(list)
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*f = normalizeList(strings.Split(single, ","))
	return nil
}

func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
