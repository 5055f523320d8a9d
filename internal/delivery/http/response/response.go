package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the error envelope every failed request gets. Errors carries
// field-level validation messages and is omitted otherwise.
type ErrorBody struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// Pagination is embedded in list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

func NewPagination(page, pageSize int, total int64) Pagination {
	totalPages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPages++
	}
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// JSON writes a success payload as-is. Success responses carry no envelope;
// the body shape is the handler's contract.
func JSON(c *gin.Context, code int, payload interface{}) {
	c.JSON(code, payload)
}

func Error(c *gin.Context, code int, message string, errs []string) {
	c.JSON(code, ErrorBody{Message: message, Errors: errs})
}
