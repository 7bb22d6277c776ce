package response

import "github.com/gin-gonic/gin"

// Pagination describes one page of a listing.
// Pages is ceil(Total/Limit); an empty result set has Pages == 0.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination builds the pagination descriptor for a listing response.
func NewPagination(page, limit, total int) *Pagination {
	return &Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: (total + limit - 1) / limit,
	}
}

// OK sends a 200 response with the given payload keys.
func OK(c *gin.Context, payload gin.H) {
	c.JSON(200, payload)
}

// Fail sends an error response shaped as {"error": "<message>"}.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, gin.H{"error": GetMessage(code)})
}

// FailWithMessage sends an error response with a caller-supplied message,
// used where the message carries request detail (e.g. malformed payloads).
func FailWithMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, gin.H{"error": GetMessage(code)})
}
