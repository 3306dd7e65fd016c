package utils

import "github.com/gin-gonic/gin"

// Result codes carried in every response envelope. Business-rule outcomes
// (CodeBusinessRule) are returned with HTTP 200 so clients can show a specific
// message without treating them as faults.
const (
	CodeOK           = 0
	CodeError        = 1
	CodeDuplicate    = -1
	CodeBusinessRule = 71
)

func Respond(c *gin.Context, status, code int, data interface{}, message string) {
	c.JSON(status, gin.H{
		"resultCode":    code,
		"resultData":    data,
		"resultMessage": message,
	})
}

func OK(c *gin.Context, data interface{}, message string) {
	Respond(c, 200, CodeOK, data, message)
}

func Created(c *gin.Context, data interface{}, message string) {
	Respond(c, 201, CodeOK, data, message)
}

// BusinessRule reports a recoverable business outcome (e.g. cross-restaurant
// cart, duplicate table slot) as a success-shaped envelope.
func BusinessRule(c *gin.Context, message string) {
	Respond(c, 200, CodeBusinessRule, nil, message)
}

func BadRequest(c *gin.Context, message string) {
	Respond(c, 400, CodeError, nil, message)
}

func NotFound(c *gin.Context, message string) {
	Respond(c, 404, CodeError, nil, message)
}

func ServerError(c *gin.Context, message string) {
	Respond(c, 500, CodeError, nil, message)
}
