package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSHeaders sets permissive cross-origin headers on every response,
// before any other handling runs.
func CORSHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		c.Next()
	}
}

// RequireJSONAccept rejects requests that do not accept JSON with 406.
// OPTIONS requests pass regardless so preflights keep working.
func RequireJSONAccept() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions ||
			strings.Contains(c.GetHeader("Accept"), "application/json") {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusNotAcceptable, gin.H{
			"error": "this service only serves application/json",
		})
	}
}

// RequireJSONBody rejects PUT and POST bodies that are neither JSON
// nor a URL-encoded form with 400. Other methods pass unchecked.
func RequireJSONBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPut && c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		contentType := c.GetHeader("Content-Type")
		if strings.Contains(contentType, "application/json") ||
			strings.Contains(contentType, "x-www-form-urlencoded") {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": "this service only accepts application/json or x-www-form-urlencoded bodies",
		})
	}
}
