package handlers

import (
	"errors"
	"net/http"
	"strings"

	"acututor/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps a service error onto the HTTP surface. Token problems
// come out as the same generic 401 whatever the internal cause.
func respondError(c *gin.Context, err error) {
	var insufficient *services.InsufficientQuestionsError

	switch {
	case errors.Is(err, services.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	case errors.Is(err, services.ErrTokenInvalid), errors.Is(err, services.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, services.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Quiz session not found or expired"})
	case errors.Is(err, services.ErrAnswerCountMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Answer count does not match the session"})
	case errors.Is(err, services.ErrInvalidTopic), errors.Is(err, services.ErrInvalidDifficulty):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.As(err, &insufficient):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message":   "Not enough questions for this topic and difficulty",
			"available": insufficient.Available,
			"requested": insufficient.Requested,
		})
	case errors.Is(err, services.ErrUpstreamUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"message": "AI service unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
	}
}

// respondBindError turns a gin binding failure into a 400 that names the
// missing or malformed fields.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Missing or invalid fields: " + strings.Join(fields, ", "),
			"fields":  fields,
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
}
