package handlers

import (
	"net/http"

	"acututor/models"
	"acututor/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

// CreateSession assembles a practice session. The response carries the
// sampled questions stripped of their answers; those stay server-side until
// submission.
func (h *QuizHandler) CreateSession(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	var req services.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.quizService.CreateSession(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": session.ID,
		"topic":      session.Topic,
		"difficulty": session.Difficulty,
		"questions":  session.ClientQuestions(),
		"settings":   session.Settings,
		"created_at": session.CreatedAt,
	})
}

// SubmitSession scores a session and returns the per-question outcome along
// with the progress the user earned.
func (h *QuizHandler) SubmitSession(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
		return
	}

	var req services.SubmitSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.quizService.SubmitSession(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Topics lists the closed topic and difficulty enumerations the frontend
// builds its practice picker from.
func (h *QuizHandler) Topics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"topics":       models.Topics,
		"difficulties": models.Difficulties,
	})
}
