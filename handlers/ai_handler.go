package handlers

import (
	"net/http"

	"acututor/services"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	aiService *services.AIService
}

func NewAIHandler(aiService *services.AIService) *AIHandler {
	return &AIHandler{
		aiService: aiService,
	}
}

type ChatbotRequest struct {
	Message string `json:"message" binding:"required"`
}

type ExplainRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Chatbot answers a tutoring chat message through the hosted model.
func (h *AIHandler) Chatbot(c *gin.Context) {
	var req ChatbotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	reply, err := h.aiService.Chat(c.Request.Context(), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}

// Explain forwards an explanation prompt to the hosted model.
func (h *AIHandler) Explain(c *gin.Context) {
	var req ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.aiService.Explain(c.Request.Context(), req.Prompt)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
