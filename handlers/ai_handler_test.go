package handlers

import (
	"context"
	"net/http"
	"testing"

	"acututor/middleware"
	"acututor/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	reply string
	err   error
}

func (g *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	return g.reply, g.err
}

func newAIRouter(t *testing.T, generator services.Generator) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authService := services.NewAuthService(newMemUserRepo(), "test-secret")
	_, token, err := authService.Register(context.Background(), "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	aiHandler := NewAIHandler(services.NewAIService(generator))
	router := gin.New()
	protected := router.Group("/")
	protected.Use(middleware.Auth(authService))
	protected.POST("/api/ai/chatbot", aiHandler.Chatbot)
	protected.POST("/api/ai/explain", aiHandler.Explain)
	return router, token
}

func TestChatbotEndpoint(t *testing.T) {
	router, token := newAIRouter(t, &stubGenerator{reply: "Fractions split a whole into parts."})

	w := doJSON(router, http.MethodPost, "/api/ai/chatbot", `{"message":"What are fractions?"}`, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Fractions split a whole")
}

func TestChatbotEndpointRequiresMessage(t *testing.T) {
	router, token := newAIRouter(t, &stubGenerator{reply: "hi"})

	w := doJSON(router, http.MethodPost, "/api/ai/chatbot", `{}`, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExplainEndpointUpstreamDown(t *testing.T) {
	router, token := newAIRouter(t, &stubGenerator{err: services.ErrUpstreamUnavailable})

	w := doJSON(router, http.MethodPost, "/api/ai/explain", `{"prompt":"Explain limits"}`, token)
	require.Equal(t, http.StatusBadGateway, w.Code)
	require.Contains(t, w.Body.String(), "AI service unavailable")
}
