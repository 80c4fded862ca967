package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T, handler http.HandlerFunc) *HuggingFaceClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewHuggingFaceClient(server.URL, "test/model", "test-key")
}

func TestGenerateSuccess(t *testing.T) {
	client := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"generated_text":"The answer is 4."}]`))
	})

	out, err := client.Generate(context.Background(), "What is 2+2?")
	require.NoError(t, err)
	require.Equal(t, "The answer is 4.", out)
}

func TestGenerateRetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	client := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[{"generated_text":"recovered"}]`))
	})

	out, err := client.Generate(context.Background(), "hello")
	require.NoError(t, err)
	require.Equal(t, "recovered", out)
	require.Equal(t, int32(2), calls.Load())
}

func TestGenerateDoesNotRetryClientError(t *testing.T) {
	var calls atomic.Int32
	client := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := client.Generate(context.Background(), "hello")
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
	require.Equal(t, int32(1), calls.Load(), "well-formed provider errors must not be retried")
}

func TestGenerateExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	client := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Generate(context.Background(), "hello")
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
	require.Equal(t, int32(inferenceMaxRetries+1), calls.Load())
}

type stubGenerator struct {
	reply string
	err   error
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return prompt + g.reply, nil
}

func TestChatStripsPromptEcho(t *testing.T) {
	svc := NewAIService(&stubGenerator{reply: " Great question! Fractions split a whole into parts."})

	reply, err := svc.Chat(context.Background(), "What are fractions?")
	require.NoError(t, err)
	require.Equal(t, "Great question! Fractions split a whole into parts.", reply)
}

func TestChatPropagatesUpstreamFailure(t *testing.T) {
	svc := NewAIService(&stubGenerator{err: ErrUpstreamUnavailable})

	_, err := svc.Chat(context.Background(), "hello")
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
}
