package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/openai/openai-go/option"
)

func newOpenAITestClient(t *testing.T, status int, body string) *OpenAIClient {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)

	return NewOpenAIClient("key", "", option.WithBaseURL(server.URL+"/"), option.WithMaxRetries(0))
}

func chatCompletionBody(content string) string {
	return fmt.Sprintf(`{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 0,
		"model": "gpt-4o-mini",
		"choices": [
			{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": %q}}
		]
	}`, content)
}

func TestOpenAIGenerate_ReturnsContent(t *testing.T) {
	c := newOpenAITestClient(t, http.StatusOK, chatCompletionBody(`["a","b"]`))

	got, err := c.Generate(context.Background(), "prompt")

	assert.Equal(t, nil, err)
	assert.Equal(t, `["a","b"]`, got)
}

func TestOpenAIGenerate_EmptyContent(t *testing.T) {
	c := newOpenAITestClient(t, http.StatusOK, chatCompletionBody(""))

	_, err := c.Generate(context.Background(), "prompt")

	assert.Equal(t, true, errors.Is(err, ErrEmptyResponse))
}

func TestOpenAIGenerate_NoChoices(t *testing.T) {
	c := newOpenAITestClient(t, http.StatusOK, `{"id":"chatcmpl-1","object":"chat.completion","created":0,"model":"gpt-4o-mini","choices":[]}`)

	_, err := c.Generate(context.Background(), "prompt")

	assert.Equal(t, true, errors.Is(err, ErrEmptyResponse))
}

func TestOpenAIGenerate_ProviderError(t *testing.T) {
	c := newOpenAITestClient(t, http.StatusInternalServerError, `{"error":{"message":"boom","type":"server_error"}}`)

	_, err := c.Generate(context.Background(), "prompt")

	assert.Equal(t, true, errors.Is(err, ErrProvider))
}
