package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"
)

var fencePattern = regexp.MustCompile("```json|```")

type Simplifier struct {
	generator Generator
	timeout   time.Duration
}

// NewSimplifier wraps generator. A zero timeout leaves the model call bounded
// only by the caller's context.
func NewSimplifier(generator Generator, timeout time.Duration) *Simplifier {
	return &Simplifier{generator: generator, timeout: timeout}
}

func (s *Simplifier) Provider() string {
	return s.generator.Name()
}

// Simplify asks the model to split sentence into simpler standalone sentences.
func (s *Simplifier) Simplify(ctx context.Context, sentence string) ([]string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.generator.Generate(ctx, BuildSimplifyPrompt(sentence))
	if err != nil {
		return nil, err
	}

	slog.Debug("model responded",
		"provider", s.generator.Name(),
		"prompt_version", promptVersion,
		"duration", time.Since(start),
	)

	return ParseSentences(CleanJSONResponse(text))
}

// CleanJSONResponse removes markdown code fences and surrounding whitespace.
func CleanJSONResponse(content string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(content, ""))
}

// ParseSentences decodes content as a JSON array of strings. A null array or
// a null element is rejected.
func ParseSentences(content string) ([]string, error) {
	var raw []*string
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("%w: %w, content: %s", ErrMalformedOutput, err, content)
	}

	if raw == nil {
		return nil, fmt.Errorf("%w: expected JSON array, content: %s", ErrMalformedOutput, content)
	}

	sentences := make([]string, len(raw))
	for i, s := range raw {
		if s == nil {
			return nil, fmt.Errorf("%w: null element at index %d, content: %s", ErrMalformedOutput, i, content)
		}
		sentences[i] = *s
	}

	return sentences, nil
}
