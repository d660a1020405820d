package llm

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// Fallback tries Primary first and, if it fails, Secondary once.
type Fallback struct {
	Primary   Generator
	Secondary Generator
}

func (f *Fallback) Name() string {
	if f.Secondary == nil {
		return f.Primary.Name()
	}
	return f.Primary.Name() + "," + f.Secondary.Name()
}

func (f *Fallback) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := f.Primary.Generate(ctx, prompt)
	if err == nil || f.Secondary == nil || ctx.Err() != nil {
		return text, err
	}

	slog.Warn("primary provider failed, trying fallback",
		"primary", f.Primary.Name(),
		"fallback", f.Secondary.Name(),
		"error", err,
	)
	return f.Secondary.Generate(ctx, prompt)
}

// Close releases whichever of the wrapped generators hold resources.
func (f *Fallback) Close() error {
	var errs []error
	for _, g := range []Generator{f.Primary, f.Secondary} {
		if closer, ok := g.(io.Closer); ok {
			errs = append(errs, closer.Close())
		}
	}
	return errors.Join(errs...)
}
