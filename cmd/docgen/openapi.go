package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/docker/go-units"

	"github.com/JaimeStill/chat-api-docs/internal/config"
	"github.com/JaimeStill/chat-api-docs/internal/storage"
	"github.com/JaimeStill/chat-api-docs/pkg/openapi"
)

func marshalSpec(spec *openapi.Spec, format config.Format) ([]byte, error) {
	switch format {
	case config.FormatYAML:
		return openapi.MarshalYAML(spec)
	default:
		return openapi.MarshalJSON(spec)
	}
}

// writeSpec serializes and validates the spec, then stores it under key
// unless the stored artifact already holds the same bytes.
func writeSpec(ctx context.Context, spec *openapi.Spec, out *config.OutputConfig, store storage.System, key string) (bool, error) {
	generated, err := marshalSpec(spec, out.Format)
	if err != nil {
		return false, fmt.Errorf("marshal spec: %w", err)
	}

	if size := int64(len(generated)); size > out.MaxSizeBytes() {
		return false, fmt.Errorf(
			"spec is %s, exceeds max_size %s",
			units.HumanSize(float64(size)),
			out.MaxSize,
		)
	}

	if err := openapi.Validate(ctx, generated); err != nil {
		return false, err
	}

	existing, err := store.Retrieve(key)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return false, fmt.Errorf("read existing spec: %w", err)
	}
	if err == nil && bytes.Equal(existing, generated) {
		return false, nil
	}

	if err := store.Store(key, generated); err != nil {
		return false, fmt.Errorf("write spec: %w", err)
	}

	return true, nil
}
