package dictation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/dictation-builder/internal/domain"
)

// Get returns a stored dictation. Ids that are not UUIDs are not found.
func (s *Service) Get(ctx context.Context, id string) (domain.Structure, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	st, err := s.store.Get(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("dictation.Get: %w", err)
	}
	return st, nil
}

// ExampleStructure returns the raw slide template.
func (s *Service) ExampleStructure() []byte {
	return s.template.Raw()
}
