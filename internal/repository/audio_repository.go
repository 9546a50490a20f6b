package repository

import (
	"context"
	"sync"
	"time"

	apperrors "audiocheck/internal/errors"
	"audiocheck/internal/models"
)

// AudioRepository defines the interface for audio mapping operations.
type AudioRepository interface {
	Save(ctx context.Context, mapping *models.AudioMapping) error
	FindByPair(ctx context.Context, userID, phraseID string) (*models.AudioMapping, error)
	Count(ctx context.Context) (int, error)
}

type pairKey struct {
	userID   string
	phraseID string
}

// memoryAudioRepository keeps mappings in process memory.
type memoryAudioRepository struct {
	mu       sync.RWMutex
	mappings map[pairKey]models.AudioMapping
}

// NewMemoryAudioRepository creates an empty in-memory AudioRepository.
func NewMemoryAudioRepository() AudioRepository {
	return &memoryAudioRepository{
		mappings: make(map[pairKey]models.AudioMapping),
	}
}

// Save stores or replaces the mapping for its pair.
func (r *memoryAudioRepository) Save(ctx context.Context, mapping *models.AudioMapping) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if mapping.CreatedAt.IsZero() {
		mapping.CreatedAt = time.Now()
	}

	stored := *mapping
	stored.Data = append([]byte(nil), mapping.Data...)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.mappings[pairKey{mapping.UserID, mapping.PhraseID}] = stored
	return nil
}

// FindByPair returns ErrAudioNotFound if nothing was uploaded for the pair.
func (r *memoryAudioRepository) FindByPair(ctx context.Context, userID, phraseID string) (*models.AudioMapping, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	mapping, ok := r.mappings[pairKey{userID, phraseID}]
	if !ok {
		return nil, apperrors.ErrAudioNotFound
	}
	return &mapping, nil
}

// Count returns the number of stored mappings.
func (r *memoryAudioRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.mappings), nil
}
