// Package store holds the in-memory catalog of known labels.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	internalErrors "github.com/gcbaptista/go-label-matcher/internal/errors"
	"github.com/gcbaptista/go-label-matcher/model"
)

// LabelStore is a concurrency-safe catalog of labels, kept in insertion order.
// Display names are unique ignoring case.
type LabelStore struct {
	Mu        sync.RWMutex
	Labels    map[string]model.Label // Label ID to label
	Order     []string               // Label IDs in insertion order
	NameIndex map[string]string      // Lower-cased display name to label ID
}

// NewLabelStore creates an empty LabelStore.
func NewLabelStore() *LabelStore {
	return &LabelStore{
		Labels:    make(map[string]model.Label),
		Order:     make([]string, 0),
		NameIndex: make(map[string]string),
	}
}

func nameKey(displayName string) string {
	return strings.ToLower(displayName)
}

// Add creates a label. The display name is trimmed and must be non-empty;
// color must be empty or a known preset.
func (s *LabelStore) Add(displayName, color string) (model.Label, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return model.Label{}, internalErrors.NewValidationError("display_name", "display name cannot be empty or whitespace-only")
	}
	if !model.IsValidColor(color) {
		return model.Label{}, internalErrors.NewValidationError("color", "unknown color preset '"+color+"'")
	}

	s.Mu.Lock()
	defer s.Mu.Unlock()

	key := nameKey(displayName)
	if existingID, exists := s.NameIndex[key]; exists {
		return model.Label{}, internalErrors.NewLabelAlreadyExistsError(displayName, existingID)
	}

	label := model.Label{
		ID:          uuid.New().String(),
		DisplayName: displayName,
		Color:       color,
		CreatedAt:   time.Now().UTC(),
	}
	s.Labels[label.ID] = label
	s.Order = append(s.Order, label.ID)
	s.NameIndex[key] = label.ID

	return label, nil
}

// Get returns the label with the given ID.
func (s *LabelStore) Get(id string) (model.Label, error) {
	s.Mu.RLock()
	defer s.Mu.RUnlock()

	label, ok := s.Labels[id]
	if !ok {
		return model.Label{}, internalErrors.NewLabelNotFoundError(id)
	}
	return label, nil
}

// Delete removes the label with the given ID.
func (s *LabelStore) Delete(id string) error {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	label, ok := s.Labels[id]
	if !ok {
		return internalErrors.NewLabelNotFoundError(id)
	}

	delete(s.Labels, id)
	delete(s.NameIndex, nameKey(label.DisplayName))
	for i, existing := range s.Order {
		if existing == id {
			s.Order = append(s.Order[:i], s.Order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns all labels in insertion order.
func (s *LabelStore) List() []model.Label {
	s.Mu.RLock()
	defer s.Mu.RUnlock()

	labels := make([]model.Label, 0, len(s.Order))
	for _, id := range s.Order {
		labels = append(labels, s.Labels[id])
	}
	return labels
}

// Candidates returns the labels as matcher candidates, in insertion order.
func (s *LabelStore) Candidates() []model.Candidate {
	s.Mu.RLock()
	defer s.Mu.RUnlock()

	candidates := make([]model.Candidate, 0, len(s.Order))
	for _, id := range s.Order {
		candidates = append(candidates, s.Labels[id].AsCandidate())
	}
	return candidates
}

// Count returns the number of labels.
func (s *LabelStore) Count() int {
	s.Mu.RLock()
	defer s.Mu.RUnlock()
	return len(s.Labels)
}
