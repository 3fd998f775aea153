package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalErrors "github.com/gcbaptista/go-label-matcher/internal/errors"
)

func TestLabelStoreAddAndGet(t *testing.T) {
	s := NewLabelStore()

	label, err := s.Add("  Work Travel ", "preset7")
	require.NoError(t, err)
	assert.NotEmpty(t, label.ID)
	assert.Equal(t, "Work Travel", label.DisplayName)
	assert.Equal(t, "preset7", label.Color)
	assert.False(t, label.CreatedAt.IsZero())

	got, err := s.Get(label.ID)
	require.NoError(t, err)
	assert.Equal(t, label, got)
	assert.Equal(t, 1, s.Count())
}

func TestLabelStoreAddValidation(t *testing.T) {
	s := NewLabelStore()

	_, err := s.Add("   ", "")
	assert.True(t, errors.Is(err, internalErrors.ErrInvalidInput))

	_, err = s.Add("Work", "magenta")
	assert.True(t, errors.Is(err, internalErrors.ErrInvalidInput))

	assert.Equal(t, 0, s.Count())
}

func TestLabelStoreRejectsDuplicateNamesIgnoringCase(t *testing.T) {
	s := NewLabelStore()

	first, err := s.Add("Receipts", "")
	require.NoError(t, err)

	_, err = s.Add("RECEIPTS", "preset1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, internalErrors.ErrLabelAlreadyExists))

	var dup *internalErrors.LabelAlreadyExistsError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, first.ID, dup.ExistingID)
}

func TestLabelStoreDelete(t *testing.T) {
	s := NewLabelStore()
	a, _ := s.Add("A", "")
	b, _ := s.Add("B", "")
	c, _ := s.Add("C", "")

	require.NoError(t, s.Delete(b.ID))

	_, err := s.Get(b.ID)
	assert.True(t, errors.Is(err, internalErrors.ErrLabelNotFound))
	assert.True(t, errors.Is(s.Delete(b.ID), internalErrors.ErrLabelNotFound))

	labels := s.List()
	require.Len(t, labels, 2)
	assert.Equal(t, a.ID, labels[0].ID)
	assert.Equal(t, c.ID, labels[1].ID)

	// the name is free again
	_, err = s.Add("b", "")
	assert.NoError(t, err)
}

func TestLabelStoreCandidatesKeepInsertionOrder(t *testing.T) {
	s := NewLabelStore()
	names := []string{"Zeta", "Alpha", "Mid"}
	for _, n := range names {
		_, err := s.Add(n, "")
		require.NoError(t, err)
	}

	candidates := s.Candidates()
	require.Len(t, candidates, 3)
	for i, c := range candidates {
		assert.Equal(t, names[i], c.DisplayName)
		assert.NotEmpty(t, c.ID)
	}
}

func TestLabelStoreConcurrentAdds(t *testing.T) {
	s := NewLabelStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = s.Add(fmt.Sprintf("label-%d", i%25), "")
			_ = s.Candidates()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 25, s.Count())
	assert.Len(t, s.List(), 25)
}
