package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	s := New()
	for i := 1; i <= 5; i++ {
		p := s.Create("post")
		require.Equal(t, int64(i), p.ID)
		require.False(t, p.Removed)
		require.NotZero(t, p.Created)
	}
}

func TestCreateInsertsAtFront(t *testing.T) {
	s := New()
	s.Create("hello")
	s.Create("world")
	out := s.ListActive()
	require.Len(t, out, 2)
	require.Equal(t, int64(2), out[0].ID)
	require.Equal(t, int64(1), out[1].ID)
}

func TestListActiveExcludesRemoved(t *testing.T) {
	s := New()
	s.Create("a")
	s.Create("b")
	s.Create("c")
	_, err := s.Delete(2)
	require.NoError(t, err)

	out := s.ListActive()
	require.Len(t, out, 2)
	for _, p := range out {
		require.False(t, p.Removed)
		require.NotEqual(t, int64(2), p.ID)
	}
}

func TestDeleteReturnsRemovedPost(t *testing.T) {
	s := New()
	s.Create("a")
	p, err := s.Delete(1)
	require.NoError(t, err)
	require.True(t, p.Removed)
	require.Equal(t, "a", p.Content)
}

func TestDoubleDeleteNotFound(t *testing.T) {
	s := New()
	s.Create("a")
	_, err := s.Delete(1)
	require.NoError(t, err)
	_, err = s.Delete(1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSoftDeletedLooksLikeNeverCreated(t *testing.T) {
	s := New()
	s.Create("a")
	_, err := s.Delete(1)
	require.NoError(t, err)

	_, getErr := s.Get(1)
	_, editErr := s.Edit(1, "x")
	_, ghostErr := s.Get(999)
	require.ErrorIs(t, getErr, ErrNotFound)
	require.ErrorIs(t, editErr, ErrNotFound)
	require.True(t, errors.Is(getErr, ghostErr))
}

func TestEditMutatesInPlace(t *testing.T) {
	s := New()
	s.Create("hello")
	s.Create("world")
	created := s.ListActive()[1].Created

	p, err := s.Edit(1, "bye")
	require.NoError(t, err)
	require.Equal(t, "bye", p.Content)
	require.Equal(t, created, p.Created)

	// order unchanged: most recent first
	out := s.ListActive()
	require.Equal(t, int64(2), out[0].ID)
	require.Equal(t, int64(1), out[1].ID)
	require.Equal(t, "bye", out[1].Content)
}

func TestFractionalIDNeverMatches(t *testing.T) {
	s := New()
	s.Create("a")
	_, err := s.Get(1.5)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(-1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestIDNeverReused(t *testing.T) {
	s := New()
	s.Create("a")
	_, err := s.Delete(1)
	require.NoError(t, err)
	p := s.Create("b")
	require.Equal(t, int64(2), p.ID)
}

func TestStats(t *testing.T) {
	s := New()
	s.Create("a")
	s.Create("b")
	_, err := s.Delete(1)
	require.NoError(t, err)

	st := s.Stats()
	require.Equal(t, Stats{Total: 2, Active: 1, Removed: 1, NextID: 3}, st)
}
