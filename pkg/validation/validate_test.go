package validation

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequireContent(t *testing.T) {
	_, err := RequireContent(url.Values{})
	require.ErrorIs(t, err, ErrBadRequest)

	_, err = RequireContent(url.Values{"content": {""}})
	require.ErrorIs(t, err, ErrBadRequest)

	got, err := RequireContent(url.Values{"content": {"hello"}})
	require.NoError(t, err)
	require.Equal(t, "hello", got)
}

func TestRequireID(t *testing.T) {
	_, err := RequireID(url.Values{})
	require.ErrorIs(t, err, ErrBadRequest)

	for _, bad := range []string{"abc", "", "NaN", "Inf", "-Inf"} {
		_, err := RequireID(url.Values{"id": {bad}})
		require.ErrorIs(t, err, ErrBadRequest, "id=%q", bad)
	}

	// fractional and negative ids parse; they resolve to not-found later
	for in, want := range map[string]float64{"1": 1, "42": 42, "1.5": 1.5, "-2": -2} {
		got, err := RequireID(url.Values{"id": {in}})
		require.NoError(t, err, "id=%q", in)
		require.Equal(t, want, got)
	}
}
