package rubric

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `sections:
  - key: Eligibility
    elements:
      - Nonprofit status
      - Service area
  - key: Budget
  - key: Submission & Compliance
`

func TestParse(t *testing.T) {
	r, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"Eligibility", "Budget", "Submission & Compliance"}, r.Keys())
	assert.Equal(t, []string{"Nonprofit status", "Service area"}, r.Sections[0].Elements)
	assert.Empty(t, r.Sections[1].Elements)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "sections: [unclosed"},
		{"no sections", "sections: []"},
		{"missing sections key", "other: value"},
		{"empty key", "sections:\n  - key: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rubric.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	r, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, r.Sections, 3)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestCache_ServesWithinTTL(t *testing.T) {
	loads := 0
	c := NewCache(time.Minute, func() (*Rubric, error) {
		loads++
		return &Rubric{Sections: []Section{{Key: "Budget"}}}, nil
	})

	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }

	_, err := c.Get()
	require.NoError(t, err)

	clock = clock.Add(30 * time.Second)
	_, err = c.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, loads, "second Get inside the TTL must not reload")
}

func TestCache_ReloadsAfterTTL(t *testing.T) {
	loads := 0
	c := NewCache(time.Minute, func() (*Rubric, error) {
		loads++
		return &Rubric{Sections: []Section{{Key: "Budget"}}}, nil
	})

	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }

	_, err := c.Get()
	require.NoError(t, err)

	clock = clock.Add(2 * time.Minute)
	_, err = c.Get()
	require.NoError(t, err)
	assert.Equal(t, 2, loads)
}

func TestCache_ServesStaleOnReloadFailure(t *testing.T) {
	loads := 0
	c := NewCache(time.Minute, func() (*Rubric, error) {
		loads++
		if loads > 1 {
			return nil, errors.New("file vanished")
		}
		return &Rubric{Sections: []Section{{Key: "Budget"}}}, nil
	})

	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }

	first, err := c.Get()
	require.NoError(t, err)

	clock = clock.Add(2 * time.Minute)
	stale, err := c.Get()
	require.NoError(t, err)
	assert.Same(t, first, stale)
}

func TestCache_ErrorWhenNeverLoaded(t *testing.T) {
	c := NewCache(time.Minute, func() (*Rubric, error) {
		return nil, errors.New("boom")
	})

	_, err := c.Get()
	assert.Error(t, err)
}

func TestCache_ZeroTTLReloadsEveryGet(t *testing.T) {
	loads := 0
	c := NewCache(0, func() (*Rubric, error) {
		loads++
		return &Rubric{Sections: []Section{{Key: "Budget"}}}, nil
	})

	for range 3 {
		_, err := c.Get()
		require.NoError(t, err)
	}
	assert.Equal(t, 3, loads)
}
