package ids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IsParseable(t *testing.T) {
	id := New()
	got, err := Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestNew_IsTimeOrdered(t *testing.T) {
	a, b := New(), New()
	assert.Less(t, a, b)
}

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", true},
		{"123e4567-e89b-12d3-a456-426614174000", "123e4567-e89b-12d3-a456-426614174000", true},
		{"not-an-id", "", false},
		{"65f1c0ffee0000000000abcd", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, err := Parse(c.input)
		if !c.ok {
			assert.ErrorIs(t, err, ErrInvalidID, c.input)
			continue
		}
		assert.NoError(t, err, c.input)
		assert.Equal(t, c.want, got)
	}
}
