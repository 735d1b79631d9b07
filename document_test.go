package kb_test

import (
	"testing"

	"github.com/docsmith/kb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid document passes", func(t *testing.T) {
		t.Parallel()

		doc := &kb.Document{Title: "Getting Started"}
		require.NoError(t, doc.Validate())
	})

	t.Run("missing title fails", func(t *testing.T) {
		t.Parallel()

		doc := &kb.Document{Description: "no title here"}
		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, kb.EINVALID, kb.ErrorCode(err))
	})

	t.Run("title with no slug characters fails", func(t *testing.T) {
		t.Parallel()

		doc := &kb.Document{Title: "???"}
		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, kb.EINVALID, kb.ErrorCode(err))
	})
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Getting Started", "getting-started"},
		{"punctuation stripped", "What's New?", "whats-new"},
		{"underscores collapse", "api_reference_v2", "api-reference-v2"},
		{"repeated separators", "a  -  b", "a-b"},
		{"surrounding whitespace", "  Trimmed Title  ", "trimmed-title"},
		{"leading and trailing hyphens", "-edge case-", "edge-case"},
		{"already a slug", "release-notes", "release-notes"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, kb.Slugify(tt.in))
		})
	}
}
