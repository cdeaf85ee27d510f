package tenant

import (
	"strings"
	"testing"

	apperrors "podcastflow-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestValidSlug(t *testing.T) {
	tests := []struct {
		name  string
		slug  string
		valid bool
	}{
		{"simple", "acme", true},
		{"with digits", "acme42", true},
		{"with underscore", "acme_media", true},
		{"minimum length", "ab", true},
		{"single char", "a", false},
		{"empty", "", false},
		{"leading digit", "1acme", false},
		{"leading underscore", "_acme", false},
		{"uppercase", "Acme", false},
		{"hyphen", "acme-media", false},
		{"space", "acme media", false},
		{"sql injection", `acme"; DROP SCHEMA public; --`, false},
		{"max length", "a" + strings.Repeat("b", 58), true},
		{"too long", "a" + strings.Repeat("b", 59), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidSlug(tt.slug))
		})
	}
}

func TestSchemaFor(t *testing.T) {
	schema, err := SchemaFor("acme")
	assert.NoError(t, err)
	assert.Equal(t, "org_acme", schema)

	_, err = SchemaFor("Not A Slug")
	assert.ErrorIs(t, err, apperrors.ErrInvalidSlug)
}

func TestValidSchemaName(t *testing.T) {
	assert.True(t, ValidSchemaName("org_acme"))
	assert.True(t, ValidSchemaName("org_acme_media2"))

	assert.False(t, ValidSchemaName("org_"))
	assert.False(t, ValidSchemaName("acme"))
	assert.False(t, ValidSchemaName("public"))
	assert.False(t, ValidSchemaName(`org_acme"; DROP SCHEMA public; --`))
	// 63 is the Postgres identifier limit
	assert.False(t, ValidSchemaName("org_a"+strings.Repeat("b", 59)))
}
