package tenant

import (
	"testing"

	apperrors "podcastflow-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestExpandSubstitutesSanitizedIdentifier(t *testing.T) {
	g := NewGateway(nil)

	out, err := g.Expand("org_acme",
		`SELECT nextval('{{schema}}.invoice_number_seq'), count(*) FROM {{schema}}.invoices`)

	assert.NoError(t, err)
	assert.Equal(t,
		`SELECT nextval('"org_acme".invoice_number_seq'), count(*) FROM "org_acme".invoices`,
		out)
}

func TestExpandLeavesQueriesWithoutPlaceholderAlone(t *testing.T) {
	g := NewGateway(nil)

	out, err := g.Expand("org_acme", `SELECT 1`)

	assert.NoError(t, err)
	assert.Equal(t, `SELECT 1`, out)
}

func TestExpandRejectsInvalidSchema(t *testing.T) {
	g := NewGateway(nil)

	invalid := []string{
		"",
		"public",
		"org_",
		"org_Acme",
		"org_acme podcasts",
		`org_a"; DROP TABLE users; --`,
	}
	for _, schema := range invalid {
		_, err := g.Expand(schema, `SELECT count(*) FROM {{schema}}.shows`)
		assert.ErrorIs(t, err, apperrors.ErrTenantSchemaNotFound, "schema %q", schema)
	}
}
