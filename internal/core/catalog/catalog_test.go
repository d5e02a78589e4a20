package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 6)

	codes := make([]string, 0, len(cats))
	for _, c := range cats {
		codes = append(codes, c.Code)
		assert.NotEmpty(t, c.Label)
		assert.NotEmpty(t, c.Prestations)
	}
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, codes)
}

func TestLookup(t *testing.T) {
	p, ok := Lookup("A", "A1")
	require.True(t, ok)
	assert.Equal(t, "Création & Immatriculation d'Entreprise", p.Label)

	_, ok = Lookup("A", "B1")
	assert.False(t, ok, "prestation of another category must not resolve")

	_, ok = Lookup("Z", "Z1")
	assert.False(t, ok)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("B", "B3"))
	assert.False(t, Valid("B", "C1"))
	assert.False(t, Valid("", ""))
}

func TestIsInternal(t *testing.T) {
	assert.True(t, IsInternal("F"))
	assert.False(t, IsInternal("A"))

	prestations, ok := Prestations("F")
	require.True(t, ok)
	assert.Len(t, prestations, 2)
}
