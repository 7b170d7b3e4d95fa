package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForStorage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Machado de Assis", "machado de assis"},
		{"trims and collapses whitespace", "  Machado \t de  \n Assis  ", "machado de assis"},
		{"strips question and exclamation marks", "Androides Sonham Com Ovelhas Elétricas?", "androides sonham com ovelhas elétricas"},
		{"keeps other punctuation", "O Alienista, e outros contos", "o alienista, e outros contos"},
		{"multibyte", "ÉRICO VERÍSSIMO!", "érico veríssimo"},
		{"empty", "", ""},
		{"only punctuation and spaces", " ?! ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForStorage(tt.in))
		})
	}
}

func TestForDisplay(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"title-cases words", "machado de assis", "Machado De Assis"},
		{"lowers the rest of each word", "mACHADO DE aSSIS", "Machado De Assis"},
		{"trims and collapses whitespace", "  clarice \t lispector ", "Clarice Lispector"},
		{"keeps punctuation", "dom casmurro!", "Dom Casmurro!"},
		{"multibyte first rune", "érico veríssimo", "Érico Veríssimo"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForDisplay(tt.in))
		})
	}
}

func TestForStorage_Idempotent(t *testing.T) {
	inputs := []string{
		"Androides Sonham Com Ovelhas Elétricas?",
		"  Memórias  Póstumas \n de Brás Cubas!! ",
		"a",
		"",
	}
	for _, in := range inputs {
		once := ForStorage(in)
		assert.Equal(t, once, ForStorage(once))
	}
}

func TestForDisplay_Idempotent(t *testing.T) {
	inputs := []string{
		"machado de assis",
		"  GRACILIANO   ramos ",
		"",
	}
	for _, in := range inputs {
		once := ForDisplay(in)
		assert.Equal(t, once, ForDisplay(once))
	}
}

func TestStorageAndDisplayAreNotInverses(t *testing.T) {
	original := "Androides Sonham Com Ovelhas Elétricas?"
	stored := ForStorage(original)

	// Punctuation dropped by the storage form never comes back.
	assert.NotEqual(t, original, ForDisplay(stored))
	assert.Equal(t, "Androides Sonham Com Ovelhas Elétricas", ForDisplay(stored))
}
