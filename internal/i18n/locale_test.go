package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := map[string]Locale{
		"":      English,
		"fr":    French,
		"FR":    French,
		"fr-CD": French,
		"sw":    Swahili,
		"ki":    Kinyamulenge,
		"de":    English,
		"!!":    English,
	}
	for in, want := range cases {
		assert.Equal(t, want, Parse(in), "Parse(%q)", in)
	}
}

func TestNegotiate(t *testing.T) {
	assert.Equal(t, English, Negotiate(""))
	assert.Equal(t, French, Negotiate("fr-FR,fr;q=0.9,en;q=0.8"))
	assert.Equal(t, Swahili, Negotiate("sw"))
	assert.Equal(t, English, Negotiate("ja"))
}

func TestSuffix(t *testing.T) {
	assert.Equal(t, "", English.Suffix())
	assert.Equal(t, "Fr", French.Suffix())
	assert.Equal(t, "Kym", Kinyamulenge.Suffix())
	assert.False(t, Locale("de").Supported())
}
