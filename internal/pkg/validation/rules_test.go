package validation

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "seeker@test.com", NormalizeEmail("  Seeker@Test.com "))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("seeker@test.com"))
	assert.False(t, IsEmail("seeker"))
	assert.False(t, IsEmail("seeker@test"))
	assert.False(t, IsEmail("a b@test.com"))
}

func TestMissingFields(t *testing.T) {
	missing := MissingFields(Required("name", "Asha"), Required("email", " "), Required("password", ""))
	assert.Equal(t, []string{"email", "password"}, missing)
	assert.Empty(t, MissingFields(Required("name", "x")))
}

func TestDisplayNameFromEmail(t *testing.T) {
	assert.Equal(t, "Asha Rao", DisplayNameFromEmail("asha.rao@example.com"))
	assert.Equal(t, "Seeker", DisplayNameFromEmail("seeker@test.com"))
	assert.Equal(t, "", DisplayNameFromEmail("@x.com"))
}

func TestDisplayNameFromEmail_NonASCII(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"élodie@test.com", "Élodie"},
		{"ñandu.dev@test.com", "Ñandu Dev"},
		{"渡辺@test.com", "渡辺"},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			got := DisplayNameFromEmail(tt.email)
			assert.True(t, utf8.ValidString(got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayNameFromEmail_TruncatesOnRuneBoundary(t *testing.T) {
	name := DisplayNameFromEmail(strings.Repeat("é", NameMaxLength+10) + "@test.com")
	assert.True(t, utf8.ValidString(name))
	assert.Equal(t, NameMaxLength, utf8.RuneCountInString(name))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héllo", TruncateRunes("héllo", 10))
	assert.Equal(t, "hé", TruncateRunes("héllo", 2))
	assert.Equal(t, "", TruncateRunes("héllo", 0))
}
