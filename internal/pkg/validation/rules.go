package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Validation rule patterns
var (
	EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

	NameMaxLength = 255
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// NormalizeEmail trims and lower-cases an email address for storage and lookup
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmail reports whether s looks like an email address
func IsEmail(s string) bool {
	return CompiledPatterns.Email.MatchString(s)
}

// Field is a named value checked for presence
type Field struct {
	Name  string
	Value string
}

// Required pairs a field name with its value
func Required(name, value string) Field {
	return Field{Name: name, Value: value}
}

// MissingFields returns the names of fields whose value is blank
func MissingFields(fields ...Field) []string {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// DisplayNameFromEmail derives a placeholder name from the local part of an email.
// The result is valid UTF-8 and at most NameMaxLength characters.
func DisplayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.ToValidUTF8(local, "")
	local = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)
	words := strings.Fields(local)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return TruncateRunes(strings.Join(words, " "), NameMaxLength)
}

// TruncateRunes cuts s to at most limit characters without splitting a rune
func TruncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
