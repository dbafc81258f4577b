package whatsapp

import (
	"net/url"
	"strings"
)

const baseURL = "https://wa.me/"

// NormalizePhone strips every non-digit and rewrites a leading "0" to the
// Indonesian country code "62".
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if strings.HasPrefix(cleaned, "0") {
		cleaned = "62" + cleaned[1:]
	}
	return cleaned
}

// Link builds a wa.me deep link with a pre-filled message.
func Link(phone, message string) string {
	return baseURL + NormalizePhone(phone) + "?text=" + encodeURIComponent(message)
}

// encodeURIComponent matches the browser function of the same name: spaces
// become %20 and the characters !'()* stay literal.
func encodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	for _, c := range []string{"!", "'", "(", ")", "*"} {
		escaped = strings.ReplaceAll(escaped, url.QueryEscape(c), c)
	}
	return escaped
}
