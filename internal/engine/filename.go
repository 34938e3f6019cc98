package engine

import (
	"regexp"
	"strings"
)

// Identifier candidates in priority order: a letter-prefixed invoice number
// beats a bare digit run. Both require a non-alphanumeric boundary so a prefix
// is not carved out of the middle of a longer word.
var identifierPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:^|[^A-Z0-9])([A-Z]{1,4}\d{4,12})`),
	regexp.MustCompile(`(?:^|[^0-9])(\d{4,12}[A-Z]?)`),
}

// currencyTokens is the fixed lookup order for currency codes embedded in
// filenames. First match wins.
var currencyTokens = []string{"USD", "EUR", "GBP", "JPY", "CNY", "AED", "INR"}

var currencyPatterns = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(currencyTokens))
	for _, tok := range currencyTokens {
		// Letter boundaries keep EUR from firing inside FEURER etc.
		m[tok] = regexp.MustCompile(`(?:^|[^A-Z])` + tok + `(?:[^A-Z]|$)`)
	}
	return m
}()

// ResolveFilename derives the short invoice identifier from the uploaded
// file's name, plus a currency code when the name embeds one. The raw
// filename is returned unchanged when no identifier pattern matches, so the
// identifier is never empty.
func ResolveFilename(filename string) (string, *string) {
	upper := strings.ToUpper(filename)

	id := filename
	for _, p := range identifierPatterns {
		if m := p.FindStringSubmatch(upper); m != nil {
			id = m[1]
			break
		}
	}

	var currency *string
	for _, tok := range currencyTokens {
		if currencyPatterns[tok].MatchString(upper) {
			c := tok
			currency = &c
			break
		}
	}
	return id, currency
}
