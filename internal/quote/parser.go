package quote

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedToken is the intermediate result of splitting one input line
// into a candidate dish name and a quantity. Discarded after the line
// is resolved against the catalog.
type ParsedToken struct {
	Raw      string
	Name     string
	Quantity int
	Explicit bool
}

var (
	// "1. Gà luộc" — list numbering, stripped before quantity
	// extraction so it is never misread as a quantity.
	ordinalPrefixRe = regexp.MustCompile(`^\d+\.\s*`)

	// "Chả giò x 20", "Chả giò - 20"
	trailingQtyRe = regexp.MustCompile(`^(.*?)\s*[xX×-]\s*(\d+)\s*$`)

	// "20 x Chả giò". A bare leading integer without a multiplier
	// symbol stays part of the name ("10 người" is not 10 of "người").
	leadingQtyRe = regexp.MustCompile(`^(\d+)\s*[xX×]\s*(.+)$`)
)

// ParseLines splits a raw dish-list blob into tokens. Lines are
// separated by newlines or commas; empty lines are dropped. Lines
// without an explicit quantity default to defaultQty (clamped to 1).
func ParseLines(input string, defaultQty int) []ParsedToken {
	if defaultQty < 1 {
		defaultQty = 1
	}

	var tokens []ParsedToken
	for _, line := range splitLines(input) {
		raw := strings.TrimSpace(line)
		if raw == "" {
			continue
		}
		tokens = append(tokens, parseLine(raw, defaultQty))
	}
	return tokens
}

func splitLines(input string) []string {
	return strings.FieldsFunc(input, func(r rune) bool {
		return r == '\n' || r == ','
	})
}

func parseLine(raw string, defaultQty int) ParsedToken {
	cleaned := ordinalPrefixRe.ReplaceAllString(raw, "")
	cleaned = strings.TrimSpace(cleaned)

	if m := trailingQtyRe.FindStringSubmatch(cleaned); m != nil && strings.TrimSpace(m[1]) != "" {
		qty, _ := strconv.Atoi(m[2])
		if qty >= 1 {
			return ParsedToken{Raw: raw, Name: strings.TrimSpace(m[1]), Quantity: qty, Explicit: true}
		}
	}

	if m := leadingQtyRe.FindStringSubmatch(cleaned); m != nil {
		qty, _ := strconv.Atoi(m[1])
		if qty >= 1 {
			return ParsedToken{Raw: raw, Name: strings.TrimSpace(m[2]), Quantity: qty, Explicit: true}
		}
	}

	return ParsedToken{Raw: raw, Name: cleaned, Quantity: defaultQty, Explicit: false}
}
