// =============================================================================
// Aralco to Salesforce Migration - Field Normalizers
// =============================================================================
//
// This module provides the per-field normalization rules for converting raw
// Aralco export values into the canonical string representations expected by
// the Salesforce import files.
//
// NORMALIZER CONTRACT:
//   Every normalizer is a total function from a raw string to a canonical
//   string. A normalizer never returns an error: on unparseable input it
//   substitutes the documented fallback for its type (empty string, "0.00",
//   "false", or the original input, depending on the rule).
//
// SUPPORTED TYPES:
//   - Phone     : (AAA) BBB-CCCC for 10-digit numbers, passthrough otherwise
//   - Email     : trimmed, lowercased, validated; invalid emails are dropped
//   - Currency  : "$1,234.5" -> "1234.50"; anything unparseable -> "0.00"
//   - Date      : multiple input formats -> YYYY-MM-DD
//   - DateTime  : YYYY-MM-DD HH:MM:SS -> Salesforce ISO-8601 with Z suffix
//   - Boolean   : 1/TRUE/YES/Y/T (any case) -> "true", everything else "false"
//
// =============================================================================

package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// nonDigits matches every character that is not an ASCII digit.
var nonDigits = regexp.MustCompile(`[^0-9]`)

// emailPattern is the basic local@domain.tld shape accepted by Salesforce.
// The TLD must be at least two letters and the domain must contain a dot.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// dateFormats is the ordered list of input formats tried by Date.
// Order matters: MM/DD/YYYY is tried before DD/MM/YYYY, so ambiguous
// two-digit dates resolve to the US interpretation. Preserve this order
// unless the source locale is ever pinned down.
var dateFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
}

// Phone standardizes a phone number to (AAA) BBB-CCCC.
//
// All non-digit characters are stripped first. If exactly 10 digits remain
// the number is reformatted; any other digit count returns the input
// unchanged, which preserves international and malformed numbers instead of
// corrupting them.
//
// EXAMPLES:
//   "604.555.1234"    -> "(604) 555-1234"
//   "+1 604 555 1234" -> "+1 604 555 1234" (11 digits, passthrough)
func Phone(raw string) string {
	if raw == "" {
		return ""
	}
	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) != 10 {
		return raw
	}
	return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
}

// Email trims, lowercases and validates an email address. Invalid addresses
// are dropped (empty string), never passed through.
func Email(raw string) string {
	if raw == "" {
		return ""
	}
	email := strings.ToLower(strings.TrimSpace(raw))
	if !emailPattern.MatchString(email) {
		return ""
	}
	return email
}

// Currency strips currency symbols and thousands separators, then renders
// the value with exactly two decimal places. Empty or unparseable input
// yields "0.00".
//
// EXAMPLES:
//   "$1,234.5" -> "1234.50"
//   "n/a"      -> "0.00"
func Currency(raw string) string {
	if raw == "" {
		return "0.00"
	}
	clean := strings.NewReplacer("$", "", ",", "").Replace(raw)
	clean = strings.TrimSpace(clean)
	value, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", value)
}

// Date converts a raw date or datetime string to YYYY-MM-DD.
//
// A fractional-seconds suffix is stripped before matching, then each entry
// in dateFormats is tried in order; the first that parses wins. If nothing
// matches, the first 10 characters of the original input are returned
// verbatim. Empty input yields an empty string.
func Date(raw string) string {
	if raw == "" {
		return ""
	}
	candidate := stripFraction(raw)
	for _, format := range dateFormats {
		if t, err := time.Parse(format, candidate); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return truncate(raw, 10)
}

// DateTime converts a raw datetime string to the Salesforce ISO-8601 form
// YYYY-MM-DDTHH:MM:SS.000Z.
//
// The fractional-seconds suffix is stripped, then the value is parsed as
// YYYY-MM-DD HH:MM:SS. On failure the Date normalizer is consulted; a
// recovered date gets a midnight time component appended. If no date can
// be recovered either, the result is empty.
func DateTime(raw string) string {
	if raw == "" {
		return ""
	}
	candidate := stripFraction(raw)
	if t, err := time.Parse("2006-01-02 15:04:05", candidate); err == nil {
		return t.Format("2006-01-02T15:04:05") + ".000Z"
	}
	if date := Date(raw); date != "" {
		return date + "T00:00:00.000Z"
	}
	return ""
}

// Boolean converts a raw value to the Salesforce boolean literals "true"
// and "false". The accepted truthy spellings are 1, TRUE, YES, Y and T in
// any case; everything else, including empty input, is "false".
func Boolean(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "1", "TRUE", "YES", "Y", "T":
		return "true"
	default:
		return "false"
	}
}

// stripFraction removes a fractional-seconds suffix ("...10:00:00.123")
// before date parsing.
func stripFraction(s string) string {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
