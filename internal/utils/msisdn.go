package utils

import (
	"regexp"
	"strings"
)

// MobilePattern matches Egyptian mobile numbers with an optional +20, 20 or 0 prefix
const MobilePattern = `^(?:\+20|20|0)?1[0125]\d{8}$`

var mobileRegex = regexp.MustCompile(MobilePattern)

// ValidateMobile reports whether mobile is an acceptable Egyptian mobile number.
// Surrounding whitespace is ignored; the number itself is not rewritten.
func ValidateMobile(mobile string) bool {
	return mobileRegex.MatchString(strings.TrimSpace(mobile))
}

// MaskMobile hides all but the last three digits, for log output
func MaskMobile(mobile string) string {
	stripped := strings.TrimSpace(mobile)
	if len(stripped) <= 3 {
		return "***"
	}
	return strings.Repeat("*", len(stripped)-3) + stripped[len(stripped)-3:]
}
