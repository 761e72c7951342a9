// internal/validator/dni.go

package validator

import (
	"fmt"
	"regexp"
)

var dniPattern = regexp.MustCompile(`^[0-9]{8}[A-Z]$`)

// ValidDNI reports whether s is 8 ASCII digits followed by one uppercase ASCII letter.
// Only the shape is checked; the control letter is not recomputed.
func ValidDNI(s string) bool {
	return dniPattern.MatchString(s)
}

// CheckDNI 回傳 ErrDNIFormat（包含原始輸入）或 nil。
func CheckDNI(s string) error {
	if !ValidDNI(s) {
		return fmt.Errorf("%w: %q", ErrDNIFormat, s)
	}
	return nil
}
