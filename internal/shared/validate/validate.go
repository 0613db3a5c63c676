package validate

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// gmailRegex accepts a local part of an alphanumeric character
	// optionally followed by 4-28 alphanumeric/dot/underscore characters
	// and a closing alphanumeric character, at the gmail.com domain.
	// Consecutive dots are rejected separately (no lookaheads in RE2).
	gmailRegex = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9._]{4,28}[a-zA-Z0-9])?@gmail\.com$`)

	// Nigerian mobile numbers: local 0 + {70,80,81,90,91} + 8 digits,
	// or international +234/234 with the same prefix set.
	localPhoneRegex = regexp.MustCompile(`^0(70|80|81|90|91)\d{8}$`)
	intlPhoneRegex  = regexp.MustCompile(`^(\+234|234)(70|80|81|90|91)\d{8}$`)
)

// Reg-no structural failures, reported in check order.
var (
	ErrRegNoPrefix = errors.New("Registration number must start with '2022/'")
	ErrRegNoSlash  = errors.New("Registration number must contain '/' after the first 4 digits")
	ErrRegNoLength = errors.New("Registration number must not exceed 11 characters")
)

// IsGmail validates a Gmail address strictly. The input is expected to
// be normalized (trimmed, lowercased) already; fails closed on empty.
func IsGmail(email string) bool {
	if email == "" {
		return false
	}
	if !gmailRegex.MatchString(email) {
		return false
	}
	local := strings.TrimSuffix(email, "@gmail.com")
	return !strings.Contains(local, "..")
}

// IsNigerianPhone validates Nigerian phone numbers in local (11-digit)
// or international (+234 / 234) form. Spaces and hyphens are ignored.
func IsNigerianPhone(phone string) bool {
	if phone == "" {
		return false
	}
	phone = strings.TrimSpace(phone)
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	return localPhoneRegex.MatchString(phone) || intlPhoneRegex.MatchString(phone)
}

// CheckRegNo applies the structural registration-number rules in order
// and returns the first violation, or nil. The slash rule inspects the
// substring from index 4, which includes the '/' of the prefix itself;
// that leniency is intentional and load-bearing for existing data.
func CheckRegNo(regNo string) error {
	if !strings.HasPrefix(regNo, "2022/") {
		return ErrRegNoPrefix
	}
	if !strings.Contains(regNo[4:], "/") {
		return ErrRegNoSlash
	}
	if len(regNo) > 11 {
		return ErrRegNoLength
	}
	return nil
}

// Categorical sets. Inputs are expected lowercased except for title,
// which is checked in its storage casing.
func IsGender(gender string) bool {
	return gender == "male" || gender == "female"
}

func IsMemberRole(role string) bool {
	return role == "student" || role == "exco"
}

func IsAdmissionType(admissionType string) bool {
	switch admissionType {
	case "utme", "direct entry", "transfer admission":
		return true
	}
	return false
}

func IsTitle(title string) bool {
	return title == "Dr" || title == "Prof"
}
