package utils

import (
	"fmt"
	"regexp"
)

// Accepted phone number formats:
//   X-XXX-XXX        (2-222-222)
//   XXX-XXX-XXX      (333-333-333)
//   X-XXX-XXX-XX-XX  (8-923-666-13-13)
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{1}-\d{3}-\d{3}$`),
	regexp.MustCompile(`^\d{3}-\d{3}-\d{3}$`),
	regexp.MustCompile(`^\d{1}-\d{3}-\d{3}-\d{2}-\d{2}$`),
}

// ValidatePhoneNumber checks the number against the accepted formats.
func ValidatePhoneNumber(number string) error {
	for _, pattern := range phonePatterns {
		if pattern.MatchString(number) {
			return nil
		}
	}
	return fmt.Errorf("invalid phone number format: %s, accepted formats: X-XXX-XXX, XXX-XXX-XXX, X-XXX-XXX-XX-XX", number)
}

// ValidatePhoneNumbers validates every number in the slice, failing on
// the first invalid one.
func ValidatePhoneNumbers(numbers []string) error {
	for _, number := range numbers {
		if err := ValidatePhoneNumber(number); err != nil {
			return err
		}
	}
	return nil
}

// ValidateLatitude checks that latitude is within [-90, 90] degrees.
func ValidateLatitude(lat float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90 degrees, got %v", lat)
	}
	return nil
}

// ValidateLongitude checks that longitude is within [-180, 180] degrees.
func ValidateLongitude(lon float64) error {
	if lon < -180 || lon > 180 {
		return fmt.Errorf("longitude must be between -180 and 180 degrees, got %v", lon)
	}
	return nil
}

// ValidateCoordinates validates a latitude/longitude pair.
func ValidateCoordinates(lat, lon float64) error {
	if err := ValidateLatitude(lat); err != nil {
		return err
	}
	return ValidateLongitude(lon)
}
