package utils

import "regexp"

// pincodeRegex matches a six-digit postal area code that does not start
// with zero. The pincode is the sole matching key between requesters and
// scrappers.
var pincodeRegex = regexp.MustCompile(`^[1-9][0-9]{5}$`)

// IsValidPincode reports whether the given string is a well-formed postal
// area code.
func IsValidPincode(pincode string) bool {
	return pincodeRegex.MatchString(pincode)
}

// IsValidEmail checks if a string is a valid email address
func IsValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9_%+\-]([a-zA-Z0-9._%+\-]*[a-zA-Z0-9_%+\-])?@[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
