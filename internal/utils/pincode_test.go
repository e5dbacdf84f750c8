package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPincode(t *testing.T) {
	testCases := []struct {
		name    string
		pincode string
		want    bool
	}{
		{name: "valid six digit code", pincode: "560001", want: true},
		{name: "valid code ending in zeros", pincode: "110000", want: true},
		{name: "leading zero", pincode: "060001", want: false},
		{name: "too short", pincode: "56001", want: false},
		{name: "too long", pincode: "5600011", want: false},
		{name: "non numeric", pincode: "56OO01", want: false},
		{name: "empty", pincode: "", want: false},
		{name: "embedded whitespace", pincode: "560 01", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidPincode(tc.pincode))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.org"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail("user@"))
}
