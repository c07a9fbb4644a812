package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Customer@Example.COM", "customer@example.com"},
		{"  padded@example.com  ", "padded@example.com"},
		{"already@example.com", "already@example.com"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeEmail(tt.input))
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email    string
		expected bool
	}{
		{"user@example.com", true},
		{"user.name+tag@sub.example.co", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"user@", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsValidEmail(tt.email), "email: %s", tt.email)
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	tests := []struct {
		phone    string
		expected bool
	}{
		{"+201234567890", true},
		{"01234567890", true},
		{"123", false},
		{"not-a-phone", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsValidPhoneNumber(tt.phone), "phone: %s", tt.phone)
	}
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"customer@example.com", "cu******@example.com"},
		{"ab@example.com", "ab@example.com"},
		{"not-an-email", "not-an-email"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MaskEmail(tt.input))
	}
}

func TestMaskPhoneNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"+201234567890", "********7890"},
		{"1234", "1234"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MaskPhoneNumber(tt.input))
	}
}
