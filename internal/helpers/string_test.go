package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHostUrl(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		expected string
	}{
		{"bare host gets scheme and port", "vault.example.com", "https://vault.example.com:10001"},
		{"host with port keeps port", "vault.example.com:8001", "https://vault.example.com:8001"},
		{"https host with port untouched", "https://vault.example.com:10001", "https://vault.example.com:10001"},
		{"http host kept", "http://127.0.0.1:8080", "http://127.0.0.1:8080"},
		{"trailing slash removed", "https://vault.example.com:10001/", "https://vault.example.com:10001"},
		{"https host without port gets default", "https://vault.example.com", "https://vault.example.com:10001"},
		{"host with path gets port before path", "https://vault.example.com/pps", "https://vault.example.com:10001/pps"},
		{"bare host with path gets scheme and port", "vault.example.com/pps", "https://vault.example.com:10001/pps"},
		{"host with path and port untouched", "https://vault.example.com:8001/pps", "https://vault.example.com:8001/pps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHostUrl(tt.host))
		})
	}
}

func TestGetHostApiBaseUrl(t *testing.T) {
	assert.Equal(t, "https://vault.example.com:10001/api/v5/rest", GetHostApiBaseUrl("vault.example.com"))
}

func TestCleanUrlSuffixAndPrefix(t *testing.T) {
	assert.Equal(t, "abc", CleanUrlSuffixAndPrefix("/abc/"))
	assert.Equal(t, "abc", CleanUrlSuffixAndPrefix("abc"))
}
