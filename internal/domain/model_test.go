package domain_test

import (
	"testing"

	"github.com/prodcat/prodcat/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSaveEntry_ShortHash(t *testing.T) {
	tests := []struct {
		hash, want string
	}{
		{"0123456789abcdef0123456789abcdef01234567", "0123456"},
		{"abc", "abc"},
		{"", ""},
	}
	for _, tt := range tests {
		e := domain.SaveEntry{CommitHash: tt.hash}
		assert.Equal(t, tt.want, e.ShortHash())
	}
}
