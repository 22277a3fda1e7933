package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLuhn(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		valid     bool
	}{
		{
			name:      "Valid reference",
			reference: "2377225624",
			valid:     true,
		},
		{
			name:      "Invalid checksum",
			reference: "1234567890",
			valid:     false,
		},
		{
			name:      "Non-numeric reference",
			reference: "12a4567890",
			valid:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsLuhn(tt.reference))
		})
	}
}
