package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCreationDate(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"ui format", "2022-06-05T12:12", "05-06-2022 12:12"},
		{"storage format untouched", "05-06-2022 12:12", "05-06-2022 12:12"},
		{"time passed through", "2022-06-23T11:12:59", "23-06-2022 11:12:59"},
		{"no range validation", "2022-13-45T99:99", "45-13-2022 99:99"},
		{"empty", "", ""},
		{"malformed date half", "2022T10:00", "2022 10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCreationDate(tt.token))
		})
	}
}
