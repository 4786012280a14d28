package memo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "single token",
			args: []string{"buy milk"},
			want: "buy milk",
		},
		{
			name: "multiple tokens joined with single spaces",
			args: []string{"buy", "milk"},
			want: "buy milk",
		},
		{
			name: "surrounding whitespace trimmed",
			args: []string{"  buy milk  "},
			want: "buy milk",
		},
		{
			name: "interior whitespace of a token preserved",
			args: []string{"buy   milk"},
			want: "buy   milk",
		},
		{
			name: "unicode content untouched",
			args: []string{"メモを", "残す"},
			want: "メモを 残す",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeEmpty(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "single space", args: []string{" "}},
		{name: "whitespace only tokens", args: []string{"  ", "\t", "\n"}},
		{name: "empty strings", args: []string{"", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.args)
			assert.ErrorIs(t, err, ErrEmptyText)
		})
	}
}
