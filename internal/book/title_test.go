package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeTitle(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: "Dom Casmurro", want: "Dom Casmurro"},
		{name: "encoded once", raw: "A%20B", want: "A B"},
		{name: "encoded twice", raw: "A%2520B", want: "A B"},
		{name: "encoded three times keeps one layer", raw: "A%252520B", want: "A%20B"},
		{name: "plus is literal", raw: "C++ Primer", want: "C++ Primer"},
		{name: "malformed escape", raw: "100%", want: "100%"},
		{name: "malformed after first round", raw: "100%2", want: "100%2"},
		{name: "second round malformed", raw: "50%25", want: "50%"},
		{name: "utf-8", raw: "S%C3%A3o%20Bernardo", want: "São Bernardo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeTitle(tt.raw))
		})
	}
}
