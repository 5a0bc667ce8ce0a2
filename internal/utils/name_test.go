package utils

import (
	"errors"
	"testing"
)

func TestSplitDisplayName(t *testing.T) {
	tests := []struct {
		name        string
		displayName string
		first       string
		last        string
		wantErr     bool
	}{
		{name: "two parts", displayName: "Jane Doe", first: "Jane", last: "Doe"},
		{name: "middle names join the last name", displayName: "Jane Q Public", first: "Jane", last: "Q Public"},
		{name: "extra whitespace", displayName: "  Jane   Doe  ", first: "Jane", last: "Doe"},
		{name: "single word", displayName: "Jane", wantErr: true},
		{name: "empty", displayName: "", wantErr: true},
		{name: "whitespace only", displayName: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last, err := SplitDisplayName(tt.displayName)
			if tt.wantErr {
				if !errors.Is(err, ErrNameSplit) {
					t.Fatalf("expected ErrNameSplit, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if first != tt.first || last != tt.last {
				t.Errorf("got (%q, %q), want (%q, %q)", first, last, tt.first, tt.last)
			}
		})
	}
}
