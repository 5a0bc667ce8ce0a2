package dto

import (
	"reflect"
	"testing"
)

func TestParsedImmediacy(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1", 1},
		{"5", 5},
		{"10", 10},
		{"2", 0},
		{"7", 0},
		{"", 0},
		{"high", 0},
	}
	for _, tt := range tests {
		r := &NewRequest{Immediacy: tt.in}
		if got := r.ParsedImmediacy(); got != tt.want {
			t.Errorf("ParsedImmediacy(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSelectedNeeds(t *testing.T) {
	r := &NewRequest{Needs: map[string]bool{
		"prescription-pickup": true,
		"grocery-pickup":      true,
		"errand-run":          false,
	}}
	want := []string{"grocery-pickup", "prescription-pickup"}
	if got := r.SelectedNeeds(); !reflect.DeepEqual(got, want) {
		t.Errorf("SelectedNeeds() = %v, want %v", got, want)
	}
}

func TestSelectedNeedsEmpty(t *testing.T) {
	r := &NewRequest{}
	if got := r.SelectedNeeds(); len(got) != 0 {
		t.Errorf("SelectedNeeds() on nil map = %v, want empty", got)
	}
}

func TestParsedFinancialAssistance(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"false", false},
		{"", false},
		{"maybe", false},
	}
	for _, tt := range tests {
		r := &NewRequest{NeedFinancialAssistance: tt.in}
		if got := r.ParsedFinancialAssistance(); got != tt.want {
			t.Errorf("ParsedFinancialAssistance(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
