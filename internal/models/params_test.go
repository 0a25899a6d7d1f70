package models

import "testing"

func TestParamsClamp(t *testing.T) {
	tests := []struct {
		name string
		in   Params
		want Params
	}{
		{
			name: "in range untouched",
			in:   Params{Temperature: 0.5, TopP: 0.9, MaxTokens: 100, TopK: 3},
			want: Params{Temperature: 0.5, TopP: 0.9, MaxTokens: 100, TopK: 3},
		},
		{
			name: "too low",
			in:   Params{Temperature: 0, TopP: -1, MaxTokens: 0, TopK: 0},
			want: Params{Temperature: 0.1, TopP: 0.1, MaxTokens: 50, TopK: 1},
		},
		{
			name: "too high",
			in:   Params{Temperature: 2, TopP: 1.5, MaxTokens: 4096, TopK: 50},
			want: Params{Temperature: 1.0, TopP: 1.0, MaxTokens: 512, TopK: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Clamp(); got != tt.want {
				t.Errorf("Clamp() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDefaultParamsAreInRange(t *testing.T) {
	p := DefaultParams()
	if p != p.Clamp() {
		t.Errorf("defaults should survive clamping unchanged: %+v", p)
	}
}
