package models

// ContextSeparator joins retrieved chunks inside the prompt.
const ContextSeparator = "\n\n---\n\n"

// Decoding and retrieval parameter bounds. Values outside these ranges are
// clamped rather than rejected.
const (
	MinTemperature = 0.1
	MaxTemperature = 1.0
	MinTopP        = 0.1
	MaxTopP        = 1.0
	MinMaxTokens   = 50
	MaxMaxTokens   = 512
	MinTopK        = 1
	MaxTopK        = 10
)

// Params holds the caller-adjustable generation and retrieval settings.
type Params struct {
	Temperature float64
	TopP        float64
	MaxTokens   int
	TopK        int
}

// DefaultParams mirrors the defaults the assistant ships with.
func DefaultParams() Params {
	return Params{
		Temperature: 0.7,
		TopP:        0.7,
		MaxTokens:   256,
		TopK:        5,
	}
}

// Clamp returns a copy with every field forced into its allowed range.
func (p Params) Clamp() Params {
	p.Temperature = clampFloat(p.Temperature, MinTemperature, MaxTemperature)
	p.TopP = clampFloat(p.TopP, MinTopP, MaxTopP)
	p.MaxTokens = clampInt(p.MaxTokens, MinMaxTokens, MaxMaxTokens)
	p.TopK = clampInt(p.TopK, MinTopK, MaxTopK)
	return p
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
