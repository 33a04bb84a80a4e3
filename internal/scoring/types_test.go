package scoring

import "testing"

func TestBreakdownSum(t *testing.T) {
	tests := []struct {
		name string
		b    Breakdown
		want int
	}{
		{"Zero value", Breakdown{}, 0},
		{"All categories", Breakdown{Recall: 30, Wiki: 20, SEO: 15, Platforms: 10}, 75},
		{"Single category", Breakdown{SEO: 12}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.Sum(); got != tt.want {
				t.Errorf("Sum() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTier(t *testing.T) {
	tests := []struct {
		name  string
		total int
		want  string
	}{
		{"A boundary", 85, "A"},
		{"Top score", 100, "A"},
		{"B boundary", 70, "B"},
		{"Below A", 84, "B"},
		{"C boundary", 50, "C"},
		{"D boundary", 30, "D"},
		{"Below D", 29, "F"},
		{"Zero", 0, "F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tier(tt.total); got != tt.want {
				t.Errorf("Tier(%d) = %q, want %q", tt.total, got, tt.want)
			}
		})
	}
}
