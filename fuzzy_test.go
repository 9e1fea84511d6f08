package flydent

import (
	"testing"
)

func TestFindNation(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		query      string
		wantNation string
	}{
		{"Afghanistan", "Afghanistan"},
		{"afghanistan", "Afghanistan"}, // exact match is case-insensitive
		{"Afganistan", "Afghanistan"},  // missing 'h' (distance 1)
		{"Swizerland", "Switzerland"},  // missing 't' (distance 1)
		{"Jpan", "Japan"},              // missing 'a' (distance 1)
		{"Icland", "Iceland"},          // missing 'e' (distance 1)
		{"Autralia", "Australia"},      // missing 's' (distance 1)
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r, ok := p.FindNation(tt.query)
			if !ok {
				t.Fatalf("FindNation(%q) found nothing", tt.query)
			}
			if r.Nation != tt.wantNation {
				t.Errorf("FindNation(%q) = %q, want %q", tt.query, r.Nation, tt.wantNation)
			}
		})
	}
}

func TestFindNationMisses(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	// Nothing in the dataset is within two edits of these.
	for _, query := range []string{"", "   ", "Atlantis", "Zzzzzzzzzz"} {
		if r, ok := p.FindNation(query); ok {
			t.Errorf("FindNation(%q) = %q, want no match", query, r.Nation)
		}
	}
}

func BenchmarkFindNation(b *testing.B) {
	p, err := Default()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.FindNation("Afganistan")
	}
}
