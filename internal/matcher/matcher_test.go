package matcher

import (
	"math"
	"testing"
)

var champions = NewVocabulary("Aatrox", "Ahri", "Akali", "Ashe", "Garen", "Kai'Sa", "Lux", "Zed")

func TestMatchChampions(t *testing.T) {
	m := New(champions, 0.7)

	tests := []struct {
		in   string
		want string
	}{
		{"Ahri", "Ahri"},
		{"Ahrl", "Ahri"},
		{" Garen ", "Garen"},
		{"Kai Sa", "Kai'Sa"},
		{"Zzzznoise", ""},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := m.Match(tt.in); got != tt.want {
			t.Errorf("Match(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	m := New(champions, 0.7)
	for _, in := range []string{"Ahrl", "Akal1", "Zzzznoise", "Ashe"} {
		first := m.Match(in)
		for i := 0; i < 5; i++ {
			if got := m.Match(in); got != first {
				t.Fatalf("Match(%q) changed from %q to %q", in, first, got)
			}
		}
	}
}

func TestMatchFirstQualifyingWins(t *testing.T) {
	// "Ashe" 与 "Ashen" 都达到阈值，名称表中靠前的优先
	v := NewVocabulary("Ashen", "Ashe")
	if got := New(v, 0.7).Match("Ashe!"); got != "Ashen" {
		t.Errorf("Match = %q, want first qualifying candidate %q", got, "Ashen")
	}
	// 精确匹配不受顺序影响
	if got := New(v, 0.7).Match("Ashe"); got != "Ashe" {
		t.Errorf("exact Match = %q", got)
	}
}

func TestMatchNeverBelowThreshold(t *testing.T) {
	inputs := []string{"Ahrl", "Akal", "Aatr0x", "Gar", "Lu", "Zedd", "Kaisa", "Asheee", "xyz", "A"}
	for _, threshold := range []float64{0.5, 0.7, 0.85} {
		m := New(champions, threshold)
		for _, in := range inputs {
			got := m.Match(in)
			if got == "" || got == in {
				continue
			}
			if r := Ratio(got, in); r < threshold {
				t.Errorf("Match(%q) at %.2f = %q with ratio %.3f", in, threshold, got, r)
			}
		}
	}
}

func TestMatchItemsContainment(t *testing.T) {
	items := NewVocabulary("Deathblade", "Giant Slayer", "Bloodthirster")
	m := New(items, 0.85, WithContainment())

	tests := []struct {
		in   string
		want string
	}{
		{"Deathblade", "Deathblade"},
		{"Giant Slayer +15% AD", "Giant Slayer"},
		{"Bloodthirstr", "Bloodthirster"},
		{"Bloodthirs", ""},
		{"Sword", ""},
	}
	for _, tt := range tests {
		if got := m.Match(tt.in); got != tt.want {
			t.Errorf("Match(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1},
		{"Ahri", "Ahri", 1},
		{"Ahri", "Ahrl", 0.75},
		{"Ahri", "", 0},
		{"阿狸", "阿理", 0.5},
	}
	for _, tt := range tests {
		if got := Ratio(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Ratio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got, back := Ratio(tt.a, tt.b), Ratio(tt.b, tt.a); got != back {
			t.Errorf("Ratio not symmetric for %q/%q: %v vs %v", tt.a, tt.b, got, back)
		}
	}
}
