package wish

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func TestGenerateWithoutAPIKeyFallsBack(t *testing.T) {
	g := NewGemini(context.Background(), "", "Aarav and Diya", zerolog.Nop())

	got := g.Generate(context.Background(), "College Friend", "Playful")
	if got != FallbackWish {
		t.Errorf("Generate() = %q, want fallback sentence", got)
	}
}

func TestGenerateIsDeterministicWithoutClient(t *testing.T) {
	g := NewGemini(context.Background(), "", "Aarav and Diya", zerolog.Nop())

	first := g.Generate(context.Background(), "Family Member", "Heartfelt")
	second := g.Generate(context.Background(), "Colleague", "Formal")
	if first != second {
		t.Errorf("canned wishes diverged: %q vs %q", first, second)
	}
}
