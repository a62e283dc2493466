// Package wish drafts short guestbook wish messages for the couple. The
// Gemini call is best effort; anything that goes wrong degrades to a fixed
// sentence so the site never depends on the API being up.
package wish

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// FallbackWish is served whenever generation is unavailable or fails.
const FallbackWish = "May your life together be full of love and your love be full of life."

const defaultModel = "gemini-2.0-flash"

// Generator drafts a wish from the guest's relationship to the couple and
// the desired tone. Implementations must not fail; they degrade instead.
type Generator interface {
	Generate(ctx context.Context, relationship, tone string) string
}

// Gemini generates wishes with the Gemini API.
type Gemini struct {
	client *genai.Client
	couple string
	model  string
	log    zerolog.Logger
}

// NewGemini builds a generator. With an empty API key, or when the client
// cannot be constructed, the generator serves only the fallback sentence.
func NewGemini(ctx context.Context, apiKey, couple string, log zerolog.Logger) *Gemini {
	g := &Gemini{couple: couple, model: defaultModel, log: log}
	if apiKey == "" {
		log.Warn().Msg("gemini api key not set, serving canned wishes")
		return g
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Warn().Err(err).Msg("gemini client unavailable, serving canned wishes")
		return g
	}
	g.client = client
	return g
}

func (g *Gemini) Generate(ctx context.Context, relationship, tone string) string {
	if g.client == nil {
		return FallbackWish
	}
	prompt := fmt.Sprintf(
		"Write a short, heartwarming wedding wish (max 2 sentences) for a couple named %s. "+
			"The guest is a %s of the couple. The tone should be %s. "+
			"Keep it elegant and suitable for an Indian wedding guestbook.",
		g.couple, relationship, tone,
	)
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		g.log.Warn().Err(err).Msg("wish generation failed")
		return FallbackWish
	}
	if text := strings.TrimSpace(resp.Text()); text != "" {
		return text
	}
	return "Congratulations on your special day!"
}
