package mcp

import (
	"context"

	"dissolve/internal/prompt"
)

type enhanceInput struct {
	UserIntent    string `json:"user_intent" jsonschema:"description of the desired dissolution aesthetic"`
	StyleOverride string `json:"style_override,omitempty" jsonschema:"visual type id to apply instead of the detected one"`
	Substrate     string `json:"substrate,omitempty" jsonschema:"optional substrate type id"`
	Intensity     string `json:"intensity,omitempty" jsonschema:"subtle, moderate or dramatic (default moderate)"`
}

func (s *Server) registerSynthesisTools() {
	addTool(s, "enhance_dissolution_prompt",
		"Classify the intent, map the applied style and bundle prompt, parameters and vocabulary for a prompt writer.",
		func(_ context.Context, in enhanceInput) (prompt.Enhancement, error) {
			return prompt.Enhance(s.tax, prompt.EnhanceRequest{
				UserIntent:    in.UserIntent,
				StyleOverride: in.StyleOverride,
				Substrate:     in.Substrate,
				Intensity:     in.Intensity,
			})
		})
}
