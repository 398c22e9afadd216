// Package llm provides the Gemini client abstraction and model tier
// configuration used by resume parsing.
package llm

// ModelTier represents the capability level requested for a call.
type ModelTier string

const (
	// TierLite is for simple tasks: classification, short extraction
	TierLite ModelTier = "lite"
	// TierStandard is for structured output: resume parsing
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning
	TierAdvanced ModelTier = "advanced"
)

// Config holds the model names per tier.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a tier, falling back to standard and
// then lite when the tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with the tier's model replaced.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{Models: make(map[ModelTier]string, len(c.Models))}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return out
}
