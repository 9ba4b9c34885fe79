package model

// Resolve fills in the provider and model when they are empty. An empty
// provider falls back to gemini; an empty model falls back to the
// provider's default.
func Resolve(provider, model string) (string, string) {
	if provider == "" {
		provider = Gemini
	}
	if model == "" {
		model = DefaultModel(provider)
	}
	return provider, model
}
