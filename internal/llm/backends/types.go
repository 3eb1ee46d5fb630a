// Package backends - LLM provider backend implementations and types
package backends

// This file declares no types. The provider config types (GeminiConfig,
// VertexAIConfig, OpenAIConfig) are declared in pkg/models, and the
// providers in this package type-assert their config to those.
