package redis

import "fmt"

// Key patterns
const (
	KeyUserState = "lines:state:%s:%s" // lines:state:{installationID}:{stateKey}
)

// KeyBuilder provides environment-aware Redis key building functionality
type KeyBuilder struct {
	prefix string // Environment prefix (staging/prod)
}

// NewKeyBuilder creates a new key builder with environment-based prefix
func NewKeyBuilder(environment string) *KeyBuilder {
	prefix := "prod"
	if environment == "development" || environment == "staging" {
		prefix = "staging"
	}

	return &KeyBuilder{
		prefix: prefix,
	}
}

// BuildKey constructs a Redis key with the environment prefix
func (kb *KeyBuilder) BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, key)
}

// GetPrefix returns the current environment prefix
func (kb *KeyBuilder) GetPrefix() string {
	return kb.prefix
}

// KeyUserState builds the key holding one piece of persisted user state
func (kb *KeyBuilder) KeyUserState(installationID, stateKey string) string {
	return kb.BuildKey(fmt.Sprintf(KeyUserState, installationID, stateKey))
}
