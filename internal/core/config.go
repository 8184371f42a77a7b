package core

// RuntimeConfig contains configuration passed to a session at initialization.
// The platform layer fills it from flags, the terminal and the SSH session.
type RuntimeConfig struct {
	ScreenW int    // Screen width in characters
	ScreenH int    // Screen height in characters
	Seed    int64  // RNG seed for deterministic boards
	Profile string // Player profile used to scope persisted progress
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
		Profile: DefaultProfile,
	}
}

// DefaultProfile is the profile name used for local play.
const DefaultProfile = "local"
