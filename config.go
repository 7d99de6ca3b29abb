package webclip

import "time"

// Config holds the tunable settings for the clip pipeline. The zero
// value is not usable; start from DefaultConfig and override.
type Config struct {
	// ReadingRoot is the folder under which clipped notes are stored.
	ReadingRoot string

	// RetryAttempts is the total number of download attempts per asset
	// (one initial attempt plus retries).
	RetryAttempts int

	// RetryCooldown is the fixed wait between failed asset attempts.
	RetryCooldown time.Duration

	// PolitenessDelay is the minimum spacing between asset downloads
	// from the origin server.
	PolitenessDelay time.Duration

	// Concurrency bounds the number of asset downloads in flight.
	Concurrency int

	// FetchTimeout applies to each individual HTTP request.
	FetchTimeout time.Duration

	// UserAgent is sent with every request.
	UserAgent string
}

// DefaultConfig returns the configuration used when no overrides are
// given.
func DefaultConfig() Config {
	return Config{
		ReadingRoot:     "0 Reading",
		RetryAttempts:   4,
		RetryCooldown:   time.Second,
		PolitenessDelay: 200 * time.Millisecond,
		Concurrency:     4,
		FetchTimeout:    10 * time.Second,
		UserAgent:       "webclip/1.0",
	}
}

// Validate returns an error if the configuration contains invalid
// fields.
func (c Config) Validate() error {
	if c.ReadingRoot == "" {
		return Errorf(EINVALID, "reading root required")
	}
	if c.RetryAttempts < 1 {
		return Errorf(EINVALID, "retry attempts must be at least 1, got %d", c.RetryAttempts)
	}
	if c.RetryCooldown < 0 {
		return Errorf(EINVALID, "retry cooldown must not be negative")
	}
	if c.PolitenessDelay < 0 {
		return Errorf(EINVALID, "politeness delay must not be negative")
	}
	if c.Concurrency < 1 {
		return Errorf(EINVALID, "concurrency must be at least 1, got %d", c.Concurrency)
	}
	return nil
}
