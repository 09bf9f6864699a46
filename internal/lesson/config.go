package lesson

import "time"

// Config tunes the generation pipeline.
type Config struct {
	// SkeletonTimeout bounds the single stage-1 call.
	SkeletonTimeout time.Duration
	// ItemTimeout bounds each stage-2 enhancement call.
	ItemTimeout time.Duration
	// MaxInFlight caps concurrent enhancement calls.
	MaxInFlight int
	// SkeletonAttempts is the total tries for stage 1 (initial + retry).
	SkeletonAttempts int
	// ItemAttempts is the total tries per enhancement item.
	ItemAttempts int

	SkeletonMaxTokens int
	ItemMaxTokens     int
	Temperature       float64
}

// DefaultConfig returns the pipeline defaults.
func DefaultConfig() Config {
	return Config{
		SkeletonTimeout:   3 * time.Minute,
		ItemTimeout:       45 * time.Second,
		MaxInFlight:       4,
		SkeletonAttempts:  2,
		ItemAttempts:      2,
		SkeletonMaxTokens: 8192,
		ItemMaxTokens:     1024,
		Temperature:       0.7,
	}
}
