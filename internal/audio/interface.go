package audio

import "context"

// Normalizer converts arbitrary media into the fixed-rate mono WAV the
// transcription backends expect.
type Normalizer interface {
	// Normalize writes a new temporary WAV next to the input and
	// returns its path. The input file is not mutated.
	Normalize(ctx context.Context, mediaPath string) (string, error)
}
