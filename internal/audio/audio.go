// Package audio synthesizes the platformer's sound effects with beep.
// Playback is fire-and-forget: the simulation never waits on audio and
// consumes no return values from it.
package audio

// SoundID selects one of the game's effects.
type SoundID int

const (
	SoundJump SoundID = iota
	SoundCoin
	SoundDeath
)

// String returns a human-readable name for the sound.
func (id SoundID) String() string {
	switch id {
	case SoundJump:
		return "jump"
	case SoundCoin:
		return "coin"
	case SoundDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Player is the collaborator the game core fires effects into.
type Player interface {
	Play(SoundID)
}

// Nop discards every effect. Used in tests, over SSH, and when audio is
// muted or the backend cannot initialize.
type Nop struct{}

// Play discards the effect.
func (Nop) Play(SoundID) {}
