package command

import "github.com/ev3-protocol/ev3-go/pkg/wire"

// Tone limits accepted by the brick speaker.
const (
	MinToneFrequency = 250
	MaxToneFrequency = 10000
	MaxToneVolume    = 100
)

// PlayTone builds SOUND/PLAY_TONE. It returns false, and no command, when
// durationMs is not positive.
//
// The frequency and volume clamps form one if/else-if chain: volume is
// only clamped when the frequency is already in range.
func PlayTone(frequencyHz, durationMs, volumePercent int) (*wire.Command, bool) {
	if durationMs <= 0 {
		return nil, false
	}

	if frequencyHz > MaxToneFrequency {
		frequencyHz = MaxToneFrequency
	} else if frequencyHz < MinToneFrequency {
		frequencyHz = MinToneFrequency
	} else if volumePercent > MaxToneVolume {
		volumePercent = MaxToneVolume
	}

	return wire.NewCommand(wire.DirectNoReply, wire.OpSound).
		Bare(wire.SoundPlayTone).
		Long1(volumePercent).
		Long2(frequencyHz).
		Long2(durationMs), true
}
