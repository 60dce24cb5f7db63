package parameter

// Audio
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// HumBaseFrequency is the idle rotor hum pitch in Hz
	HumBaseFrequency = 110.0

	// HumThrustFrequency is the additional pitch at full thrust in Hz
	HumThrustFrequency = 70.0

	// HumGain is the hum amplitude in [0,1]
	HumGain = 0.15
)
