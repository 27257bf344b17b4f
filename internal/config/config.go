package config

import "time"

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "aura"

	DefaultTPS = 60

	// Particle field sizing
	DensityDivisor   = 25000.0
	MinParticles     = 60
	MaxParticles     = 220
	OrbRatio         = 0.08
	MinOrbitRadius   = 20.0
	OrbitScaleMin    = 0.06
	OrbitScaleMax    = 0.9
	ParticleSpeedMin = 0.0006
	ParticleSpeedMax = 0.0035
	ParticleSizeMin  = 0.6
	ParticleSizeMax  = 3.4
	ParticleHueMin   = 200.0
	ParticleHueMax   = 270.0
	ParticleAlphaMin = 0.08
	ParticleAlphaMax = 0.7
	TwinkleMin       = 0.3
	TwinkleMax       = 1.6

	OrbVelocity  = 0.08
	OrbRadiusMin = 0.6
	OrbRadiusMax = 2.6
	OrbLifeMin   = 80.0
	OrbLifeMax   = 240.0
	OrbHueMin    = 190.0
	OrbHueMax    = 260.0

	// Per-tick motion
	PointerBias     = 0.00008
	WobbleAmplitude = 0.0006
	WobbleRate      = 0.002
	PhaseStep       = 0.003
	RadiusWave      = 0.02
	RadiusWaveRate  = 0.002
	PulseRate       = 0.01
	PulseGain       = 1.8
	OrbDrift        = 0.02
	OrbDriftRateX   = 0.002
	OrbDriftRateY   = 0.001
	WrapMargin      = 30.0

	// Center drift
	DriftInterval = 60 * time.Millisecond
	DriftRateX    = 0.0009
	DriftRateY    = 0.0007
	DriftAmpX     = 20.0
	DriftAmpY     = 14.0

	// Ambient layer
	GlowInnerRadius = 40.0
	GlowOuterScale  = 0.9
	ScanlineStep    = 40
	ScanlineAmp     = 6.0
	ScanlineTilt    = 2.0

	// Parallax
	SigilRotation = 6.0
	SigilShift    = 2.0
	ShadowShift   = 6.0
	ShadowBlur    = 12.0

	// Ambient hum
	HumSampleRate = 44100
	HumBaseFreq   = 55.0
	HumVolume     = -2.5
	TapRingSize   = 4096
	GlowBoost     = 0.5
)
