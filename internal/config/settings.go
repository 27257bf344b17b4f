package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings holds the runtime options that can be overridden from a YAML file.
//
// Every field has a usable default (see Default), so a settings file only
// needs to name what it changes:
//
//	window:
//	  width: 1920
//	  height: 1080
//	audio:
//	  enabled: true
type Settings struct {
	Window WindowSettings `yaml:"window"`

	// TPS is the update rate of the animation loop.
	TPS int `yaml:"tps"`

	// DevicePixelRatio overrides the monitor scale factor when > 0.
	DevicePixelRatio float64 `yaml:"device_pixel_ratio"`

	// Seed for the particle layout; 0 picks a time based seed.
	Seed uint64 `yaml:"seed"`

	Orbs  OrbSettings   `yaml:"orbs"`
	Audio AudioSettings `yaml:"audio"`
	Page  PageSettings  `yaml:"page"`

	Debug bool `yaml:"debug"`
}

type WindowSettings struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

type OrbSettings struct {
	// Respawn moves an orb to a fresh random position once its life runs out.
	Respawn bool `yaml:"respawn"`
}

type AudioSettings struct {
	Enabled bool `yaml:"enabled"`

	// Volume in beep's log2 scale, 0 is unity gain.
	Volume        float64 `yaml:"volume"`
	BaseFrequency float64 `yaml:"base_frequency"`
}

type PageSettings struct {
	Title   string `yaml:"title"`
	Sigil   bool   `yaml:"sigil"`
	Heading bool   `yaml:"heading"`
	Buttons bool   `yaml:"buttons"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:     WindowWidth,
			Height:    WindowHeight,
			Title:     WindowTitle,
			Resizable: true,
		},
		TPS: DefaultTPS,
		Audio: AudioSettings{
			Volume:        HumVolume,
			BaseFrequency: HumBaseFreq,
		},
		Page: PageSettings{
			Title:   "AURA",
			Sigil:   true,
			Heading: true,
			Buttons: true,
		},
	}
}

// Load reads a YAML settings file on top of Default.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, errors.Wrap(err, "failed to read settings")
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, errors.Wrapf(err, "failed to parse settings %s", path)
	}
	if err := s.Validate(); err != nil {
		return s, errors.Wrapf(err, "invalid settings %s", path)
	}
	return s, nil
}

// Validate checks the values a file can get wrong.
func (s *Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.TPS <= 0 {
		return errors.Errorf("tps must be positive, got %d", s.TPS)
	}
	if s.DevicePixelRatio < 0 {
		return errors.Errorf("device_pixel_ratio must not be negative, got %v", s.DevicePixelRatio)
	}
	if s.Audio.Enabled && s.Audio.BaseFrequency <= 0 {
		return errors.Errorf("audio base_frequency must be positive, got %v", s.Audio.BaseFrequency)
	}
	return nil
}
