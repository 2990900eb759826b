// Package config persists Crocpad++ preferences in an INI settings file.
package config

import (
	"gopkg.in/ini.v1"
)

const (
	SectionEditor  = "Editor"
	SectionSound   = "Sound"
	SectionLicense = "License"
	SectionLogging = "Logging"

	KeyVisualMode   = "visualmode"
	KeyLineWrap     = "linewrap"
	KeySounds       = "sounds"
	KeyEULAAccepted = "eulaaccepted"
	KeyLevel        = "level"
)

const (
	ValueOn  = "on"
	ValueOff = "off"
	ValueYes = "yes"
	ValueNo  = "no"

	DefaultVisualMode = "light"
	DefaultLogLevel   = "info"
)

// defaults lists every option written to a fresh settings file, in file order
var defaults = []struct {
	section, key, value string
}{
	{SectionEditor, KeyVisualMode, DefaultVisualMode},
	{SectionEditor, KeyLineWrap, ValueOn},
	{SectionSound, KeySounds, ValueOn},
	{SectionLicense, KeyEULAAccepted, ValueNo},
	{SectionLogging, KeyLevel, DefaultLogLevel},
}

// AppConfig maps section → option → string value.
// It is owned by the main controller and only touched from the UI thread.
type AppConfig struct {
	file *ini.File
}

// Default builds a configuration holding the shipped defaults
func Default() *AppConfig {
	cfg := &AppConfig{file: ini.Empty()}
	cfg.fillDefaults()
	return cfg
}

func (c *AppConfig) fillDefaults() {
	for _, d := range defaults {
		section := c.file.Section(d.section)
		if !section.HasKey(d.key) {
			section.Key(d.key).SetValue(d.value)
		}
	}
}

// Get returns the raw value of an option, or "" when it is absent
func (c *AppConfig) Get(section, key string) string {
	s, err := c.file.GetSection(section)
	if err != nil || !s.HasKey(key) {
		return ""
	}
	return s.Key(key).String()
}

// Set stores a raw option value, creating the section when needed
func (c *AppConfig) Set(section, key, value string) {
	c.file.Section(section).Key(key).SetValue(value)
}

// Theme is the stored visual mode name. Validation happens in the theme registry.
func (c *AppConfig) Theme() string {
	return c.Get(SectionEditor, KeyVisualMode)
}

func (c *AppConfig) SetTheme(name string) {
	c.Set(SectionEditor, KeyVisualMode, name)
}

// LineWrap reports whether wrapping is on; only "off" disables it.
func (c *AppConfig) LineWrap() bool {
	return c.Get(SectionEditor, KeyLineWrap) != ValueOff
}

func (c *AppConfig) SetLineWrap(on bool) {
	c.Set(SectionEditor, KeyLineWrap, onOff(on))
}

// SoundEnabled reports whether keystroke sounds are on; only "on" enables them.
func (c *AppConfig) SoundEnabled() bool {
	return c.Get(SectionSound, KeySounds) == ValueOn
}

func (c *AppConfig) SetSoundEnabled(on bool) {
	c.Set(SectionSound, KeySounds, onOff(on))
}

func (c *AppConfig) EULAAccepted() bool {
	return c.Get(SectionLicense, KeyEULAAccepted) == ValueYes
}

func (c *AppConfig) SetEULAAccepted(accepted bool) {
	value := ValueNo
	if accepted {
		value = ValueYes
	}
	c.Set(SectionLicense, KeyEULAAccepted, value)
}

func (c *AppConfig) LogLevel() string {
	return c.Get(SectionLogging, KeyLevel)
}

func onOff(on bool) string {
	if on {
		return ValueOn
	}
	return ValueOff
}
