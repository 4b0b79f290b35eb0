package settings

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/TimothyDexter/FiveM-StanceModifier/player"
	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
)

// Settings contains everything that can be configured for the stance controller.
type Settings struct {
	Stance struct {
		// HoldThresholdMs is how long the stance control is held before jumping straight to prone.
		HoldThresholdMs      int64 `toml:"hold_threshold_ms" json:"hold_threshold_ms" env:"STANCE_HOLD_THRESHOLD_MS"`
		ReleaseNoiseWindowMs int64 `toml:"release_noise_window_ms" json:"release_noise_window_ms" env:"STANCE_RELEASE_NOISE_WINDOW_MS"`
		// EvictBlockedProne returns a prone character to idle as soon as prone gets blocked.
		EvictBlockedProne bool `toml:"evict_blocked_prone" json:"evict_blocked_prone" env:"STANCE_EVICT_BLOCKED_PRONE"`
	} `toml:"stance" json:"stance"`
	Prone struct {
		DiveMs         int64   `toml:"dive_ms" json:"dive_ms" env:"STANCE_DIVE_MS"`
		ExitImmunityMs int64   `toml:"exit_immunity_ms" json:"exit_immunity_ms" env:"STANCE_EXIT_IMMUNITY_MS"`
		FlipCooldownMs int64   `toml:"flip_cooldown_ms" json:"flip_cooldown_ms" env:"STANCE_FLIP_COOLDOWN_MS"`
		WeaponDrawMs   int64   `toml:"weapon_draw_ms" json:"weapon_draw_ms" env:"STANCE_WEAPON_DRAW_MS"`
		CrawlMs        int64   `toml:"crawl_ms" json:"crawl_ms" env:"STANCE_CRAWL_MS"`
		RepeatWideMs   int64   `toml:"repeat_wide_ms" json:"repeat_wide_ms" env:"STANCE_REPEAT_WIDE_MS"`
		RepeatNarrowMs int64   `toml:"repeat_narrow_ms" json:"repeat_narrow_ms" env:"STANCE_REPEAT_NARROW_MS"`
		TurnStep       float64 `toml:"turn_step" json:"turn_step" env:"STANCE_TURN_STEP"`
		TurnRepeat     float64 `toml:"turn_repeat" json:"turn_repeat" env:"STANCE_TURN_REPEAT"`
	} `toml:"prone" json:"prone"`
	Restraints struct {
		// Animations are the clips that cancel crouch and prone while playing.
		Animations []player.AnimationRef `toml:"animations" json:"animations"`
	} `toml:"restraints" json:"restraints"`
	Debug struct {
		LogLevel string   `toml:"log_level" json:"log_level" env:"STANCE_LOG_LEVEL"`
		Modes    []string `toml:"modes" json:"modes" env:"STANCE_DEBUG_MODES" envSeparator:","`
	} `toml:"debug" json:"debug"`
	Sentry struct {
		DSN         string `toml:"dsn" json:"dsn" env:"STANCE_SENTRY_DSN"`
		Environment string `toml:"environment" json:"environment" env:"STANCE_SENTRY_ENVIRONMENT"`
	} `toml:"sentry" json:"sentry"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	opts := player.DefaultOpts()

	s := Settings{}
	s.Stance.HoldThresholdMs = opts.HoldThreshold.Milliseconds()
	s.Stance.ReleaseNoiseWindowMs = opts.ReleaseNoiseWindow.Milliseconds()

	s.Prone.DiveMs = opts.DiveDuration.Milliseconds()
	s.Prone.ExitImmunityMs = opts.ExitImmunityDuration.Milliseconds()
	s.Prone.FlipCooldownMs = opts.FlipCooldown.Milliseconds()
	s.Prone.WeaponDrawMs = opts.WeaponDrawDuration.Milliseconds()
	s.Prone.CrawlMs = opts.CrawlDuration.Milliseconds()
	s.Prone.RepeatWideMs = opts.RepeatIntervalWide.Milliseconds()
	s.Prone.RepeatNarrowMs = opts.RepeatIntervalNarrow.Milliseconds()
	s.Prone.TurnStep = float64(opts.TurnStepDegrees)
	s.Prone.TurnRepeat = float64(opts.TurnRepeatDegrees)

	s.Restraints.Animations = opts.RestraintAnimations
	s.Debug.LogLevel = logrus.InfoLevel.String()
	s.Debug.Modes = []string{}
	return s
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %v", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %v", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
// STANCE_* environment variables override the values in the file.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %v", err)
	}

	settings := DefaultSettings()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %v", err)
	}
	if err := ApplyEnv(&settings); err != nil {
		return Settings{}, err
	}
	if err := Validate(settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// ApplyEnv overrides the settings with the STANCE_* environment variables that are set.
func ApplyEnv(s *Settings) error {
	if err := env.Parse(s); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Opts converts the settings into controller tunables.
func (s Settings) Opts() player.Opts {
	opts := player.DefaultOpts()
	opts.HoldThreshold = ms(s.Stance.HoldThresholdMs)
	opts.ReleaseNoiseWindow = ms(s.Stance.ReleaseNoiseWindowMs)
	opts.EvictBlockedProne = s.Stance.EvictBlockedProne

	opts.DiveDuration = ms(s.Prone.DiveMs)
	opts.ExitImmunityDuration = ms(s.Prone.ExitImmunityMs)
	opts.FlipCooldown = ms(s.Prone.FlipCooldownMs)
	opts.WeaponDrawDuration = ms(s.Prone.WeaponDrawMs)
	opts.CrawlDuration = ms(s.Prone.CrawlMs)
	opts.RepeatIntervalWide = ms(s.Prone.RepeatWideMs)
	opts.RepeatIntervalNarrow = ms(s.Prone.RepeatNarrowMs)
	opts.TurnStepDegrees = float32(s.Prone.TurnStep)
	opts.TurnRepeatDegrees = float32(s.Prone.TurnRepeat)

	opts.RestraintAnimations = append([]player.AnimationRef(nil), s.Restraints.Animations...)
	return opts
}

// LogLevel returns the configured log level, or info if it cannot be parsed.
func (s Settings) LogLevel() logrus.Level {
	lvl, err := logrus.ParseLevel(s.Debug.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// DebugModes returns the configured debug modes. Unknown names return an error.
func (s Settings) DebugModes() ([]int, error) {
	modes := make([]int, 0, len(s.Debug.Modes))
	for _, name := range s.Debug.Modes {
		mode, ok := player.DebugModes[name]
		if !ok {
			return nil, fmt.Errorf("unknown debug mode %q", name)
		}
		modes = append(modes, mode)
	}
	return modes, nil
}

func ms(v int64) time.Duration {
	return time.Duration(v) * time.Millisecond
}
