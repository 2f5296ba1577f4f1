package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid settings")

// Environment variables read by ApplyEnv.
const (
	EnvConfigPath = "SHOOTER_CONFIG"
	EnvSeed       = "SHOOTER_SEED"
	EnvEnemies    = "SHOOTER_ENEMIES"
	EnvPostFX     = "SHOOTER_POSTFX"
	EnvLogLevel   = "SHOOTER_LOG_LEVEL"
)

// Range is a half-open integer interval [Min, Max).
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Empty reports whether the range contains no values.
func (r Range) Empty() bool {
	return r.Max <= r.Min
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Settings holds every tunable game parameter.
//
// Config file location is chosen by the command (-config flag or SHOOTER_CONFIG).
type Settings struct {
	Screen   Size   `yaml:"screen"`
	TickRate int    `yaml:"tickRate"`
	Seed     uint64 `yaml:"seed"` // 0 picks a time-derived seed
	LogLevel string `yaml:"logLevel"`

	Player     PlayerSettings     `yaml:"player"`
	Enemy      EnemySettings      `yaml:"enemy"`
	Projectile ProjectileSettings `yaml:"projectile"`
	Effect     EffectSettings     `yaml:"effect"`
	Stars      StarSettings       `yaml:"stars"`
	Scoring    ScoringSettings    `yaml:"scoring"`
	PostFX     PostFXSettings     `yaml:"postfx"`
}

// PlayerSettings configures the player ship.
type PlayerSettings struct {
	Size            Size `yaml:"size"`
	Speed           int  `yaml:"speed"`
	ShootCooldownMs int  `yaml:"shootCooldownMs"`
	BottomMargin    int  `yaml:"bottomMargin"` // Gap between ship bottom and screen bottom at start
}

// ShootCooldown returns the minimum interval between shots.
func (p PlayerSettings) ShootCooldown() time.Duration {
	return time.Duration(p.ShootCooldownMs) * time.Millisecond
}

// EnemySettings configures the enemy population and its spawn ranges.
type EnemySettings struct {
	Count   int   `yaml:"count"`
	Size    Size  `yaml:"size"`
	SpawnY  Range `yaml:"spawnY"`
	Descent Range `yaml:"descent"`
	Drift   Range `yaml:"drift"`

	// Off-screen thresholds: respawn when top > H+Bottom, left < -Left or right > W+Right.
	ExitMarginBottom int `yaml:"exitMarginBottom"`
	ExitMarginLeft   int `yaml:"exitMarginLeft"`
	ExitMarginRight  int `yaml:"exitMarginRight"`
}

// ProjectileSettings configures player shots.
type ProjectileSettings struct {
	Size  Size `yaml:"size"`
	Speed int  `yaml:"speed"` // Upward displacement per tick
}

// EffectSettings configures explosion effects.
type EffectSettings struct {
	DurationTicks int `yaml:"durationTicks"`
	MaxRadius     int `yaml:"maxRadius"`
}

// StarSettings configures the background starfield.
type StarSettings struct {
	Count      int   `yaml:"count"`
	Speed      Range `yaml:"speed"`
	Brightness Range `yaml:"brightness"`
}

// ScoringSettings configures score awards.
type ScoringSettings struct {
	HitPoints int `yaml:"hitPoints"`
}

// PostFXSettings toggles the post-processing pass.
type PostFXSettings struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the stock settings.
func Default() Settings {
	return Settings{
		Screen:   Size{Width: 800, Height: 600},
		TickRate: 60,
		LogLevel: "info",
		Player: PlayerSettings{
			Size:            Size{Width: 40, Height: 40},
			Speed:           5,
			ShootCooldownMs: 250,
			BottomMargin:    10,
		},
		Enemy: EnemySettings{
			Count:            8,
			Size:             Size{Width: 30, Height: 30},
			SpawnY:           Range{Min: -100, Max: -40},
			Descent:          Range{Min: 2, Max: 6},
			Drift:            Range{Min: -1, Max: 2},
			ExitMarginBottom: 10,
			ExitMarginLeft:   25,
			ExitMarginRight:  20,
		},
		Projectile: ProjectileSettings{
			Size:  Size{Width: 5, Height: 10},
			Speed: 10,
		},
		Effect: EffectSettings{
			DurationTicks: 30,
			MaxRadius:     30,
		},
		Stars: StarSettings{
			Count:      50,
			Speed:      Range{Min: 1, Max: 4},
			Brightness: Range{Min: 100, Max: 256},
		},
		Scoring: ScoringSettings{HitPoints: 10},
		PostFX:  PostFXSettings{Enabled: true},
	}
}

// TickDuration returns the target duration of one tick.
func (s Settings) TickDuration() time.Duration {
	return time.Second / time.Duration(s.TickRate)
}

// Load reads a YAML settings file. Keys missing from the file keep their default values.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return s, err
	}

	return s, nil
}

// Resolve builds the settings for a command. path falls back to $SHOOTER_CONFIG;
// with neither set the defaults are used. Environment overrides are applied last.
func Resolve(path string) (Settings, error) {
	if path == "" {
		path = GetEnv(EnvConfigPath, "")
	}

	s := Default()
	if path != "" {
		var err error
		if s, err = Load(path); err != nil {
			return s, err
		}
	}

	ApplyEnv(&s)
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// ApplyEnv overrides settings from environment variables.
func ApplyEnv(s *Settings) {
	if seed := GetEnvInt(EnvSeed, -1); seed >= 0 {
		s.Seed = uint64(seed)
	}
	s.Enemy.Count = GetEnvInt(EnvEnemies, s.Enemy.Count)
	s.PostFX.Enabled = GetEnvBool(EnvPostFX, s.PostFX.Enabled)
	s.LogLevel = GetEnv(EnvLogLevel, s.LogLevel)
}

// Validate checks that the settings describe a playable session.
func (s Settings) Validate() error {
	if s.Screen.Width <= 0 || s.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen size %dx%d must be positive", ErrInvalid, s.Screen.Width, s.Screen.Height)
	}
	if s.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate %d must be positive", ErrInvalid, s.TickRate)
	}

	if err := validateSize("player", s.Player.Size, s.Screen); err != nil {
		return err
	}
	if s.Player.Speed < 0 || s.Player.ShootCooldownMs < 0 {
		return fmt.Errorf("%w: player speed and cooldown must not be negative", ErrInvalid)
	}

	if s.Enemy.Count <= 0 {
		return fmt.Errorf("%w: enemy count %d must be positive", ErrInvalid, s.Enemy.Count)
	}
	if err := validateSize("enemy", s.Enemy.Size, s.Screen); err != nil {
		return err
	}
	if s.Enemy.Size.Width >= s.Screen.Width {
		return fmt.Errorf("%w: enemy width %d leaves no spawn columns", ErrInvalid, s.Enemy.Size.Width)
	}
	ranges := map[string]Range{
		"enemy.spawnY":     s.Enemy.SpawnY,
		"enemy.descent":    s.Enemy.Descent,
		"enemy.drift":      s.Enemy.Drift,
		"stars.speed":      s.Stars.Speed,
		"stars.brightness": s.Stars.Brightness,
	}
	for name, r := range ranges {
		if r.Empty() {
			return fmt.Errorf("%w: %s range [%d,%d) is empty", ErrInvalid, name, r.Min, r.Max)
		}
	}
	if s.Stars.Brightness.Min < 0 || s.Stars.Brightness.Max > 256 {
		return fmt.Errorf("%w: stars.brightness must lie within [0,256)", ErrInvalid)
	}

	if err := validateSize("projectile", s.Projectile.Size, s.Screen); err != nil {
		return err
	}
	if s.Projectile.Speed <= 0 {
		return fmt.Errorf("%w: projectile speed %d must be positive", ErrInvalid, s.Projectile.Speed)
	}

	if s.Effect.DurationTicks <= 0 {
		return fmt.Errorf("%w: effect duration %d must be positive", ErrInvalid, s.Effect.DurationTicks)
	}
	if s.Effect.MaxRadius < 0 {
		return fmt.Errorf("%w: effect radius %d must not be negative", ErrInvalid, s.Effect.MaxRadius)
	}
	if s.Stars.Count < 0 {
		return fmt.Errorf("%w: star count %d must not be negative", ErrInvalid, s.Stars.Count)
	}
	if s.Scoring.HitPoints < 0 {
		return fmt.Errorf("%w: hit points %d must not be negative", ErrInvalid, s.Scoring.HitPoints)
	}

	return nil
}

func validateSize(name string, size, screen Size) error {
	if size.Width <= 0 || size.Height <= 0 {
		return fmt.Errorf("%w: %s size %dx%d must be positive", ErrInvalid, name, size.Width, size.Height)
	}
	if size.Width > screen.Width || size.Height > screen.Height {
		return fmt.Errorf("%w: %s size %dx%d exceeds screen", ErrInvalid, name, size.Width, size.Height)
	}
	return nil
}
