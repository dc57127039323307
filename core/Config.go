package core

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const HostWindow = "window"
const HostTerminal = "terminal"

const DefaultEnv = "local"
const DefaultFPS = 60

type Config struct {
	Env        string
	Host       string
	Variant    Variant
	Difficulty Difficulty
	FPS        int
	Sound      bool

	// File is the properties file that was read, empty when running on defaults.
	File string
}

// Rules resolves the configured variant into its tuning table.
func (c Config) Rules() (Rules, error) {
	return RulesFor(c.Variant, c.Difficulty)
}

// NewFlagSet declares every command line override of the properties file.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("env", "", "properties environment (defaults to $PONG_ENV, then "+DefaultEnv+")")
	fs.String("host", HostWindow, "where to play: window or terminal")
	fs.String("variant", string(VariantDifficulty), "rule set: classic or difficulty")
	fs.String("difficulty", string(DifficultyMedium), "AI level: easy, medium or hard")
	fs.Int("fps", DefaultFPS, "simulation frames per second")
	fs.Bool("sound", true, "play a beep on bounces and scores")
	return fs
}

type Properties struct {
	v *viper.Viper

	mu  sync.Mutex
	cfg Config
}

// ReadProperties loads <dir>/<env>.properties, layering flags on top. A missing
// file is not an error; the flag defaults apply.
func ReadProperties(dir, env string, flags *pflag.FlagSet) (*Properties, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("HOST", HostWindow)
	v.SetDefault("VARIANT", string(VariantDifficulty))
	v.SetDefault("DIFFICULTY", string(DifficultyMedium))
	v.SetDefault("FPS", DefaultFPS)
	v.SetDefault("SOUND", true)

	if flags != nil {
		for _, key := range []string{"host", "variant", "difficulty", "fps", "sound"} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(strings.ToUpper(key), f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", key, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read properties %s: %w", env, err)
		}
	}

	cfg, err := decodeConfig(v)
	if err != nil {
		return nil, err
	}
	cfg.Env = env
	return &Properties{v: v, cfg: cfg}, nil
}

func decodeConfig(v *viper.Viper) (Config, error) {
	host := strings.ToLower(cast.ToString(v.Get("HOST")))
	if host != HostWindow && host != HostTerminal {
		return Config{}, fmt.Errorf("unknown host %q", host)
	}

	variant, err := ParseVariant(cast.ToString(v.Get("VARIANT")))
	if err != nil {
		return Config{}, err
	}

	var difficulty Difficulty
	if variant == VariantDifficulty {
		difficulty, err = ParseDifficulty(cast.ToString(v.Get("DIFFICULTY")))
		if err != nil {
			return Config{}, err
		}
	}

	fps, err := cast.ToIntE(v.Get("FPS"))
	if err != nil || fps <= 0 {
		return Config{}, fmt.Errorf("invalid FPS %v", v.Get("FPS"))
	}

	sound, err := cast.ToBoolE(v.Get("SOUND"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SOUND %v: %w", v.Get("SOUND"), err)
	}

	return Config{
		Host:       host,
		Variant:    variant,
		Difficulty: difficulty,
		FPS:        fps,
		Sound:      sound,
		File:       v.ConfigFileUsed(),
	}, nil
}

func (p *Properties) Config() Config {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg
}

// WatchDifficulty calls onChange whenever an edit to the properties file
// changes DIFFICULTY to a valid level. Invalid edits are reported through
// onError and otherwise ignored. Nothing is watched when running on defaults.
func (p *Properties) WatchDifficulty(onChange func(Difficulty), onError func(error)) bool {
	if p.v.ConfigFileUsed() == "" {
		return false
	}
	p.v.OnConfigChange(func(e fsnotify.Event) {
		if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		d, changed, err := p.reload()
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		if changed {
			onChange(d)
		}
	})
	p.v.WatchConfig()
	return true
}

func (p *Properties) reload() (Difficulty, bool, error) {
	cfg, err := decodeConfig(p.v)
	if err != nil {
		return DifficultyNone, false, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	prev := p.cfg.Difficulty
	cfg.Env = p.cfg.Env
	p.cfg = cfg
	return cfg.Difficulty, cfg.Difficulty != prev && cfg.Difficulty != DifficultyNone, nil
}
