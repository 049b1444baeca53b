package engine

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/wasm-webgl-demo/engine/core"
	"github.com/spf13/afero"
)

type WindowConfig struct {
	// Window starting position x axis, if applicable.
	X uint32 `toml:"x"`
	// Window starting position y axis, if applicable.
	Y uint32 `toml:"y"`
	// Window starting width, if applicable.
	Width uint32 `toml:"width"`
	// Window starting height, if applicable.
	Height uint32 `toml:"height"`
}

type WebConfig struct {
	// Id of the canvas element receiving input in the browser.
	CanvasID string `toml:"canvas_id"`
}

type ApplicationConfig struct {
	// The application name used in windowing, if applicable.
	Name string `toml:"name"`
	// Simulation steps per second.
	StepRate float64 `toml:"step_rate"`
	// Upper bound of steps run on a single late frame. 1 never catches up.
	MaxStepsPerFrame int `toml:"max_steps_per_frame"`
	// Frames per second delivered by the native loop. 0 means unpaced.
	RefreshRate float64 `toml:"refresh_rate"`
	LogLevel    string  `toml:"log_level"`
	// Capacity of the queue holding input events between steps.
	InputQueueSize int `toml:"input_queue_size"`
	// Stop the engine when a simulation step fails.
	StopOnError bool `toml:"stop_on_error"`

	Window WindowConfig `toml:"window"`
	Web    WebConfig    `toml:"web"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Name:             "wasm-webgl-demo",
		StepRate:         60,
		MaxStepsPerFrame: 1,
		RefreshRate:      60,
		LogLevel:         "info",
		InputQueueSize:   256,
		StopOnError:      true,
		Window: WindowConfig{
			X:      100,
			Y:      100,
			Width:  1280,
			Height: 720,
		},
		Web: WebConfig{
			CanvasID: "game",
		},
	}
}

// LoadApplicationConfig reads a TOML file on top of the defaults. A missing
// file yields the defaults.
func LoadApplicationConfig(fs afero.Fs, path string) (*ApplicationConfig, error) {
	cfg := DefaultApplicationConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			core.LogDebug("config file %s not found, using defaults", path)
			return cfg, nil
		}
		return nil, err
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", core.ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *ApplicationConfig) Validate() error {
	if c.StepRate <= 0 {
		return fmt.Errorf("%w: step_rate must be positive, got %v", core.ErrInvalidConfig, c.StepRate)
	}
	if c.MaxStepsPerFrame < 1 {
		return fmt.Errorf("%w: max_steps_per_frame must be at least 1, got %d", core.ErrInvalidConfig, c.MaxStepsPerFrame)
	}
	if c.RefreshRate < 0 {
		return fmt.Errorf("%w: refresh_rate must not be negative, got %v", core.ErrInvalidConfig, c.RefreshRate)
	}
	if c.InputQueueSize < 1 {
		return fmt.Errorf("%w: input_queue_size must be at least 1, got %d", core.ErrInvalidConfig, c.InputQueueSize)
	}
	if _, err := core.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *ApplicationConfig) Level() core.LogLevel {
	lvl, err := core.ParseLogLevel(c.LogLevel)
	if err != nil {
		return core.InfoLevel
	}
	return lvl
}

// StepSeconds is the simulated time covered by one step.
func (c *ApplicationConfig) StepSeconds() float64 {
	return 1.0 / c.StepRate
}
