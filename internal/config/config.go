package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"vectorpad/internal/domain"
	"vectorpad/internal/tools"
)

// ErrInvalidColor is returned for colour strings that are not #rrggbb
var ErrInvalidColor = errors.New("invalid color")

// Config represents the application configuration
type Config struct {
	Version int           `toml:"version"`
	Tools   ToolSettings  `toml:"tools"`
	Colors  ColorSettings `toml:"colors"`
	Log     LogSettings   `toml:"log"`
}

// ToolSettings configures tool selection and the built-in tools
type ToolSettings struct {
	Default    string `toml:"default"`
	ShapeSides uint8  `toml:"shape_sides"`
}

// ColorSettings holds the initial shared colours as hex strings
type ColorSettings struct {
	Primary   string   `toml:"primary"`
	Secondary string   `toml:"secondary"`
	Palette   []string `toml:"palette"`
}

// LogSettings configures the log file
type LogSettings struct {
	File string `toml:"file"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service for the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "vectorpad", "config.toml"),
	}
}

// NewConfigServiceWithPath creates a config service bound to a specific file
func NewConfigServiceWithPath(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults if the file does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Settings missing
// from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Tools: ToolSettings{
			Default:    tools.ToolLine.String(),
			ShapeSides: 6,
		},
		Colors: ColorSettings{
			Primary:   "#000000",
			Secondary: "#ffffff",
			Palette:   []string{"#000000", "#ff0000", "#00ff00", "#0000ff", "#ffff00", "#ff00ff"},
		},
		Log: LogSettings{
			File: "vectorpad.log",
		},
	}
}

// Validate checks that tool names and colours can be resolved
func (c *Config) Validate() error {
	if _, err := tools.ParseToolKind(c.Tools.Default); err != nil {
		return err
	}
	if _, err := ParseColor(c.Colors.Primary); err != nil {
		return err
	}
	if _, err := ParseColor(c.Colors.Secondary); err != nil {
		return err
	}
	for _, hex := range c.Colors.Palette {
		if _, err := ParseColor(hex); err != nil {
			return err
		}
	}
	return nil
}

// DefaultTool returns the configured initial tool
func (c *Config) DefaultTool() tools.ToolKind {
	kind, err := tools.ParseToolKind(c.Tools.Default)
	if err != nil {
		return tools.ToolLine
	}
	return kind
}

// PrimaryColor returns the configured primary colour, or black if it is invalid
func (c *Config) PrimaryColor() domain.Color {
	if col, err := ParseColor(c.Colors.Primary); err == nil {
		return col
	}
	return domain.Black
}

// SecondaryColor returns the configured secondary colour, or white if it is invalid
func (c *Config) SecondaryColor() domain.Color {
	if col, err := ParseColor(c.Colors.Secondary); err == nil {
		return col
	}
	return domain.White
}

// PaletteColors returns the valid palette entries in order
func (c *Config) PaletteColors() []domain.Color {
	out := make([]domain.Color, 0, len(c.Colors.Palette))
	for _, hex := range c.Colors.Palette {
		if col, err := ParseColor(hex); err == nil {
			out = append(out, col)
		}
	}
	return out
}

// ParseColor converts a #rrggbb or #rgb string into an opaque colour
func ParseColor(hex string) (domain.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return domain.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return domain.NewColorRGB(float32(c.R), float32(c.G), float32(c.B)), nil
}
