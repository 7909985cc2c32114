package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/TheLeggett/Summer-Breeze/internal/util"
	"gopkg.in/yaml.v3"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	// DefaultDeployerName is the vendor deployer binary name; Windows builds
	// resolve the .exe variant.
	DefaultDeployerName = "sc64deployer"

	// DefaultRomsDirName is the install-relative directory scanned for ROMs.
	DefaultRomsDirName = "roms"

	// DefaultMenuDirName is the install-relative directory holding menu
	// version files and backups.
	DefaultMenuDirName = "menu_versions"

	// DefaultMusicDirName is the install-relative directory holding
	// background music candidates.
	DefaultMusicDirName = "menu_music"

	// DefaultSDMenuPath is the active menu file location on the SD card.
	DefaultSDMenuPath = "/sc64menu.n64"

	// DefaultSDMusicPath is the background music location on the SD card.
	// Only honored by the customized menu build.
	DefaultSDMusicPath = "/menu/bg.mp3"

	// DefaultMaxWalkDepth bounds the recursive SD card ROM walk. The card is
	// a tree so cycles cannot occur; the cap only guards against a deployer
	// returning pathological listings.
	DefaultMaxWalkDepth = 32

	// DefaultPageSize is the number of items shown per page in paginated
	// selectors.
	DefaultPageSize = 9
)

// CLI verbosity values accepted by the -v flag, mapped onto internal log
// levels by [Config.Merge].
const (
	ErrorVerbose = 1
	WarnVerbose  = 2
	InfoVerbose  = 3
	DebugVerbose = 4
	TraceVerbose = 5
)

// DefaultLogLvl is the log level used when no verbosity override is given.
const DefaultLogLvl = util.InfoLevel

// Config contains runtime configuration for the tool: where the deployer
// binary and the local asset directories live, and the fixed SD card paths
// the menu and music commands operate on.
type Config struct {
	InstallDir   string // Directory of the running executable; used as the deployer working directory
	DeployerPath string // Full path to the sc64deployer binary
	RomsDir      string // Local ROM directory (scanned recursively)
	MenuDir      string // Local menu versions directory (auto-created)
	MusicDir     string // Local menu music directory (auto-created)
	SDMenuPath   string // Absolute SD card path of the active menu file
	SDMusicPath  string // Absolute SD card path of the background music file
	MaxWalkDepth int    // Depth cap for the recursive SD card ROM walk
	PageSize     int    // Items per page in paginated selectors
	LogLvl       util.LogLevel
}

// ConfigOverride uses pointer fields to distinguish between unset and zero
// values when loading partial configuration. See [Config] for field
// descriptions. LogLvl takes a CLI verbosity value (1-5), not an internal
// log level.
type ConfigOverride struct {
	DeployerPath *string `yaml:"deployer_path,omitempty" json:"deployer_path,omitempty"`
	RomsDir      *string `yaml:"roms_dir,omitempty" json:"roms_dir,omitempty"`
	MenuDir      *string `yaml:"menu_dir,omitempty" json:"menu_dir,omitempty"`
	MusicDir     *string `yaml:"music_dir,omitempty" json:"music_dir,omitempty"`
	SDMenuPath   *string `yaml:"sd_menu_path,omitempty" json:"sd_menu_path,omitempty"`
	SDMusicPath  *string `yaml:"sd_music_path,omitempty" json:"sd_music_path,omitempty"`
	MaxWalkDepth *int    `yaml:"max_walk_depth,omitempty" json:"max_walk_depth,omitempty"`
	PageSize     *int    `yaml:"page_size,omitempty" json:"page_size,omitempty"`
	LogLvl       *int    `yaml:"verbose,omitempty" json:"verbose,omitempty"`
}

// InstallDir returns the directory of the running executable, falling back
// to the current working directory when the executable path cannot be
// resolved. Local asset paths and the deployer binary resolve relative to it
// so the tool behaves the same no matter where it is invoked from.
func InstallDir() string {
	exe, err := os.Executable()
	if err != nil {
		wd, werr := os.Getwd()
		if werr != nil {
			return "."
		}
		return wd
	}
	return filepath.Dir(exe)
}

// DeployerName returns the platform-appropriate deployer binary name.
func DeployerName() string {
	if runtime.GOOS == "windows" {
		return DefaultDeployerName + ".exe"
	}
	return DefaultDeployerName
}

// NewConfig creates a Config with all default values and then applies the
// provided override, which may be nil.
func NewConfig(override *ConfigOverride) *Config {
	installDir := InstallDir()
	cfg := &Config{
		InstallDir:   installDir,
		DeployerPath: filepath.Join(installDir, DeployerName()),
		RomsDir:      filepath.Join(installDir, DefaultRomsDirName),
		MenuDir:      filepath.Join(installDir, DefaultMenuDirName),
		MusicDir:     filepath.Join(installDir, DefaultMusicDirName),
		SDMenuPath:   DefaultSDMenuPath,
		SDMusicPath:  DefaultSDMusicPath,
		MaxWalkDepth: DefaultMaxWalkDepth,
		PageSize:     DefaultPageSize,
		LogLvl:       DefaultLogLvl,
	}
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.DeployerPath != nil {
		c.DeployerPath = *override.DeployerPath
	}
	if override.RomsDir != nil {
		c.RomsDir = *override.RomsDir
	}
	if override.MenuDir != nil {
		c.MenuDir = *override.MenuDir
	}
	if override.MusicDir != nil {
		c.MusicDir = *override.MusicDir
	}
	if override.SDMenuPath != nil {
		c.SDMenuPath = *override.SDMenuPath
	}
	if override.SDMusicPath != nil {
		c.SDMusicPath = *override.SDMusicPath
	}
	if override.MaxWalkDepth != nil {
		c.MaxWalkDepth = *override.MaxWalkDepth
	}
	if override.PageSize != nil {
		c.PageSize = *override.PageSize
	}
	if override.LogLvl != nil {
		c.LogLvl = verboseToLevel(*override.LogLvl)
	}
}

// verboseToLevel converts a CLI verbosity value (clamped to 1-5) to an
// internal log level.
func verboseToLevel(verbose int) util.LogLevel {
	if verbose < ErrorVerbose {
		verbose = ErrorVerbose
	}
	if verbose > TraceVerbose {
		verbose = TraceVerbose
	}
	levels := [5]util.LogLevel{
		util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel,
	}
	return levels[verbose-1]
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewConfig and LoadConfigOverrideFile.
func NewConfigFromFile(path string) (*Config, error) {
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfig(override), nil
}
