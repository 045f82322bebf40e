package config

import (
	"os"
	"strings"

	"codeberg.org/mutker/powerhal/internal/errors"
	"codeberg.org/mutker/powerhal/internal/power"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel  = LogLevelWarning
	DefaultSysfsRoot = "/"

	defaultEnvPrefix  = "POWERHAL"
	defaultConfigName = "powerhal"
	defaultConfigDir  = "/etc"
)

type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	SysfsRoot string `mapstructure:"sysfs_root"`
	PIDDir    string `mapstructure:"pid_dir"`
	Profile   string `mapstructure:"profile"`
}

// InitialProfile returns the configured start-up profile, or ProfileUnset.
func (c *Config) InitialProfile() power.Profile {
	if c.Profile == "" {
		return power.ProfileUnset
	}
	p, err := power.ParseProfile(c.Profile)
	if err != nil {
		return power.ProfileUnset
	}
	return p
}

// Load reads configuration from defaults, the config file, the environment
// and args, in increasing priority.
func Load(args []string, opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := options{envPrefix: defaultEnvPrefix}
	for _, opt := range opts {
		opt(&o)
	}

	v := viper.New()
	v.SetDefault("log_level", DefaultLogLevel.String())
	v.SetDefault("sysfs_root", DefaultSysfsRoot)
	v.SetDefault("pid_dir", os.TempDir())
	v.SetDefault("profile", "")

	flags := pflag.NewFlagSet("powerhal", pflag.ContinueOnError)
	configFlag := flags.String("config", "", "Path to config file")
	debugFlag := flags.Bool("debug", false, "Enable debugging mode")
	verboseFlag := flags.Bool("verbose", false, "Enable verbose logging")
	flags.String("log-level", DefaultLogLevel.String(), "Log level (debug, info, warning, error)")
	flags.String("sysfs-root", DefaultSysfsRoot, "Root under which control paths are resolved")
	flags.String("pid-dir", os.TempDir(), "Directory for the PID file")
	flags.String("profile", "", "Power profile to apply at start-up")

	if err := flags.Parse(args); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	for key, name := range map[string]string{
		"log_level":  "log-level",
		"sysfs_root": "sysfs-root",
		"pid_dir":    "pid-dir",
		"profile":    "profile",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, errFactory.Wrap(errors.ErrBindFlags, err)
		}
	}

	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	configPath := o.configPath
	if *configFlag != "" {
		configPath = *configFlag
	} else if configPath == "" {
		configPath = os.Getenv(o.envPrefix + "_CONFIG")
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("toml")
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("toml")
		v.AddConfigPath(defaultConfigDir)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if *debugFlag {
		cfg.LogLevel = LogLevelDebug.String()
	} else if *verboseFlag {
		cfg.LogLevel = LogLevelInfo.String()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	errFactory := errors.New()

	c.LogLevel = strings.ToLower(c.LogLevel)
	if !LogLevel(c.LogLevel).IsValid() {
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	if c.Profile != "" {
		if _, err := power.ParseProfile(c.Profile); err != nil {
			return errFactory.Wrap(errors.ErrInvalidProfile, err)
		}
	}

	if c.SysfsRoot == "" {
		c.SysfsRoot = DefaultSysfsRoot
	}

	return nil
}
