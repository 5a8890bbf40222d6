// Package config resolves server settings from flags, environment, an
// optional config.yaml and built-in defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"pptmcp/server/internal/appdirs"
	"pptmcp/server/internal/envutil"
)

const (
	KeyStorageRoot     = "storage_root"
	KeyDataDir         = "data_dir"
	KeyTransport       = "transport"
	KeyAddr            = "addr"
	KeyBaseURL         = "base_url"
	KeyAuthToken       = "auth_token"
	KeyCORSOrigins     = "cors_origins"
	KeyDebug           = "debug"
	KeyLogFile         = "log_file"
	KeyWorkerPath      = "worker.path"
	KeyWorkerFake      = "worker.fake"
	KeySerializeEdits  = "serialize_edits"
	KeyLockTimeout     = "lock_timeout"
	KeyShutdownTimeout = "shutdown_timeout"
)

const (
	TransportStdio   = "stdio"
	TransportSSE     = "sse"
	TransportHTTP    = "http"
	TransportJSONRPC = "jsonrpc"
)

const (
	DefaultStorageRoot     = "./ppt_files"
	DefaultAddr            = ":8000"
	DefaultLockTimeout     = 10 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	StorageRoot     string        `mapstructure:"storage_root" yaml:"storage_root"`
	DataDir         string        `mapstructure:"data_dir" yaml:"data_dir"`
	Transport       string        `mapstructure:"transport" yaml:"transport"`
	Addr            string        `mapstructure:"addr" yaml:"addr"`
	BaseURL         string        `mapstructure:"base_url" yaml:"base_url,omitempty"`
	AuthToken       string        `mapstructure:"auth_token" yaml:"-"`
	CORSOrigins     []string      `mapstructure:"cors_origins" yaml:"cors_origins,omitempty"`
	Debug           bool          `mapstructure:"debug" yaml:"debug"`
	LogFile         bool          `mapstructure:"log_file" yaml:"log_file"`
	Worker          WorkerConfig  `mapstructure:"worker" yaml:"worker"`
	SerializeEdits  bool          `mapstructure:"serialize_edits" yaml:"serialize_edits"`
	LockTimeout     time.Duration `mapstructure:"lock_timeout" yaml:"lock_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`

	// ConfigFile is the file that was read, empty when none was found.
	ConfigFile string `mapstructure:"-" yaml:"-"`
}

type WorkerConfig struct {
	Path string `mapstructure:"path" yaml:"path,omitempty"`
	Fake bool   `mapstructure:"fake" yaml:"fake"`
}

// LocksDir is where per-document lock files live.
func (c Config) LocksDir() string {
	return appdirs.LocksDir(c.DataDir)
}

var envBindings = map[string][]string{
	KeyStorageRoot:     {"PPTMCP_STORAGE_ROOT", "PPT_FILES_PATH"},
	KeyTransport:       {"PPTMCP_TRANSPORT"},
	KeyAddr:            {"PPTMCP_ADDR"},
	KeyBaseURL:         {"PPTMCP_BASE_URL"},
	KeyAuthToken:       {"PPTMCP_AUTH_TOKEN"},
	KeyCORSOrigins:     {"PPTMCP_CORS_ORIGINS"},
	KeyWorkerPath:      {"PPTMCP_WORKER_PATH"},
	KeyLockTimeout:     {"PPTMCP_LOCK_TIMEOUT"},
	KeyShutdownTimeout: {"PPTMCP_SHUTDOWN_TIMEOUT"},
}

// Boolean variables accept the same spellings as the other PPTMCP_ flags
// (1, yes, on, ...).
var boolEnv = map[string]string{
	KeyDebug:          "PPTMCP_DEBUG",
	KeyLogFile:        "PPTMCP_LOG_FILE",
	KeyWorkerFake:     "PPTMCP_FAKE_WORKER",
	KeySerializeEdits: "PPTMCP_SERIALIZE_EDITS",
}

// FlagKeys maps command-line flag names to config keys.
var FlagKeys = map[string]string{
	"storage-root":     KeyStorageRoot,
	"data-dir":         KeyDataDir,
	"transport":        KeyTransport,
	"addr":             KeyAddr,
	"base-url":         KeyBaseURL,
	"auth-token":       KeyAuthToken,
	"cors-origin":      KeyCORSOrigins,
	"debug":            KeyDebug,
	"log-file":         KeyLogFile,
	"worker":           KeyWorkerPath,
	"fake-worker":      KeyWorkerFake,
	"serialize-edits":  KeySerializeEdits,
	"lock-timeout":     KeyLockTimeout,
	"shutdown-timeout": KeyShutdownTimeout,
}

// Load builds the configuration. flags may be nil. An explicit configFile
// must exist; the implicit <data_dir>/config.yaml may be missing.
func Load(flags *pflag.FlagSet, configFile string) (Config, error) {
	dataDir, err := resolveDataDir(flags)
	if err != nil {
		return Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	v := viper.New()
	v.SetDefault(KeyStorageRoot, DefaultStorageRoot)
	v.SetDefault(KeyDataDir, dataDir)
	v.SetDefault(KeyTransport, TransportStdio)
	v.SetDefault(KeyAddr, DefaultAddr)
	v.SetDefault(KeyBaseURL, "")
	v.SetDefault(KeyAuthToken, "")
	v.SetDefault(KeyCORSOrigins, []string{})
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogFile, false)
	v.SetDefault(KeyWorkerPath, "")
	v.SetDefault(KeyWorkerFake, false)
	v.SetDefault(KeySerializeEdits, true)
	v.SetDefault(KeyLockTimeout, DefaultLockTimeout)
	v.SetDefault(KeyShutdownTimeout, DefaultShutdownTimeout)

	for key, names := range envBindings {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	explicit := strings.TrimSpace(configFile) != ""
	path := configFile
	if !explicit {
		path = appdirs.ConfigFile(dataDir)
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	read := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if explicit || !missing {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		read = false
	}

	for key, name := range boolEnv {
		if value, ok := envutil.LookupBool(name); ok && !flagChanged(flags, key) {
			v.Set(key, value)
		}
	}
	if flags != nil {
		for name, key := range FlagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if read {
		cfg.ConfigFile = path
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	c.Transport = strings.ToLower(strings.TrimSpace(c.Transport))
	switch c.Transport {
	case TransportStdio, TransportSSE, TransportHTTP, TransportJSONRPC:
	default:
		return fmt.Errorf("unknown transport %q", c.Transport)
	}
	if strings.TrimSpace(c.StorageRoot) == "" {
		c.StorageRoot = DefaultStorageRoot
	}
	root, err := filepath.Abs(c.StorageRoot)
	if err != nil {
		return fmt.Errorf("storage root: %w", err)
	}
	c.StorageRoot = root
	if c.LockTimeout <= 0 {
		return fmt.Errorf("lock_timeout must be positive, got %s", c.LockTimeout)
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
	return nil
}

func resolveDataDir(flags *pflag.FlagSet) (string, error) {
	if flags != nil {
		if flag := flags.Lookup("data-dir"); flag != nil && flag.Changed {
			return flag.Value.String(), nil
		}
	}
	return appdirs.DataDir()
}

func flagChanged(flags *pflag.FlagSet, key string) bool {
	if flags == nil {
		return false
	}
	for name, bound := range FlagKeys {
		if bound != key {
			continue
		}
		if flag := flags.Lookup(name); flag != nil && flag.Changed {
			return true
		}
	}
	return false
}
