package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/extents/internal/logging"
	"github.com/mesh-intelligence/extents/internal/paths"
	"github.com/mesh-intelligence/extents/internal/persist"
	"github.com/mesh-intelligence/extents/internal/store"
	"github.com/mesh-intelligence/extents/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyBackend = "backend"
	cfgKeyDataDir = "data_dir"

	defaultBackend = types.BackendJSONL
)

// configFile is the structure written to config.yaml by init.
type configFile struct {
	Backend string `yaml:"backend"`
	DataDir string `yaml:"data_dir,omitempty"`
}

// loadConfig reads config.yaml from configDir. A missing file is not an
// error; defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// writeConfigIfMissing creates config.yaml unless it already exists. It
// reports whether a file was written.
func writeConfigIfMissing(path string, cfg configFile) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// resolved is the effective configuration after applying flags, config.yaml,
// environment and defaults.
type resolved struct {
	configDir string
	cfg       types.Config
}

func (o *options) resolve() (resolved, error) {
	configDir, err := paths.ResolveConfigDir(o.configDir)
	if err != nil {
		return resolved{}, sysError("resolve config directory: %w", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return resolved{}, userError("%w", err)
	}
	dataDir, err := paths.ResolveDataDir(o.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return resolved{}, sysError("resolve data directory: %w", err)
	}
	backend := o.backend
	if backend == "" {
		backend = v.GetString(cfgKeyBackend)
	}
	cfg := types.Config{Backend: backend, DataDir: dataDir}
	if err := cfg.Validate(); err != nil {
		return resolved{}, userError("backend %q: %w", backend, err)
	}
	return resolved{configDir: configDir, cfg: cfg}, nil
}

// session is one command's view of the persisted graph.
type session struct {
	logger  *zap.Logger
	gateway *persist.Gateway
	store   *store.Store
}

// open resolves configuration, opens the backend and loads the store.
func (o *options) open() (*session, error) {
	r, err := o.resolve()
	if err != nil {
		return nil, err
	}
	logger, err := logging.ForVerbosity(o.verbose)
	if err != nil {
		return nil, sysError("build logger: %w", err)
	}
	backend, err := persist.Open(r.cfg)
	if err != nil {
		return nil, sysError("open %s backend: %w", r.cfg.Backend, err)
	}
	logger.Debug("opened backend",
		zap.String("backend", backend.Name()),
		zap.String("data_dir", r.cfg.DataDir),
		zap.String("config_dir", r.configDir))

	s := &session{
		logger:  logger,
		gateway: persist.NewGateway(backend, logger),
		store:   store.New(logger),
	}
	if err := s.store.Load(s.gateway); err != nil {
		s.close()
		return nil, sysError("%w", err)
	}
	return s, nil
}

func (s *session) close() {
	if err := s.gateway.Close(); err != nil {
		s.logger.Warn("closing backend", zap.Error(err))
	}
	_ = s.logger.Sync()
}
