// Package config loads connection parameters, the node-meta filter, and the
// metadata type-override map from environment variables or an INI file.
// Environment variables take precedence: when CONSUL_URL is set the file is
// ignored for connection parameters, and likewise CONSUL_NODE_META and
// CONSUL_META_TYPES each shadow their file section independently.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	cerrors "github.com/inventory-tools/consul-awx/pkg/errors"
	"github.com/inventory-tools/consul-awx/pkg/variant"
)

// ConfigFileName is the INI file searched for next to the executable when
// no --path flag is given.
const ConfigFileName = "consul_awx.ini"

// Environment variables read by the loader.
const (
	EnvURL           = "CONSUL_URL"
	EnvToken         = "CONSUL_TOKEN"
	EnvSSLVerify     = "CONSUL_SSL_VERIFY"
	EnvDatacenter    = "CONSUL_DC"
	EnvCert          = "CONSUL_CERT"
	EnvNodeMeta      = "CONSUL_NODE_META"
	EnvMetaTypes     = "CONSUL_META_TYPES"
	EnvTaggedAddress = "CONSUL_TAGGED_ADDRESS"
)

// Config holds catalog connection parameters.
type Config struct {
	Host       string
	Port       int
	Scheme     string
	Token      string
	Verify     bool
	Datacenter string
	Cert       string
}

// DefaultConfig returns connection parameters for a local agent.
func DefaultConfig() *Config {
	return &Config{
		Host:   "127.0.0.1",
		Port:   8500,
		Scheme: "http",
		Verify: true,
	}
}

// DefaultPath returns the default configuration file path, next to the
// running executable.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return ConfigFileName
	}
	return filepath.Join(filepath.Dir(exe), ConfigFileName)
}

// Load produces connection parameters from CONSUL_URL and friends, or from
// the [consul] section of the INI file at path, or defaults when neither
// source exists.
func Load(path string) (*Config, error) {
	if os.Getenv(EnvURL) != "" {
		return fromEnv()
	}

	v, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	if v == nil {
		slog.Debug("no envvar nor configuration file, using default values")
		return DefaultConfig(), nil
	}
	return fromFile(v)
}

func fromEnv() (*Config, error) {
	raw := os.Getenv(EnvURL)
	u, err := url.Parse(raw)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeConfig, fmt.Sprintf("invalid %s %q", EnvURL, raw), err)
	}

	cfg := DefaultConfig()
	if u.Hostname() != "" {
		cfg.Host = u.Hostname()
	}
	if u.Scheme != "" {
		cfg.Scheme = u.Scheme
	}
	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, cerrors.Wrap(cerrors.ErrCodeConfig, fmt.Sprintf("invalid port in %s", EnvURL), err)
		}
		cfg.Port = port
	}

	if s := os.Getenv(EnvSSLVerify); s != "" {
		verify, err := Str2Bool(s)
		if err != nil {
			return nil, cerrors.Wrap(cerrors.ErrCodeConfig, fmt.Sprintf("invalid %s %q", EnvSSLVerify, s), err)
		}
		cfg.Verify = verify
	}

	cfg.Token = os.Getenv(EnvToken)
	cfg.Datacenter = os.Getenv(EnvDatacenter)
	cfg.Cert = os.Getenv(EnvCert)
	return cfg, nil
}

func fromFile(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	if h := v.GetString("consul.host"); h != "" {
		cfg.Host = h
	}
	if p := v.GetString("consul.port"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, cerrors.Wrap(cerrors.ErrCodeConfig, fmt.Sprintf("invalid consul.port %q", p), err)
		}
		cfg.Port = port
	}
	if s := v.GetString("consul.scheme"); s != "" {
		cfg.Scheme = s
	}
	if s := v.GetString("consul.verify"); s != "" {
		verify, err := Str2Bool(s)
		if err != nil {
			return nil, cerrors.Wrap(cerrors.ErrCodeConfig, fmt.Sprintf("invalid consul.verify %q", s), err)
		}
		cfg.Verify = verify
	}

	cfg.Token = v.GetString("consul.token")
	cfg.Datacenter = v.GetString("consul.dc")
	cfg.Cert = v.GetString("consul.cert")
	return cfg, nil
}

// LoadNodeMeta produces the optional node-meta filter from CONSUL_NODE_META
// (a JSON object with string keys and string values) or the
// [consul_node_meta] section of the INI file. Returns nil when neither
// source defines a filter.
func LoadNodeMeta(path string) (map[string]string, error) {
	if raw := os.Getenv(EnvNodeMeta); raw != "" {
		var meta map[string]string
		if err := json.Unmarshal([]byte(raw), &meta); err != nil {
			return nil, cerrors.Wrap(cerrors.ErrCodeConfig,
				"invalid node_meta filter, content must be a JSON object with string keys and values", err)
		}
		return meta, nil
	}

	v, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	if v == nil || !v.IsSet("consul_node_meta") {
		slog.Debug("no envvar nor configuration file, not filtering by node_meta")
		return nil, nil
	}
	meta := v.GetStringMapString("consul_node_meta")
	if len(meta) == 0 {
		return nil, nil
	}
	return meta, nil
}

// LoadMetaTypes produces the optional metadata type-override map from
// CONSUL_META_TYPES (a JSON object mapping metadata key to str, int, or
// bool) or the [consul_meta_types] section of the INI file. Returns nil
// when neither source defines overrides.
func LoadMetaTypes(path string) (map[string]variant.Type, error) {
	raw := map[string]string{}

	if env := os.Getenv(EnvMetaTypes); env != "" {
		if err := json.Unmarshal([]byte(env), &raw); err != nil {
			return nil, cerrors.Wrap(cerrors.ErrCodeConfig,
				"invalid meta_types map, content must be a JSON object with string keys and values", err)
		}
	} else {
		v, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		if v == nil || !v.IsSet("consul_meta_types") {
			return nil, nil
		}
		raw = v.GetStringMapString("consul_meta_types")
	}

	if len(raw) == 0 {
		return nil, nil
	}

	types := make(map[string]variant.Type, len(raw))
	for key, name := range raw {
		t, err := variant.ParseType(name)
		if err != nil {
			return nil, cerrors.Wrap(cerrors.ErrCodeConfig, fmt.Sprintf("invalid meta type for key %q", key), err)
		}
		types[key] = t
	}
	return types, nil
}

// Str2Bool parses the permissive boolean spellings accepted in
// configuration: true/1/yes and false/0/no, case-insensitive. Metadata
// coercion is stricter and does not use this.
func Str2Bool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

// loadFile parses the INI file at path. A missing file is not an error; the
// caller falls back to defaults, matching one-shot usage where the tool may
// run with no configuration at all.
func loadFile(path string) (*viper.Viper, error) {
	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, cerrors.Wrap(cerrors.ErrCodeConfig, fmt.Sprintf("cannot read configuration file %q", path), err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeConfig, fmt.Sprintf("cannot parse configuration file %q", path), err)
	}
	return v, nil
}
