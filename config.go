package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// casemap values for ServerConfig.FeatCasemap.
const (
	CasemapASCII          = "ascii"
	CasemapRFC1459        = "rfc1459"
	CasemapRFC1459Strict  = "rfc1459-strict"
	CasemapRFC7613     = "rfc7613"
	defaultFeatAwayLen = 255
	defaultFeatCasemap = CasemapASCII
)

// ServerConfig is the server's configuration. It is read-only after boot.
type ServerConfig struct {
	Name string `toml:"name"`
	Host string `toml:"host"`
	Port uint16 `toml:"port"`
	MOTD string `toml:"motd"`

	FeatAwayLen uint32 `toml:"feat_awaylen"`
	FeatCasemap string `toml:"feat_casemap"`
}

// DefaultConfig returns the configuration written out the first time the
// server boots without a config file present.
func DefaultConfig() ServerConfig {
	return ServerConfig{
		Name:        "Myriad Devnet",
		Host:        "127.0.0.1",
		Port:        6667,
		MOTD:        "Welcome to Myriad.",
		FeatAwayLen: defaultFeatAwayLen,
		FeatCasemap: defaultFeatCasemap,
	}
}

// LoadOrCreateConfig reads path, or, if it does not exist, writes a default
// configuration to path and returns it. A malformed existing file is a
// fatal startup error.
func LoadOrCreateConfig(path string) (ServerConfig, error) {
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return ServerConfig{}, errors.Wrapf(err, "unable to stat %s", path)
		}
		return createConfig(path)
	}

	return readConfig(path)
}

func readConfig(path string) (ServerConfig, error) {
	var cfg ServerConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return ServerConfig{}, errors.Wrapf(err, "unable to decode %s", path)
	}

	if err := cfg.validate(); err != nil {
		return ServerConfig{}, errors.Wrapf(err, "invalid configuration in %s",
			path)
	}

	return cfg, nil
}

func createConfig(path string) (ServerConfig, error) {
	cfg := DefaultConfig()

	f, err := os.Create(path)
	if err != nil {
		return ServerConfig{}, errors.Wrapf(err, "unable to create %s", path)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return ServerConfig{}, errors.Wrapf(err, "unable to write %s", path)
	}

	return cfg, nil
}

func (c ServerConfig) validate() error {
	switch c.FeatCasemap {
	case CasemapASCII, CasemapRFC1459, CasemapRFC1459Strict, CasemapRFC7613:
	default:
		return errors.Errorf("unknown feat_casemap: %s", c.FeatCasemap)
	}

	if c.Name == "" {
		return errors.New("name must not be blank")
	}

	if c.Port == 0 {
		return errors.New("port must not be zero")
	}

	return nil
}
