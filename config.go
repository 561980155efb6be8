package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/MixinNetwork/nexus/economy"
	"github.com/MixinNetwork/nexus/generator"
	"github.com/MixinNetwork/nexus/store"
	"github.com/pelletier/go-toml"
)

const (
	GeneratorLocal = "local"
	GeneratorHTTP  = "http"
)

type Configuration struct {
	Store struct {
		Dir        string `toml:"dir"`
		InMemory   bool   `toml:"in-memory"`
		SyncWrites bool   `toml:"sync-writes"`
	} `toml:"store"`
	Economy struct {
		GenerationCost    uint64 `toml:"generation-cost"`
		InitialBalance    uint64 `toml:"initial-balance"`
		GenerationTimeout string `toml:"generation-timeout"`
	} `toml:"economy"`
	Generator struct {
		Kind     string `toml:"kind"`
		Endpoint string `toml:"endpoint"`
		Seed     int64  `toml:"seed"`
	} `toml:"generator"`
	Log struct {
		Level int `toml:"level"`
	} `toml:"log"`
}

func DefaultConfiguration() *Configuration {
	conf := &Configuration{}
	conf.Store.Dir = "~/.nexus/data"
	conf.Store.SyncWrites = true
	conf.Economy.GenerationCost = economy.DefaultGenerationCost
	conf.Economy.InitialBalance = store.DefaultInitialBalance
	conf.Economy.GenerationTimeout = economy.DefaultGenerationTimeout.String()
	conf.Generator.Kind = GeneratorLocal
	conf.Log.Level = 2
	return conf
}

// ReadConfiguration overlays the file at path on the defaults, a missing
// file yields the defaults.
func ReadConfiguration(path string) (*Configuration, error) {
	conf := DefaultConfiguration()
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	f, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return conf, conf.validate()
	} else if err != nil {
		return nil, err
	}
	err = toml.Unmarshal(f, conf)
	if err != nil {
		return nil, fmt.Errorf("config %s: %v", path, err)
	}
	return conf, conf.validate()
}

func (conf *Configuration) validate() error {
	switch conf.Generator.Kind {
	case GeneratorLocal:
	case GeneratorHTTP:
		if conf.Generator.Endpoint == "" {
			return fmt.Errorf("generator endpoint required for kind %s", GeneratorHTTP)
		}
	default:
		return fmt.Errorf("unknown generator kind %q", conf.Generator.Kind)
	}
	if conf.Economy.GenerationCost == 0 {
		return fmt.Errorf("generation cost must be positive")
	}
	if conf.Economy.InitialBalance == 0 {
		return fmt.Errorf("initial balance must be positive")
	}
	_, err := conf.generationTimeout()
	return err
}

func (conf *Configuration) generationTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(conf.Economy.GenerationTimeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid generation timeout %q", conf.Economy.GenerationTimeout)
	}
	return d, nil
}

func (conf *Configuration) storeConfiguration() (*store.Configuration, error) {
	dir, err := expandHome(conf.Store.Dir)
	if err != nil {
		return nil, err
	}
	return &store.Configuration{
		Dir:            dir,
		InMemory:       conf.Store.InMemory,
		SyncWrites:     conf.Store.SyncWrites,
		InitialBalance: conf.Economy.InitialBalance,
	}, nil
}

func (conf *Configuration) economyConfiguration() *economy.Configuration {
	timeout, _ := conf.generationTimeout()
	return &economy.Configuration{
		GenerationCost:    conf.Economy.GenerationCost,
		GenerationTimeout: timeout,
	}
}

func (conf *Configuration) buildGenerator() economy.Generator {
	if conf.Generator.Kind == GeneratorHTTP {
		timeout, _ := conf.generationTimeout()
		return generator.NewHTTP(conf.Generator.Endpoint, timeout)
	}
	seed := conf.Generator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return generator.NewLocal(seed)
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	usr, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(usr.HomeDir, path[2:]), nil
}
