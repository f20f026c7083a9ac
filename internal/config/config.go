package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hbjs97/pyenv-venv/internal/pyenv"
	"github.com/mitchellh/go-homedir"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// Config는 pyenv-venv 설정 파일의 최상위 구조체다.
type Config struct {
	Root           string `toml:"root"`
	VersionFile    string `toml:"version_file"`
	Interpreter    string `toml:"interpreter"`
	ActivateScript string `toml:"activate_script"`
}

// DefaultPath는 기본 설정 파일 경로(~/.config/pyenv-venv/config.toml)다.
func DefaultPath() string {
	home, err := homedir.Dir()
	if err != nil {
		return filepath.Join(".config", "pyenv-venv", "config.toml")
	}
	return filepath.Join(home, ".config", "pyenv-venv", "config.toml")
}

// Default는 기본값만 채운 Config를 반환한다.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load는 config.toml을 파싱하여 Config를 반환한다. 파일이 없으면 기본값을 반환한다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config.Load: %w: %w", ErrConfig, err)
	}
	if err := cfg.expand(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Layout은 root 아래의 가상환경 배치를 Config 값으로 만든다.
func (c *Config) Layout(root string) *pyenv.Layout {
	return &pyenv.Layout{
		Root:           root,
		Interpreter:    c.Interpreter,
		ActivateScript: c.ActivateScript,
	}
}

// ResolveRoot는 PYENV_ROOT 값이 있으면 그것을, 없으면 설정의 root를 반환한다.
func (c *Config) ResolveRoot(envRoot string) string {
	if envRoot != "" {
		return envRoot
	}
	return c.Root
}

func (c *Config) expand() error {
	if c.Root == "" {
		return nil
	}
	root, err := homedir.Expand(c.Root)
	if err != nil {
		return fmt.Errorf("config.Load: %w: root: %w", ErrConfig, err)
	}
	c.Root = root
	return nil
}

func (c *Config) applyDefaults() {
	if c.VersionFile == "" {
		c.VersionFile = pyenv.DefaultVersionFile
	}
	if c.Interpreter == "" {
		c.Interpreter = pyenv.DefaultInterpreter
	}
	if c.ActivateScript == "" {
		c.ActivateScript = pyenv.DefaultActivateScript
	}
}

func (c *Config) validate() error {
	if c.Root != "" && !filepath.IsAbs(c.Root) {
		return fmt.Errorf("config.Load: %w: root는 절대 경로여야 합니다: %s", ErrConfig, c.Root)
	}
	if strings.ContainsAny(c.VersionFile, `/\`) {
		return fmt.Errorf("config.Load: %w: version_file은 파일 이름이어야 합니다: %s", ErrConfig, c.VersionFile)
	}
	for key, rel := range map[string]string{
		"interpreter":     c.Interpreter,
		"activate_script": c.ActivateScript,
	} {
		if !isLocalPath(rel) {
			return fmt.Errorf("config.Load: %w: %s는 가상환경 내부 상대 경로여야 합니다: %s", ErrConfig, key, rel)
		}
	}
	return nil
}

func isLocalPath(p string) bool {
	return filepath.IsLocal(filepath.FromSlash(p))
}
