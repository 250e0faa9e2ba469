package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"github.com/lai323/jdict/jotoba"
	"github.com/lai323/jdict/note"
)

type Config struct {
	StoragePath string `yaml:"StoragePath" env:"JDICT_STORAGE_PATH"`
	VaultPath   string `yaml:"VaultPath" env:"JDICT_VAULT_PATH"`
	FolderPath  string `yaml:"FolderPath" env:"JDICT_FOLDER_PATH"`
	Mode        string `yaml:"Mode" env:"JDICT_MODE"`
	Language    string `yaml:"Language" env:"JDICT_LANGUAGE"`
	ApiUrl      string `yaml:"ApiUrl" env:"JDICT_API_URL"`
	CopyLink    bool   `yaml:"CopyLink" env:"JDICT_COPY_LINK"`
	LogLevel    string `yaml:"LogLevel" env:"JDICT_LOG_LEVEL"`
}

var (
	DefaultConfig     Config
	DefaultConfigDir  string
	DefaultConfigPath string
	DefaultStorageDir string
)

func init() {
	DefaultConfigDir = path.Join(xdg.ConfigHome, "jdict")
	DefaultConfigPath = path.Join(DefaultConfigDir, "jdict.yaml")
	DefaultStorageDir = path.Join(xdg.DataHome, "jdict")
	DefaultConfig = Config{
		StoragePath: DefaultStorageDir,
		VaultPath:   path.Join(xdg.Home, "notes"),
		FolderPath:  "/",
		Mode:        string(note.DoNotReplace),
		Language:    jotoba.DefaultLanguage,
		ApiUrl:      jotoba.BaseURL,
		LogLevel:    "info",
	}
}

type initConfigErr struct {
	s string
}

func (e *initConfigErr) Error() string {
	return e.s
}

func newInitConfigErr(err error) error {
	return &initConfigErr{
		s: fmt.Sprintf("Init config error: %s", err.Error()),
	}
}

func createDefaultFile(fs afero.Fs) error {
	err := fs.MkdirAll(DefaultConfigDir, 0755)
	if err != nil {
		return err
	}
	err = fs.MkdirAll(DefaultStorageDir, 0755)
	if err != nil {
		return err
	}

	exist, err := afero.Exists(fs, DefaultConfigPath)
	if err != nil {
		return err
	}

	if !exist {
		handle, err := fs.Create(DefaultConfigPath)
		if err != nil {
			return err
		}
		defer handle.Close()
		err = yaml.NewEncoder(handle).Encode(&DefaultConfig)
		if err != nil {
			return err
		}
	}
	return nil
}

// InitConfig reads the config file, writing the default one first when no
// path is given, then applies JDICT_* environment overrides.
func InitConfig(fs afero.Fs, configPathOption string) (Config, error) {
	config := DefaultConfig
	var configfile string

	if configPathOption == "" {
		if err := createDefaultFile(fs); err != nil {
			return config, newInitConfigErr(err)
		}
		configfile = DefaultConfigPath
	} else {
		exist, err := afero.Exists(fs, configPathOption)
		if err != nil {
			return config, newInitConfigErr(err)
		}
		if !exist {
			return config, &initConfigErr{
				s: fmt.Sprintf("Init config error: %s not exist", configPathOption),
			}
		}
		configfile = configPathOption
	}

	handle, err := fs.Open(configfile)
	if err != nil {
		return config, newInitConfigErr(err)
	}
	defer handle.Close()
	err = yaml.NewDecoder(handle).Decode(&config)
	if err != nil {
		return config, newInitConfigErr(err)
	}

	err = cleanenv.ReadEnv(&config)
	if err != nil {
		return config, newInitConfigErr(err)
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.StoragePath == "" {
		return errors.New("StoragePath empty")
	}
	if c.VaultPath == "" {
		return errors.New("VaultPath empty")
	}
	if _, err := note.ParseLinkMode(c.Mode); err != nil {
		return fmt.Errorf("Mode: %w", err)
	}
	return nil
}

func (c Config) LinkMode() note.LinkMode {
	return note.LinkMode(c.Mode)
}

func (c Config) LogFile() string {
	return path.Join(c.StoragePath, "jdict.log")
}

func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
