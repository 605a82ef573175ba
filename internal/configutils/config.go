package configutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fsexplorer/internal/errcodes"
	"fsexplorer/internal/pkg/fs"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	KeyLogLevel       = "log.level"
	KeyHistoryEnabled = "history.enabled"
	KeyHistoryPath    = "history.path"
	KeyHistorySize    = "history.size"
)

var filetypes = []string{"yaml", "json", "toml"}

var ErrConfigFileIsDir = errors.New("configuration file is a directory")

type Config struct {
	LogLevel       string
	HistoryEnabled bool
	HistoryPath    string
	HistorySize    int
}

type configMerger interface {
	SetConfigType(string)
	MergeConfig(io.Reader) error
}

var mergeConfig = func(in io.Reader, filetype string, cm configMerger) error {
	cm.SetConfigType(filetype)
	return cm.MergeConfig(in)
}

var fileExists = func(filename string, filesystem fs.Filesystem) error {
	info, err := filesystem.Stat(filename)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return ErrConfigFileIsDir
	}

	return nil
}

var loadFile = func(filename string, filesystem fs.Filesystem) (io.ReadCloser, error) {
	err := fileExists(filename, filesystem)
	if err != nil {
		return nil, err
	}

	f, err := filesystem.OpenFile(filename, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}

	return f, nil
}

var loadConfig = func(filename, filetype string, v *viper.Viper) error {
	f, err := loadFile(filename, fs.NewOS())
	if err != nil {
		return err
	}
	defer f.Close()

	return mergeConfig(f, filetype, v)
}

var getGlobalConfigDir = func() (string, error) {
	return homedir.Expand("~/.config/fsexplorer")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyHistoryEnabled, true)
	v.SetDefault(KeyHistoryPath, "~/.config/fsexplorer/state")
	v.SetDefault(KeyHistorySize, 20)
}

func filetypeOf(filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "yml" {
		return "yaml"
	}

	return ext
}

// Load builds the configuration from defaults, the first global config file
// found and, when path is not empty, the file at path. Missing global files
// are skipped; a missing explicit file is an error.
func Load(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	cfgDir, err := getGlobalConfigDir()
	if err != nil {
		return nil, errcodes.ErrHomeDirNotFound
	}

	for _, ft := range filetypes {
		f := filepath.Join(cfgDir, fmt.Sprintf("config.%s", ft))
		err = loadConfig(f, ft, v)
		if err == nil {
			break
		}
		if !os.IsNotExist(errors.Cause(err)) {
			return nil, errors.Wrapf(err, "could not load config %s", f)
		}
		log.Debug().
			Msgf("config file %s not found, skipping to next filetype", f)
	}

	if path != "" {
		err = loadConfig(path, filetypeOf(path), v)
		if err != nil {
			return nil, errors.Wrapf(err, "could not load config %s", path)
		}
	}

	return v, nil
}

// FromViper reads the typed configuration, expanding the home directory in
// the history path.
func FromViper(v *viper.Viper) (*Config, error) {
	historyPath, err := homedir.Expand(v.GetString(KeyHistoryPath))
	if err != nil {
		return nil, errcodes.ErrHomeDirNotFound
	}

	return &Config{
		LogLevel:       v.GetString(KeyLogLevel),
		HistoryEnabled: v.GetBool(KeyHistoryEnabled),
		HistoryPath:    historyPath,
		HistorySize:    v.GetInt(KeyHistorySize),
	}, nil
}
