package project

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/RodrigoSpano/envsetup/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// settingsDTO mirrors the optional .envsetup.yaml file at the project root.
type settingsDTO struct {
	SourceDir      string `yaml:"sourceDir"`
	PackageManager string `yaml:"packageManager"`
	OwnManifest    string `yaml:"ownManifest"`
}

// Settings loads the optional settings file from the project root. A missing
// file yields zero-value settings; the defaults live in domain.Settings.
func (r *Resolver) Settings(root string) (domain.Settings, error) {
	path := filepath.Join(root, domain.SettingsFileName)

	var dto settingsDTO
	if err := r.readAndUnmarshalYAML(path, &dto); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Settings{}, nil
		}
		return domain.Settings{}, err
	}

	if dto.PackageManager != "" {
		if _, err := domain.ParsePackageManager(dto.PackageManager); err != nil {
			return domain.Settings{}, zerr.With(err, "settings_file", path)
		}
		r.logger.Info("using package manager from " + domain.SettingsFileName + ": " + dto.PackageManager)
	}

	return domain.Settings{
		SourceDir:      dto.SourceDir,
		PackageManager: dto.PackageManager,
		OwnManifest:    dto.OwnManifest,
	}, nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func (r *Resolver) readAndUnmarshalYAML(path string, target *settingsDTO) error {
	raw, err := r.fs.ReadFile(path)
	if err != nil {
		return err
	}

	if parseErr := yaml.Unmarshal(raw, target); parseErr != nil {
		err := zerr.Wrap(parseErr, domain.ErrSettingsParseFailed.Error())
		return zerr.With(err, "path", path)
	}

	return nil
}
