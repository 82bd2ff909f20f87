package config

import (
	"fmt"

	"github.com/diillson/ai-roi-playground/internal/adapter/driven/fileformat"
	"github.com/diillson/ai-roi-playground/internal/domain/repository"
	"github.com/diillson/ai-roi-playground/internal/shared/types"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	var config types.Config
	if err := fileformat.DecodeFile(filePath, &config); err != nil {
		return nil, fmt.Errorf("config file %s: %w", filePath, err)
	}
	return &config, nil
}
