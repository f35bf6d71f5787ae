package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config — корневая структура конфигурации генератора
type Config struct {
	Mapgen  MapgenConfig  `yaml:"mapgen"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// MapgenConfig задаёт параметры генерации
type MapgenConfig struct {
	Seed           int64  `yaml:"seed"`
	WaterLevel     int    `yaml:"water_level"`
	LightingEngine string `yaml:"lighting_engine"` // simplified | legacy
	Flags          string `yaml:"flags"`           // напр. "trees,caves,nolight"
	NodesPath      string `yaml:"nodes_path"`      // YAML-каталог материалов
}

// MetricsConfig задаёт параметры экспорта метрик
type MetricsConfig struct {
	Port int `yaml:"port"`
}

// GetSeed возвращает сид с поддержкой fallback значений
func (m *MapgenConfig) GetSeed() int64 {
	if m.Seed != 0 {
		return m.Seed
	}
	if envVal := os.Getenv("MAPGEN_SEED"); envVal != "" {
		if seed, err := strconv.ParseInt(envVal, 10, 64); err == nil {
			return seed
		}
	}
	return 1337
}

// GetLightingEngine возвращает модель освещения с приоритетом: config -> env -> default
func (m *MapgenConfig) GetLightingEngine() string {
	if m.LightingEngine != "" {
		return m.LightingEngine
	}
	if envVal := os.Getenv("MAPGEN_LIGHTING_ENGINE"); envVal != "" {
		return envVal
	}
	return "simplified"
}

// GetMetricsPort возвращает порт метрик с приоритетом: config -> env -> default
func (m *MetricsConfig) GetMetricsPort() int {
	if m.Port > 0 {
		return m.Port
	}
	if envVal := os.Getenv("MAPGEN_METRICS_PORT"); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}
	return 2112
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV MAPGEN_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("MAPGEN_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	return &cfg, nil
}
