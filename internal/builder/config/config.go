package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	MongoURI         string
	Port             string
	DBName           string
	CollectionPrefix string
	LogLevel         string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	DimensionKeys    DimensionKeys
}

// DimensionKeys are the opaque analytics dimension identifiers the global
// filter mapping is keyed by. They are an external contract and are never
// derived from dashboard data.
type DimensionKeys struct {
	Periods                      string `yaml:"periods"`
	Level                        string `yaml:"level"`
	OrganisationUnits            string `yaml:"organisation_units"`
	Sublevel                     string `yaml:"sublevel"`
	Groups                       string `yaml:"groups"`
	CategoryOptionCombos         string `yaml:"category_option_combos"`
	PreviousCategoryOptionCombos string `yaml:"previous_category_option_combos"`
	TargetCategoryOptionCombos   string `yaml:"target_category_option_combos"`
	DataElements                 string `yaml:"data_elements"`
	DataElementGroups            string `yaml:"data_element_groups"`
	DataElementGroupSets         string `yaml:"data_element_group_sets"`
}

func DefaultDimensionKeys() DimensionKeys {
	return DimensionKeys{
		Periods:                      "m5D13FqKZwN",
		Level:                        "GQhi6pRnTKF",
		OrganisationUnits:            "mclvD0Z9mfT",
		Sublevel:                     "ww1uoD3DsYg",
		Groups:                       "of2WvtwqbHR",
		CategoryOptionCombos:         "WSiMOMi4QWh",
		PreviousCategoryOptionCombos: "OOhWJ4gfZy1",
		TargetCategoryOptionCombos:   "Cp4yI3rSd3R",
		DataElements:                 "h9oh0VhweQM",
		DataElementGroups:            "JsPfHe1QkJe",
		DataElementGroupSets:         "HdiJ61vwqTX",
	}
}

func (k DimensionKeys) Validate() error {
	fields := map[string]string{
		"periods":                         k.Periods,
		"level":                           k.Level,
		"organisation_units":              k.OrganisationUnits,
		"sublevel":                        k.Sublevel,
		"groups":                          k.Groups,
		"category_option_combos":          k.CategoryOptionCombos,
		"previous_category_option_combos": k.PreviousCategoryOptionCombos,
		"target_category_option_combos":   k.TargetCategoryOptionCombos,
		"data_elements":                   k.DataElements,
		"data_element_groups":             k.DataElementGroups,
		"data_element_group_sets":         k.DataElementGroupSets,
	}
	seen := make(map[string]string, len(fields))
	for name, value := range fields {
		if value == "" {
			return fmt.Errorf("dimension key %s is required", name)
		}
		if other, dup := seen[value]; dup {
			return fmt.Errorf("dimension keys %s and %s share the value %q", other, name, value)
		}
		seen[value] = name
	}
	return nil
}

// LoadDimensionKeys reads a YAML file on top of the defaults; keys absent
// from the file keep their default value.
func LoadDimensionKeys(path string) (DimensionKeys, error) {
	keys := DefaultDimensionKeys()
	if path == "" {
		return keys, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return keys, fmt.Errorf("read dimension keys %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return keys, fmt.Errorf("parse dimension keys %s: %w", path, err)
	}
	return keys, nil
}

func LoadConfig() (*Config, error) {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	keys, err := LoadDimensionKeys(os.Getenv("DIMENSION_KEYS_FILE"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		MongoURI:         mongoURI,
		Port:             port,
		DBName:           getEnv("DB_NAME", "dashboards_db"),
		CollectionPrefix: getEnv("COLLECTION_PREFIX", "i-"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		ReadTimeout:      getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:     getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		DimensionKeys:    keys,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	return c.DimensionKeys.Validate()
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvDuration accepts plain seconds ("15") or a Go duration ("1m30s").
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}
