package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Storage struct {
		Write struct {
			Host string `json:"host"`
			Port int    `json:"port"`
		} `json:"write,omitempty"`

		Read struct {
			Host string `json:"host"`
			Port int    `json:"port"`
		} `json:"read,omitempty"`

		Database string `json:"database"`
		User     string `json:"user"`
		Password string `json:"password"`
	} `json:"storage,omitempty"`

	Workers struct {
		MonitorInterval Duration `json:"monitor_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			Write: Pool{
				Host: jsonCfg.Storage.Write.Host,
				Port: jsonCfg.Storage.Write.Port,
			},
			Read: Pool{
				Host: jsonCfg.Storage.Read.Host,
				Port: jsonCfg.Storage.Read.Port,
			},
			Database: jsonCfg.Storage.Database,
			User:     jsonCfg.Storage.User,
			Password: jsonCfg.Storage.Password,
		},
		Workers: Workers{
			MonitorInterval: time.Duration(jsonCfg.Workers.MonitorInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("error parsing duration %q: %w", value, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return errors.New("invalid duration value")
	}
}
