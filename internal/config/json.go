package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config
// file.
type StructuredJSONConfig struct {
	Vault struct {
		File string `json:"file"`
	} `json:"vault,omitempty"`

	Keyring struct {
		Service string `json:"service"`
		User    string `json:"user"`
	} `json:"keyring,omitempty"`

	Clipboard struct {
		Window Duration `json:"window"`
	} `json:"clipboard,omitempty"`

	Server struct {
		Address string `json:"address"`
	} `json:"server,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
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
		Vault: Vault{
			FilePath: jsonCfg.Vault.File,
		},
		Keyring: Keyring{
			Service: jsonCfg.Keyring.Service,
			User:    jsonCfg.Keyring.User,
		},
		Clipboard: Clipboard{
			Window: time.Duration(jsonCfg.Clipboard.Window),
		},
		Server: Server{
			Address: jsonCfg.Server.Address,
		},
		Log: Log{
			Path:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
