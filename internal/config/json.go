package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration parsing for file-based configuration.
type StructuredJSONConfig struct {
	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	OneBot struct {
		APIBaseURL     string   `json:"api_base_url"`
		AccessToken    string   `json:"access_token"`
		CallbackSecret string   `json:"callback_secret"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"onebot,omitempty"`

	Grants struct {
		Cera      int `json:"cera"`
		CeraPoint int `json:"cera_point"`
	} `json:"grants,omitempty"`
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
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		OneBot: OneBot{
			APIBaseURL:     jsonCfg.OneBot.APIBaseURL,
			AccessToken:    jsonCfg.OneBot.AccessToken,
			CallbackSecret: jsonCfg.OneBot.CallbackSecret,
			RequestTimeout: time.Duration(jsonCfg.OneBot.RequestTimeout),
		},
		Grants: Grants{
			Cera:      jsonCfg.Grants.Cera,
			CeraPoint: jsonCfg.Grants.CeraPoint,
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
