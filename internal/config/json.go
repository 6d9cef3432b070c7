package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		SessionSecret string `json:"session_secret"`
		Environment   string `json:"environment"`
	} `json:"app,omitempty"`

	Storage struct {
		Mongo struct {
			URI            string   `json:"uri"`
			Database       string   `json:"database"`
			Collection     string   `json:"collection"`
			ConnectTimeout Duration `json:"connect_timeout"`
		} `json:"mongo,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress   string `json:"http_address"`
		VerboseDelete bool   `json:"verbose_delete"`
	} `json:"server,omitempty"`
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
		App: App{
			SessionSecret: jsonCfg.App.SessionSecret,
			Environment:   jsonCfg.App.Environment,
		},
		Storage: Storage{
			Mongo: Mongo{
				URI:            jsonCfg.Storage.Mongo.URI,
				Database:       jsonCfg.Storage.Mongo.Database,
				Collection:     jsonCfg.Storage.Mongo.Collection,
				ConnectTimeout: time.Duration(jsonCfg.Storage.Mongo.ConnectTimeout),
			},
		},
		Server: Server{
			HTTPAddress:   jsonCfg.Server.HTTPAddress,
			VerboseDelete: jsonCfg.Server.VerboseDelete,
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
