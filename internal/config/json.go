package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		Language    string `json:"language"`
		StrictState bool   `json:"strict_state"`
		Version     string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver string `json:"driver"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			StatePath string `json:"state_path"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Export struct {
		Dir string `json:"dir"`
		S3  struct {
			Bucket    string `json:"bucket"`
			Region    string `json:"region"`
			Endpoint  string `json:"endpoint"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
			Prefix    string `json:"prefix"`
		} `json:"s3,omitempty"`
		RemoteAddress string   `json:"remote_address"`
		RemoteTimeout Duration `json:"remote_timeout"`
	} `json:"export,omitempty"`

	Log struct {
		Dir   string `json:"dir"`
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
		App: App{
			Language:    jsonCfg.App.Language,
			StrictState: jsonCfg.App.StrictState,
			Version:     jsonCfg.App.Version,
		},
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				StatePath: jsonCfg.Storage.Files.StatePath,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Export: Export{
			Dir: jsonCfg.Export.Dir,
			S3: S3{
				Bucket:    jsonCfg.Export.S3.Bucket,
				Region:    jsonCfg.Export.S3.Region,
				Endpoint:  jsonCfg.Export.S3.Endpoint,
				AccessKey: jsonCfg.Export.S3.AccessKey,
				SecretKey: jsonCfg.Export.S3.SecretKey,
				Prefix:    jsonCfg.Export.S3.Prefix,
			},
			RemoteAddress: jsonCfg.Export.RemoteAddress,
			RemoteTimeout: time.Duration(jsonCfg.Export.RemoteTimeout),
		},
		Log: Log{
			Dir:   jsonCfg.Log.Dir,
			Level: jsonCfg.Log.Level,
		},
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
