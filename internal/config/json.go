package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files, with
// durations accepted as strings ("30s") or nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		IdentityHashKey string `json:"identity_hash_key"`
		ProbePath       string `json:"probe_path"`
	} `json:"app,omitempty"`

	Adapter struct {
		AuthAddress    string   `json:"auth_address"`
		AuthBasePath   string   `json:"auth_base_path"`
		GatewayAddress string   `json:"gateway_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		Backend string `json:"backend"`
		DB      struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Gateway struct {
		Address         string   `json:"address"`
		UpstreamURL     string   `json:"upstream_url"`
		UpstreamTimeout Duration `json:"upstream_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"gateway,omitempty"`
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
			IdentityHashKey: jsonCfg.App.IdentityHashKey,
			ProbePath:       jsonCfg.App.ProbePath,
		},
		Adapter: Adapter{
			AuthAddress:    jsonCfg.Adapter.AuthAddress,
			AuthBasePath:   jsonCfg.Adapter.AuthBasePath,
			GatewayAddress: jsonCfg.Adapter.GatewayAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Gateway: Gateway{
			Address:         jsonCfg.Gateway.Address,
			UpstreamURL:     jsonCfg.Gateway.UpstreamURL,
			UpstreamTimeout: time.Duration(jsonCfg.Gateway.UpstreamTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Gateway.ShutdownTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
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
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
