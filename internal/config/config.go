// Package config loads the API map driving a generation run.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// API is one entry of the config: a name and the WSDL it points at.
type API struct {
	// Name is the raw identifier from the config file.
	Name string
	// WSDL is the document URL or local path.
	WSDL string
}

// Dir returns the workspace directory name for the API, with path
// separators replaced so arbitrary identifiers stay inside the output
// directory.
func (a API) Dir() string {
	name := strings.ReplaceAll(a.Name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	return name
}

// Config holds the APIs of one run, sorted by name so batches process
// in a stable order regardless of JSON map iteration.
type Config struct {
	APIs []API
}

// Load reads a JSON object mapping API name → WSDL URL.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("config file defines no APIs")
	}

	cfg := &Config{APIs: make([]API, 0, len(raw))}
	for name, wsdlURL := range raw {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("config file contains an empty API name")
		}
		if strings.TrimSpace(wsdlURL) == "" {
			return nil, fmt.Errorf("API %q has an empty WSDL URL", name)
		}
		cfg.APIs = append(cfg.APIs, API{Name: name, WSDL: wsdlURL})
	}
	sort.Slice(cfg.APIs, func(i, j int) bool { return cfg.APIs[i].Name < cfg.APIs[j].Name })
	return cfg, nil
}
