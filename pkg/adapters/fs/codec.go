package fs

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aretw0/eegcleaner/pkg/core"
	"gopkg.in/yaml.v3"
)

// Top-level keys of a log file.
const (
	keyRaws    = "raws"
	keyEpochs  = "epochs"
	keyICAs    = "icas"
	keyConfig  = "config"
	keyVersion = "version"
)

// decodeLogFile parses data into a healed LogFile and reports which canonical
// keys had to be filled in.
func decodeLogFile(data []byte) (*core.LogFile, []string, error) {
	var raw map[string]json.RawMessage
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, nil, fmt.Errorf("invalid json: %w", err)
		}
	}
	return healSchema(raw)
}

// healSchema builds a LogFile from the top-level entries of a log, keeping
// unknown keys and filling in every canonical key that is absent or null.
// Unknown keys inside individual records are not kept.
func healSchema(raw map[string]json.RawMessage) (*core.LogFile, []string, error) {
	log := core.DefaultLogFile()
	present := make(map[string]bool, len(raw))

	for key, msg := range raw {
		var err error
		switch key {
		case keyRaws:
			err = json.Unmarshal(msg, &log.Raws)
		case keyEpochs:
			err = json.Unmarshal(msg, &log.Epochs)
		case keyICAs:
			err = json.Unmarshal(msg, &log.ICAs)
		case keyConfig:
			err = decodeConfig(msg, &log.Config)
		default:
			log.Extra[key] = msg
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("invalid %q entry: %w", key, err)
		}
		present[key] = !isNull(msg)
	}

	var healed []string
	for _, key := range []string{keyRaws, keyEpochs, keyICAs, keyConfig} {
		if !present[key] {
			healed = append(healed, key)
		}
	}
	normalize(log)
	return log, healed, nil
}

func decodeConfig(msg json.RawMessage, cfg *core.LogConfig) error {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(msg, &entries); err != nil {
		return err
	}
	for key, value := range entries {
		if key != keyVersion {
			cfg.Extra[key] = value
			continue
		}
		if isNull(value) {
			continue
		}
		if err := json.Unmarshal(value, &cfg.Version); err != nil {
			return fmt.Errorf("version: %w", err)
		}
	}
	return nil
}

// normalize makes every mapping and list of log non-nil, except Selection
// whose absence is meaningful.
func normalize(log *core.LogFile) {
	if log.Raws == nil {
		log.Raws = make(map[string]*core.RawRecord)
	}
	if log.Epochs == nil {
		log.Epochs = make(map[string]*core.EpochsRecord)
	}
	if log.ICAs == nil {
		log.ICAs = make(map[string]*core.ICARecord)
	}
	if log.Config.Extra == nil {
		log.Config.Extra = make(map[string]json.RawMessage)
	}
	if log.Extra == nil {
		log.Extra = make(map[string]json.RawMessage)
	}

	for name, rec := range log.Raws {
		if rec == nil {
			rec = &core.RawRecord{}
			log.Raws[name] = rec
		}
		if rec.Bads == nil {
			rec.Bads = []string{}
		}
	}
	for name, rec := range log.Epochs {
		if rec == nil {
			rec = &core.EpochsRecord{}
			log.Epochs[name] = rec
		}
		if rec.Bads == nil {
			rec.Bads = []string{}
		}
	}
	for name, rec := range log.ICAs {
		if rec == nil {
			rec = &core.ICARecord{}
			log.ICAs[name] = rec
		}
		if rec.Exclude == nil {
			rec.Exclude = []int{}
		}
	}
}

// encodeLogFile renders log with sorted keys and a two-space indent.
func encodeLogFile(log *core.LogFile) ([]byte, error) {
	config := make(map[string]any, len(log.Config.Extra)+1)
	for k, v := range log.Config.Extra {
		config[k] = v
	}
	config[keyVersion] = log.Config.Version

	payload := make(map[string]any, len(log.Extra)+4)
	for k, v := range log.Extra {
		payload[k] = v
	}
	payload[keyRaws] = log.Raws
	payload[keyEpochs] = log.Epochs
	payload[keyICAs] = log.ICAs
	payload[keyConfig] = config

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// EncodeJSON renders log exactly as the store writes it.
func EncodeJSON(log *core.LogFile) ([]byte, error) {
	return encodeLogFile(log)
}

// EncodeYAML renders log as YAML, for display.
func EncodeYAML(log *core.LogFile) ([]byte, error) {
	data, err := encodeLogFile(log)
	if err != nil {
		return nil, err
	}
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to convert log to yaml: %w", err)
	}
	return yaml.Marshal(tree)
}

func isNull(msg json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(msg), []byte("null"))
}
