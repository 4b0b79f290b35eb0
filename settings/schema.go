package settings

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "stance://settings.schema.json"

const schemaSource = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["stance", "prone", "restraints", "debug", "sentry"],
  "properties": {
    "stance": {
      "type": "object",
      "required": ["hold_threshold_ms", "release_noise_window_ms"],
      "properties": {
        "hold_threshold_ms": {"type": "integer", "minimum": 1},
        "release_noise_window_ms": {"type": "integer", "minimum": 0},
        "evict_blocked_prone": {"type": "boolean"}
      }
    },
    "prone": {
      "type": "object",
      "required": ["dive_ms", "exit_immunity_ms", "flip_cooldown_ms", "weapon_draw_ms", "crawl_ms", "repeat_wide_ms", "repeat_narrow_ms"],
      "properties": {
        "dive_ms": {"type": "integer", "minimum": 0},
        "exit_immunity_ms": {"type": "integer", "minimum": 0, "maximum": 1000},
        "flip_cooldown_ms": {"type": "integer", "minimum": 0},
        "weapon_draw_ms": {"type": "integer", "minimum": 0},
        "crawl_ms": {"type": "integer", "minimum": 1},
        "repeat_wide_ms": {"type": "integer", "minimum": 1},
        "repeat_narrow_ms": {"type": "integer", "minimum": 1},
        "turn_step": {"type": "number", "exclusiveMinimum": 0, "maximum": 180},
        "turn_repeat": {"type": "number", "exclusiveMinimum": 0, "maximum": 180}
      }
    },
    "restraints": {
      "type": "object",
      "properties": {
        "animations": {
          "type": ["array", "null"],
          "items": {
            "type": "object",
            "required": ["set", "clip"],
            "properties": {
              "set": {"type": "string", "minLength": 1},
              "clip": {"type": "string", "minLength": 1}
            }
          }
        }
      }
    },
    "debug": {
      "type": "object",
      "properties": {
        "log_level": {"enum": ["panic", "fatal", "error", "warn", "warning", "info", "debug", "trace"]},
        "modes": {
          "type": ["array", "null"],
          "items": {"enum": ["transitions", "ledger", "prone", "suspensions"]}
        }
      }
    },
    "sentry": {
      "type": "object",
      "properties": {
        "dsn": {"type": "string"},
        "environment": {"type": "string"}
      }
    }
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, strings.NewReader(schemaSource)); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}

// Validate checks the settings against the settings schema.
func Validate(s Settings) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("decode settings: %w", err)
	}
	if err := sch.Validate(payload); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
