package tools

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Context governance tiers.
const (
	TierFoundation = "foundation"
	TierWorking    = "working"
	TierEphemeral  = "ephemeral"
)

// ContextItemSchema declares one context item type: its governance tier,
// whether a single instance exists per project, and the JSON schema its
// content is held to. An empty Schema means freeform content.
type ContextItemSchema struct {
	ItemType  string
	Tier      string
	Singleton bool
	Schema    string

	// required drives completeness scoring. Validation itself checks
	// shape only; partial writes are legal.
	required []string
	compiled *jsonschema.Schema
}

// SchemaRegistry holds the context item types a project understands.
type SchemaRegistry struct {
	byType map[string]*ContextItemSchema
	order  []string
}

// NewSchemaRegistry compiles the given item schemas. The declared required
// fields are stripped before compilation so partial content validates;
// they feed completeness scoring instead.
func NewSchemaRegistry(schemas []ContextItemSchema) (*SchemaRegistry, error) {
	r := &SchemaRegistry{byType: make(map[string]*ContextItemSchema, len(schemas))}
	for i := range schemas {
		s := schemas[i]
		if s.Schema != "" {
			compiled, required, err := compileItemSchema(s.ItemType, s.Schema)
			if err != nil {
				return nil, fmt.Errorf("item schema %s: %w", s.ItemType, err)
			}
			s.compiled = compiled
			s.required = required
		}
		r.byType[s.ItemType] = &s
		r.order = append(r.order, s.ItemType)
	}
	return r, nil
}

// Lookup returns the schema for an item type.
func (r *SchemaRegistry) Lookup(itemType string) (*ContextItemSchema, bool) {
	s, ok := r.byType[itemType]
	return s, ok
}

// Types returns the registered item types in declaration order.
func (r *SchemaRegistry) Types() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Tier resolves the governance tier for an item type. Unregistered types
// land on the working tier.
func (r *SchemaRegistry) Tier(itemType string) string {
	if s, ok := r.byType[itemType]; ok {
		return s.Tier
	}
	return TierWorking
}

// Validate checks content shape against the item type's schema. Types
// without a schema accept anything.
func (r *SchemaRegistry) Validate(itemType string, content map[string]any) error {
	s, ok := r.byType[itemType]
	if !ok || s.compiled == nil {
		return nil
	}
	// Round-trip through JSON so the validator sees plain decoded values.
	payload, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("encode content: %w", err)
	}
	var decoded any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return fmt.Errorf("decode content: %w", err)
	}
	return s.compiled.Validate(decoded)
}

// Completeness scores content as filled required fields over total required
// fields. Types without required fields score 1.
func (r *SchemaRegistry) Completeness(itemType string, content map[string]any) float64 {
	s, ok := r.byType[itemType]
	if !ok || len(s.required) == 0 {
		return 1
	}
	filled := 0
	for _, field := range s.required {
		if isFilled(content[field]) {
			filled++
		}
	}
	return float64(filled) / float64(len(s.required))
}

func isFilled(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

func compileItemSchema(itemType, schema string) (*jsonschema.Schema, []string, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(schema), &doc); err != nil {
		return nil, nil, err
	}
	var required []string
	if raw, ok := doc["required"].([]any); ok {
		for _, f := range raw {
			if name, ok := f.(string); ok {
				required = append(required, name)
			}
		}
	}
	delete(doc, "required")
	relaxed, err := json.Marshal(doc)
	if err != nil {
		return nil, nil, err
	}
	compiled, err := jsonschema.CompileString("context/"+itemType+".json", string(relaxed))
	if err != nil {
		return nil, nil, err
	}
	return compiled, required, nil
}

var (
	builtinSchemas     *SchemaRegistry
	builtinSchemasOnce sync.Once
)

// BuiltinContextSchemas returns the built-in context item types
// (thread-safe, lazy-initialized).
func BuiltinContextSchemas() *SchemaRegistry {
	builtinSchemasOnce.Do(func() {
		r, err := NewSchemaRegistry(builtinContextSchemas())
		if err != nil {
			panic(err)
		}
		builtinSchemas = r
	})
	return builtinSchemas
}

func builtinContextSchemas() []ContextItemSchema {
	return []ContextItemSchema{
		{
			ItemType:  "problem",
			Tier:      TierFoundation,
			Singleton: true,
			Schema: `{
			  "type": "object",
			  "required": ["statement", "impact"],
			  "properties": {
			    "statement": {"type": "string"},
			    "impact": {"type": "string"},
			    "evidence": {"type": "array", "items": {"type": "string"}},
			    "urgency": {"type": "string", "enum": ["low", "medium", "high"]}
			  },
			  "additionalProperties": false
			}`,
		},
		{
			ItemType:  "customer",
			Tier:      TierFoundation,
			Singleton: true,
			Schema: `{
			  "type": "object",
			  "required": ["segment", "needs"],
			  "properties": {
			    "segment": {"type": "string"},
			    "needs": {"type": "array", "items": {"type": "string"}},
			    "pains": {"type": "array", "items": {"type": "string"}},
			    "channels": {"type": "array", "items": {"type": "string"}}
			  },
			  "additionalProperties": false
			}`,
		},
		{
			ItemType:  "brand",
			Tier:      TierFoundation,
			Singleton: true,
			Schema: `{
			  "type": "object",
			  "required": ["voice", "values"],
			  "properties": {
			    "voice": {"type": "string"},
			    "values": {"type": "array", "items": {"type": "string"}},
			    "tone_words": {"type": "array", "items": {"type": "string"}},
			    "avoid": {"type": "array", "items": {"type": "string"}}
			  },
			  "additionalProperties": false
			}`,
		},
		{
			ItemType:  "offering",
			Tier:      TierFoundation,
			Singleton: true,
			Schema: `{
			  "type": "object",
			  "required": ["name", "value_proposition"],
			  "properties": {
			    "name": {"type": "string"},
			    "value_proposition": {"type": "string"},
			    "pricing": {"type": "string"},
			    "differentiators": {"type": "array", "items": {"type": "string"}}
			  },
			  "additionalProperties": false
			}`,
		},
		{
			ItemType: "channel_strategy",
			Tier:     TierWorking,
			Schema: `{
			  "type": "object",
			  "required": ["channel", "cadence"],
			  "properties": {
			    "channel": {"type": "string"},
			    "cadence": {"type": "string"},
			    "formats": {"type": "array", "items": {"type": "string"}},
			    "goals": {"type": "array", "items": {"type": "string"}}
			  },
			  "additionalProperties": false
			}`,
		},
		{
			ItemType: "competitor",
			Tier:     TierWorking,
			Schema: `{
			  "type": "object",
			  "required": ["name"],
			  "properties": {
			    "name": {"type": "string"},
			    "positioning": {"type": "string"},
			    "strengths": {"type": "array", "items": {"type": "string"}},
			    "weaknesses": {"type": "array", "items": {"type": "string"}}
			  },
			  "additionalProperties": false
			}`,
		},
		{
			ItemType: "working_note",
			Tier:     TierEphemeral,
		},
	}
}
