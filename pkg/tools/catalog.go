package tools

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Tool names as declared to the LLM.
const (
	ToolEmitWorkOutput = "emit_work_output"
	ToolReadContext    = "read_context"
	ToolWriteContext   = "write_context"
	ToolListContext    = "list_context"
	ToolListRecipes    = "list_recipes"
	ToolTriggerRecipe  = "trigger_recipe"
	ToolWebSearch      = "web_search"
	ToolDocumentSkill  = "document_skill"
)

// toolSpec is one catalog entry: the declaration sent to the LLM plus the
// compiled schema arguments are validated against before dispatch.
type toolSpec struct {
	name        string
	description string
	schema      string
	compiled    *jsonschema.Schema
}

var (
	toolSpecs     map[string]*toolSpec
	toolOrder     []string
	toolSpecsOnce sync.Once
)

// catalogSpecs returns the compiled tool catalog (lazy, process-wide).
func catalogSpecs() map[string]*toolSpec {
	toolSpecsOnce.Do(initToolSpecs)
	return toolSpecs
}

func catalogOrder() []string {
	toolSpecsOnce.Do(initToolSpecs)
	return toolOrder
}

func initToolSpecs() {
	declare := []toolSpec{
		{
			name: ToolEmitWorkOutput,
			description: "Persist one work artifact to the project. This is the only " +
				"way your work becomes visible to the user; text you do not emit is lost. " +
				"Set confidence honestly: values below 0.7 route the artifact to human review.",
			schema: emitWorkOutputSchema,
		},
		{
			name: ToolReadContext,
			description: "Read the newest active context item of the given type from the " +
				"project, optionally narrowed to an item_key or a subset of fields.",
			schema: readContextSchema,
		},
		{
			name: ToolWriteContext,
			description: "Create or update a context item. Content is validated against the " +
				"item type's schema when one exists. Foundation-tier writes may be routed to " +
				"a governance proposal instead of landing directly; the result says which.",
			schema: writeContextSchema,
		},
		{
			name: ToolListContext,
			description: "Survey the project's active context grouped by governance tier, " +
				"including item types that have no instance yet and an overall completeness score.",
			schema: listContextSchema,
		},
		{
			name: ToolListRecipes,
			description: "Enumerate the work recipes that can be triggered, with their " +
				"required context types and parameter names. Optionally filter by category.",
			schema: listRecipesSchema,
		},
		{
			name: ToolTriggerRecipe,
			description: "Queue a new work ticket from a recipe. Parameters are validated " +
				"against the recipe's schema. Returns the new ticket id; the work runs " +
				"asynchronously on its own session.",
			schema: triggerRecipeSchema,
		},
		{
			name: ToolWebSearch,
			description: "Search the public web. Executes on the model provider's side; " +
				"results arrive as assistant content.",
			schema: webSearchSchema,
		},
		{
			name: ToolDocumentSkill,
			description: "Generate a document (pptx, xlsx, docx, or pdf) from a structured " +
				"spec. Blocks until the file is ready and returns its metadata; record the " +
				"result with emit_work_output.",
			schema: documentSkillSchema,
		},
	}

	toolSpecs = make(map[string]*toolSpec, len(declare))
	toolOrder = make([]string, 0, len(declare))
	for i := range declare {
		spec := declare[i]
		spec.compiled = jsonschema.MustCompileString("tool/"+spec.name+".json", spec.schema)
		toolSpecs[spec.name] = &spec
		toolOrder = append(toolOrder, spec.name)
	}
}

// validateArgs checks raw tool arguments against the spec's schema. Empty
// arguments validate as an empty object.
func (s *toolSpec) validateArgs(raw string) error {
	var decoded any
	if strings.TrimSpace(raw) == "" {
		decoded = map[string]any{}
	} else if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return fmt.Errorf("arguments are not valid JSON: %w", err)
	}
	return s.compiled.Validate(decoded)
}

const emitWorkOutputSchema = `{
  "type": "object",
  "required": ["output_type", "title", "body", "confidence"],
  "properties": {
    "output_type": {
      "type": "string",
      "enum": ["finding", "recommendation", "insight", "draft_content",
               "content_variant", "content_asset", "report_section",
               "document", "error"]
    },
    "title": {"type": "string", "minLength": 1},
    "body": {},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1},
    "source_context_ids": {"type": "array", "items": {"type": "string"}},
    "tool_call_id": {"type": "string"},
    "metadata": {"type": "object"}
  },
  "additionalProperties": false
}`

const readContextSchema = `{
  "type": "object",
  "required": ["item_type"],
  "properties": {
    "item_type": {"type": "string", "minLength": 1},
    "item_key": {"type": "string"},
    "fields": {"type": "array", "items": {"type": "string"}}
  },
  "additionalProperties": false
}`

const writeContextSchema = `{
  "type": "object",
  "required": ["item_type", "content"],
  "properties": {
    "item_type": {"type": "string", "minLength": 1},
    "item_key": {"type": "string"},
    "content": {"type": "object"},
    "title": {"type": "string"}
  },
  "additionalProperties": false
}`

const listContextSchema = `{
  "type": "object",
  "properties": {
    "tier": {"type": "string", "enum": ["foundation", "working", "ephemeral"]}
  },
  "additionalProperties": false
}`

const listRecipesSchema = `{
  "type": "object",
  "properties": {
    "category": {"type": "string"}
  },
  "additionalProperties": false
}`

const triggerRecipeSchema = `{
  "type": "object",
  "required": ["recipe_slug", "parameters"],
  "properties": {
    "recipe_slug": {"type": "string", "minLength": 1},
    "parameters": {"type": "object"},
    "priority": {"type": "integer", "minimum": 0, "maximum": 10}
  },
  "additionalProperties": false
}`

const webSearchSchema = `{
  "type": "object",
  "required": ["query"],
  "properties": {
    "query": {"type": "string", "minLength": 1}
  },
  "additionalProperties": false
}`

const documentSkillSchema = `{
  "type": "object",
  "required": ["skill_id", "spec"],
  "properties": {
    "skill_id": {"type": "string", "enum": ["pptx", "xlsx", "docx", "pdf"]},
    "spec": {"type": "object"}
  },
  "additionalProperties": false
}`
