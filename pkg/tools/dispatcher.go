package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cobbleworks/foundry/pkg/agent"
)

// Compile-time checks that Dispatcher serves the runtime's contracts.
var (
	_ agent.ToolExecutor  = (*Dispatcher)(nil)
	_ agent.ReviewSignals = (*Dispatcher)(nil)
)

// Dispatcher routes tool calls from one run to their handlers. Created
// per ticket; the substrate client it receives must already be scoped to
// the run's token.
type Dispatcher struct {
	tc       ToolContext
	handlers map[string]Handler
	emitter  *Emitter
}

// NewDispatcher wires the tool handlers for one run. recipes, schemas, and
// admitter may be nil: nil catalogs fall back to the built-ins, and a nil
// admitter makes trigger_recipe report itself unavailable.
func NewDispatcher(api SubstrateAPI, recipes *RecipeCatalog, schemas *SchemaRegistry, admitter WorkAdmitter, tc ToolContext) *Dispatcher {
	if recipes == nil {
		recipes = BuiltinRecipes()
	}
	if schemas == nil {
		schemas = BuiltinContextSchemas()
	}
	if tc.Emitter == nil {
		tc.Emitter = NewEmitter()
	}

	return &Dispatcher{
		tc:      tc,
		emitter: tc.Emitter,
		handlers: map[string]Handler{
			ToolEmitWorkOutput: &emitOutputHandler{api: api},
			ToolReadContext:    &readContextHandler{api: api},
			ToolWriteContext:   &writeContextHandler{api: api, schemas: schemas},
			ToolListContext:    &listContextHandler{api: api, schemas: schemas},
			ToolListRecipes:    &listRecipesHandler{recipes: recipes},
			ToolTriggerRecipe:  &triggerRecipeHandler{recipes: recipes, admitter: admitter},
			ToolWebSearch:      &webSearchHandler{},
			ToolDocumentSkill:  &documentSkillHandler{api: api},
		},
	}
}

// Execute validates and runs one tool call. Failures of any kind come back
// as error results for the LLM to read; the error return is reserved for a
// broken dispatcher and stays nil here.
func (d *Dispatcher) Execute(ctx context.Context, call agent.ToolCall) (*agent.ToolResult, error) {
	spec, ok := catalogSpecs()[call.Name]
	if !ok {
		return toolError(call, "unknown tool %q; available tools: %s",
			call.Name, strings.Join(catalogOrder(), ", ")), nil
	}

	if err := spec.validateArgs(call.Arguments); err != nil {
		return toolError(call, "invalid arguments for %s: %s", call.Name, err), nil
	}

	raw := call.Arguments
	if strings.TrimSpace(raw) == "" {
		raw = "{}"
	}

	handler := d.handlers[call.Name]
	res, err := handler.Invoke(ctx, json.RawMessage(raw), d.tc)
	if err != nil {
		return toolError(call, "tool %s failed: %s", call.Name, err), nil
	}

	return &agent.ToolResult{
		CallID:  call.ID,
		Name:    call.Name,
		Content: res.Content,
		IsError: res.IsError,
	}, nil
}

// ListTools returns the catalog declarations in stable order.
func (d *Dispatcher) ListTools(ctx context.Context) ([]agent.ToolDefinition, error) {
	specs := catalogSpecs()
	defs := make([]agent.ToolDefinition, 0, len(specs))
	for _, name := range catalogOrder() {
		spec := specs[name]
		defs = append(defs, agent.ToolDefinition{
			Name:        spec.name,
			Description: spec.description,
			InputSchema: spec.schema,
		})
	}
	return defs, nil
}

// Outputs returns the outputs persisted so far during this run.
func (d *Dispatcher) Outputs() []EmittedOutput {
	return d.emitter.Outputs()
}

// MinConfidence implements agent.ReviewSignals.
func (d *Dispatcher) MinConfidence() (float64, bool) {
	return d.emitter.MinConfidence()
}

// ReviewRequested implements agent.ReviewSignals.
func (d *Dispatcher) ReviewRequested() bool {
	return d.emitter.ReviewRequested()
}

func toolError(call agent.ToolCall, format string, args ...any) *agent.ToolResult {
	return &agent.ToolResult{
		CallID:  call.ID,
		Name:    call.Name,
		Content: fmt.Sprintf(format, args...),
		IsError: true,
	}
}
