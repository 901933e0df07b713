package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Recipe is a named work template: which agent runs it, what context it
// expects, and the parameter schema callers must satisfy.
type Recipe struct {
	Slug                 string
	Title                string
	Category             string
	AgentKind            string
	WorkMode             string
	TaskPrompt           string
	RequiredContextTypes []string
	ParameterSchema      string
	Active               bool

	compiled   *jsonschema.Schema
	paramNames []string
}

// ValidateParameters checks params against the recipe's schema.
func (r *Recipe) ValidateParameters(params map[string]any) error {
	if r.compiled == nil {
		return nil
	}
	payload, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encode parameters: %w", err)
	}
	var decoded any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return fmt.Errorf("decode parameters: %w", err)
	}
	return r.compiled.Validate(decoded)
}

// ParameterNames returns the schema's property names, sorted.
func (r *Recipe) ParameterNames() []string {
	out := make([]string, len(r.paramNames))
	copy(out, r.paramNames)
	return out
}

// RecipeCatalog holds the recipes a project can trigger.
type RecipeCatalog struct {
	bySlug map[string]*Recipe
	order  []string
}

// NewRecipeCatalog compiles the given recipes into a catalog.
func NewRecipeCatalog(recipes []Recipe) (*RecipeCatalog, error) {
	c := &RecipeCatalog{bySlug: make(map[string]*Recipe, len(recipes))}
	for i := range recipes {
		r := recipes[i]
		if r.ParameterSchema != "" {
			compiled, err := jsonschema.CompileString("recipe/"+r.Slug+".json", r.ParameterSchema)
			if err != nil {
				return nil, fmt.Errorf("recipe %s: %w", r.Slug, err)
			}
			r.compiled = compiled
			r.paramNames = schemaPropertyNames(r.ParameterSchema)
		}
		c.bySlug[r.Slug] = &r
		c.order = append(c.order, r.Slug)
	}
	return c, nil
}

// Lookup returns a recipe by slug, active or not.
func (c *RecipeCatalog) Lookup(slug string) (*Recipe, bool) {
	r, ok := c.bySlug[slug]
	return r, ok
}

// Active returns active recipes in declaration order, optionally filtered
// by category.
func (c *RecipeCatalog) Active(category string) []*Recipe {
	var out []*Recipe
	for _, slug := range c.order {
		r := c.bySlug[slug]
		if !r.Active {
			continue
		}
		if category != "" && r.Category != category {
			continue
		}
		out = append(out, r)
	}
	return out
}

func schemaPropertyNames(schema string) []string {
	var doc struct {
		Properties map[string]json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal([]byte(schema), &doc); err != nil {
		return nil
	}
	names := make([]string, 0, len(doc.Properties))
	for name := range doc.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	builtinRecipeCatalog *RecipeCatalog
	builtinRecipesOnce   sync.Once
)

// BuiltinRecipes returns the built-in recipe catalog (thread-safe,
// lazy-initialized).
func BuiltinRecipes() *RecipeCatalog {
	builtinRecipesOnce.Do(func() {
		c, err := NewRecipeCatalog(builtinRecipes())
		if err != nil {
			panic(err)
		}
		builtinRecipeCatalog = c
	})
	return builtinRecipeCatalog
}

func builtinRecipes() []Recipe {
	return []Recipe{
		{
			Slug:       "research_deep_dive",
			Title:      "Deep-dive research investigation",
			Category:   "research",
			AgentKind:  "research",
			WorkMode:   "deep_dive",
			TaskPrompt: "Run a deep-dive research investigation on the requested topic, grounded in the project's problem and customer context. Emit findings and at least one recommendation.",
			RequiredContextTypes: []string{"problem", "customer"},
			ParameterSchema: `{
			  "type": "object",
			  "required": ["topic"],
			  "properties": {
			    "topic": {"type": "string", "minLength": 1},
			    "depth": {"type": "string", "enum": ["quick", "standard", "exhaustive"]}
			  },
			  "additionalProperties": false
			}`,
			Active: true,
		},
		{
			Slug:       "competitor_scan",
			Title:      "Competitor positioning scan",
			Category:   "research",
			AgentKind:  "research",
			WorkMode:   "competitor_scan",
			TaskPrompt: "Profile the named competitor against the project's offering: positioning, strengths, weaknesses, and implications. Write a competitor context item and emit findings.",
			RequiredContextTypes: []string{"offering"},
			ParameterSchema: `{
			  "type": "object",
			  "required": ["competitor_name"],
			  "properties": {
			    "competitor_name": {"type": "string", "minLength": 1},
			    "focus": {"type": "string"}
			  },
			  "additionalProperties": false
			}`,
			Active: true,
		},
		{
			Slug:       "content_social_batch",
			Title:      "Social post batch",
			Category:   "content",
			AgentKind:  "content",
			WorkMode:   "social_batch",
			TaskPrompt: "Draft a batch of social posts for the requested platform in the project's brand voice, following the channel strategy. Emit each post as a separate draft_content output.",
			RequiredContextTypes: []string{"brand", "channel_strategy"},
			ParameterSchema: `{
			  "type": "object",
			  "required": ["platform"],
			  "properties": {
			    "platform": {"type": "string", "minLength": 1},
			    "post_count": {"type": "integer", "minimum": 1, "maximum": 10},
			    "topic": {"type": "string"}
			  },
			  "additionalProperties": false
			}`,
			Active: true,
		},
		{
			Slug:       "weekly_digest",
			Title:      "Weekly progress digest",
			Category:   "reporting",
			AgentKind:  "reporting",
			WorkMode:   "status_report",
			TaskPrompt: "Summarize the period's approved outputs and open questions into a progress digest. Emit it as report_section outputs.",
			RequiredContextTypes: []string{"problem"},
			ParameterSchema: `{
			  "type": "object",
			  "properties": {
			    "period": {"type": "string", "enum": ["week", "month"]}
			  },
			  "additionalProperties": false
			}`,
			Active: true,
		},
		{
			// Kept registered so the slug stays reserved while the
			// campaign planner is offline.
			Slug:       "campaign_plan",
			Title:      "Campaign plan",
			Category:   "content",
			AgentKind:  "content",
			WorkMode:   "campaign_plan",
			TaskPrompt: "Plan a multi-channel campaign.",
			Active:     false,
		},
	}
}

// AdmitWorkInput is what trigger_recipe hands the admitting service.
type AdmitWorkInput struct {
	WorkspaceID    string
	BasketID       string
	ProjectID      string
	UserID         string
	AgentKind      string
	WorkMode       string
	Payload        map[string]any
	Priority       int
	ParentTicketID string
}

// WorkAdmitter admits recipe-triggered work through the quota gate and the
// request recorder. Errors are surfaced to the LLM verbatim, so messages
// must be self-explanatory (quota exhausted, basket archived, and so on).
type WorkAdmitter interface {
	AdmitWork(ctx context.Context, in AdmitWorkInput) (ticketID string, err error)
}

type listRecipesHandler struct {
	recipes *RecipeCatalog
}

type listRecipesArgs struct {
	Category string `json:"category"`
}

func (h *listRecipesHandler) Invoke(ctx context.Context, args json.RawMessage, tc ToolContext) (*Result, error) {
	var in listRecipesArgs
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, fmt.Errorf("decode arguments: %w", err)
	}

	type recipeView struct {
		Slug                 string   `json:"slug"`
		Title                string   `json:"title"`
		Category             string   `json:"category"`
		AgentKind            string   `json:"agent_kind"`
		RequiredContextTypes []string `json:"required_context_types"`
		Parameters           []string `json:"parameters"`
	}

	active := h.recipes.Active(in.Category)
	views := make([]recipeView, 0, len(active))
	for _, r := range active {
		views = append(views, recipeView{
			Slug:                 r.Slug,
			Title:                r.Title,
			Category:             r.Category,
			AgentKind:            r.AgentKind,
			RequiredContextTypes: r.RequiredContextTypes,
			Parameters:           r.ParameterNames(),
		})
	}
	return jsonResult(map[string]any{"recipes": views})
}

type triggerRecipeHandler struct {
	recipes  *RecipeCatalog
	admitter WorkAdmitter
}

type triggerRecipeArgs struct {
	RecipeSlug string         `json:"recipe_slug"`
	Parameters map[string]any `json:"parameters"`
	Priority   int            `json:"priority"`
}

func (h *triggerRecipeHandler) Invoke(ctx context.Context, args json.RawMessage, tc ToolContext) (*Result, error) {
	var in triggerRecipeArgs
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, fmt.Errorf("decode arguments: %w", err)
	}

	recipe, ok := h.recipes.Lookup(in.RecipeSlug)
	if !ok || !recipe.Active {
		return errorResult("unknown recipe %q; call list_recipes for the available set", in.RecipeSlug), nil
	}
	if err := recipe.ValidateParameters(in.Parameters); err != nil {
		return errorResult("invalid parameters for recipe %q: %s", in.RecipeSlug, err), nil
	}
	if h.admitter == nil {
		return errorResult("recipe triggering is not available in this run"), nil
	}

	ticketID, err := h.admitter.AdmitWork(ctx, AdmitWorkInput{
		WorkspaceID: tc.WorkspaceID,
		BasketID:    tc.BasketID,
		ProjectID:   tc.ProjectID,
		UserID:      tc.UserID,
		AgentKind:   recipe.AgentKind,
		WorkMode:    recipe.WorkMode,
		Payload: map[string]any{
			"task":        recipe.TaskPrompt,
			"recipe_slug": recipe.Slug,
			"parameters":  in.Parameters,
		},
		Priority:       in.Priority,
		ParentTicketID: tc.TicketID,
	})
	if err != nil {
		return errorResult("could not queue recipe %q: %s", in.RecipeSlug, err), nil
	}

	return jsonResult(map[string]any{
		"work_ticket_id": ticketID,
		"status":         "pending",
	})
}
