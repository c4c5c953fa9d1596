package server

import (
	"encoding/json"
	"image"
	"strings"
	"testing"

	"github.com/ironsheep/palette-mcp/internal/imaging"
	"github.com/ironsheep/palette-mcp/internal/palette"
)

// wireSchema is an input schema as a client decodes it from tools/list.
type wireSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]wireSchemaProp `json:"properties"`
	Required   []string                  `json:"required"`
}

type wireSchemaProp struct {
	Type    string      `json:"type"`
	Enum    []string    `json:"enum"`
	Default interface{} `json:"default"`
	Minimum *float64    `json:"minimum"`
	Maximum *float64    `json:"maximum"`
}

// listTools fetches tools/list through Serve and decodes it like a client.
func listTools(t *testing.T) map[string]wireSchema {
	t.Helper()

	responses := serveLines(t, New(), `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	if len(responses) != 1 || responses[0].Error != nil {
		t.Fatalf("tools/list: got %+v", responses)
	}

	raw, err := json.Marshal(responses[0].Result)
	if err != nil {
		t.Fatal(err)
	}
	var result struct {
		Tools []struct {
			Name        string     `json:"name"`
			Description string     `json:"description"`
			InputSchema wireSchema `json:"inputSchema"`
		} `json:"tools"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("failed to decode tools/list: %v", err)
	}

	tools := make(map[string]wireSchema, len(result.Tools))
	for _, tool := range result.Tools {
		if tool.Description == "" {
			t.Errorf("%s: empty description", tool.Name)
		}
		if tool.InputSchema.Type != "object" {
			t.Errorf("%s: schema type %q, want object", tool.Name, tool.InputSchema.Type)
		}
		if _, dup := tools[tool.Name]; dup {
			t.Errorf("%s listed twice", tool.Name)
		}
		tools[tool.Name] = tool.InputSchema
	}
	return tools
}

func TestToolsList_Dispatchable(t *testing.T) {
	s := New()
	tools := listTools(t)

	if len(tools) != len(GetToolDefinitions()) {
		t.Errorf("listed %d tools, defined %d", len(tools), len(GetToolDefinitions()))
	}
	for name := range tools {
		// Arguments are deliberately incomplete; only dispatch is checked.
		_, err := s.executeTool(name, json.RawMessage(`{"path":""}`))
		if err != nil && strings.Contains(err.Error(), "unknown tool") {
			t.Errorf("%s is listed but not dispatched", name)
		}
	}
}

func TestToolsList_Required(t *testing.T) {
	tools := listTools(t)

	tests := []struct {
		tool string
		want []string
	}{
		{"image_load", []string{"path"}},
		{"image_dimensions", []string{"path"}},
		{"image_palette", []string{"path"}},
		{"image_dominant_color", []string{"path"}},
		{"image_palette_swatch", []string{"path"}},
		{"pixels_palette", []string{"pixels_base64"}},
		{"image_cache_evict", nil},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			schema, ok := tools[tt.tool]
			if !ok {
				t.Fatal("tool not listed")
			}
			if strings.Join(schema.Required, ",") != strings.Join(tt.want, ",") {
				t.Errorf("required: got %v, want %v", schema.Required, tt.want)
			}
			for _, r := range schema.Required {
				if _, ok := schema.Properties[r]; !ok {
					t.Errorf("required %q has no property", r)
				}
			}
		})
	}
}

func TestToolsList_Ranges(t *testing.T) {
	checkRange := func(t *testing.T, tool, name string, p wireSchemaProp, lo, hi, def int) {
		t.Helper()
		if p.Minimum == nil || p.Maximum == nil || int(*p.Minimum) != lo || int(*p.Maximum) != hi {
			t.Errorf("%s.%s: range %v-%v, want %d-%d", tool, name, p.Minimum, p.Maximum, lo, hi)
		}
		if d, ok := p.Default.(float64); !ok || int(d) != def {
			t.Errorf("%s.%s: default %v, want %d", tool, name, p.Default, def)
		}
	}

	for tool, schema := range listTools(t) {
		if q, ok := schema.Properties["quality"]; ok {
			checkRange(t, tool, "quality", q, palette.MinQuality, palette.MaxQuality, imaging.DefaultQuality)
		}
		if c, ok := schema.Properties["count"]; ok {
			checkRange(t, tool, "count", c, palette.MinColors, imaging.MaxPaletteColors, imaging.DefaultPaletteCount)
		}
	}
}

func TestToolsList_Enums(t *testing.T) {
	tools := listTools(t)

	format := tools["pixels_palette"].Properties["format"]
	if format.Default != "rgba" || len(format.Enum) != 5 {
		t.Errorf("format: default %v, enum %v", format.Default, format.Enum)
	}
	for _, name := range format.Enum {
		if _, err := palette.ParseColorFormat(name); err != nil {
			t.Errorf("format %q: %v", name, err)
		}
	}

	for _, tool := range []string{"image_palette", "image_dominant_color", "image_palette_swatch"} {
		area := tools[tool].Properties["area"]
		if len(area.Enum) != len(imaging.AreaNames) {
			t.Errorf("%s.area: got %v", tool, area.Enum)
		}
		for _, name := range area.Enum {
			if _, err := imaging.NamedRegion(image.Rect(0, 0, 10, 10), name); err != nil {
				t.Errorf("%s.area %q: %v", tool, name, err)
			}
		}
	}

	if d, ok := tools["image_palette_swatch"].Properties["cell_size"].Default.(float64); !ok || int(d) != imaging.DefaultSwatchCellSize {
		t.Errorf("cell_size default: got %v", tools["image_palette_swatch"].Properties["cell_size"].Default)
	}
}
