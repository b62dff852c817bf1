package hostbridge

import "github.com/google/jsonschema-go/jsonschema"

const protocolVersion = "2025-06-01"

// MethodDescriptor documents one bridge method for hosts.
type MethodDescriptor struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema,omitempty"`
}

// methodDescriptors lists every callable method. Hosts discover the
// surface through methods/list.
var methodDescriptors = []MethodDescriptor{
	{
		Name:        "render",
		Description: "Assemble the heatmap render payload for a view.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"view": {
					Type: "string",
					Enum: []interface{}{"deckbrowser", "overview", "stats"},
				},
				"limhist": {
					Type:        "integer",
					Description: "History limit in days, 0 for unlimited",
				},
				"limfcst": {
					Type:        "integer",
					Description: "Forecast limit in days, 0 for unlimited",
				},
			},
			Required: []string{"view"},
		},
	},
	{
		Name:        "legend",
		Description: "Compute the dynamic stats and heatmap legends for a daily average.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"average": {Type: "number"},
			},
			Required: []string{"average"},
		},
	},
	{
		Name:        "performance/current",
		Description: "Return the most recent whole-collection performance sample, or null.",
	},
}
