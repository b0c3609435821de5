package server

import "github.com/ironsheep/colour-tools-mcp/internal/sample"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colourProperty describes the shared "colour" argument: a hex string or a
// {type, value} / {name} object.
func colourProperty() map[string]interface{} {
	return map[string]interface{}{
		"description": "Colour as a hex string (\"#e27a3f\", \"a3f\"), an object {\"type\": \"RGB\"|\"HSL\"|\"HSV\", \"value\": [n, n, n]}, or an object {\"name\": \"teal\"}",
		"oneOf": []interface{}{
			map[string]interface{}{"type": "string"},
			map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"type": map[string]interface{}{
						"type":        "string",
						"description": "Colour model (case-insensitive): RGB, HSL or HSV",
					},
					"value": map[string]interface{}{
						"type":     "array",
						"items":    map[string]interface{}{"type": "number"},
						"minItems": 3,
						"maxItems": 3,
					},
					"name": map[string]interface{}{
						"type":        "string",
						"description": "CSS colour keyword",
					},
				},
			},
		},
	}
}

func optionsProperty() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"alpha": map[string]interface{}{
				"type":        "number",
				"description": "Alpha from 0 (transparent) to 1 (opaque). Default 1",
			},
		},
		"description": "Optional construction options",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "colour_convert",
			Description: "Convert a colour to Hex, RGB, HSL and HSV (with and without alpha) and report whether it is grayscale.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colour":  colourProperty(),
					"options": optionsProperty(),
				},
				"required": []string{"colour"},
			},
		},
		{
			Name:        "colour_manipulate",
			Description: "Apply a chain of tone operations (lighten, darken, saturate, desaturate, grayscale, alpha) to a colour and return the result in every format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colour":  colourProperty(),
					"options": optionsProperty(),
					"operations": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"op": map[string]interface{}{
									"type": "string",
									"enum": []string{"lighten", "darken", "saturate", "desaturate", "grayscale", "alpha"},
								},
								"amount": map[string]interface{}{
									"type":        "number",
									"description": "Percentage points to adjust by (default 10), or the new alpha for op=alpha",
								},
							},
							"required": []string{"op"},
						},
						"description": "Operations applied in order",
					},
				},
				"required": []string{"colour", "operations"},
			},
		},
		{
			Name:        "colour_swatch",
			Description: "Render a colour as a PNG swatch and return it base64-encoded. Translucent colours are shown over a checkerboard.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colour":  colourProperty(),
					"options": optionsProperty(),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch width in pixels. Default from server config (64)",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch height in pixels. Default from server config (64)",
					},
				},
				"required": []string{"colour"},
			},
		},
		{
			Name:        "colour_scale",
			Description: "Linearly map a number from one range onto another, e.g. 128 in [0,255] onto [0,1].",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"value": map[string]interface{}{
						"type":        "number",
						"description": "Value to scale",
					},
					"input_range": map[string]interface{}{
						"type":     "array",
						"items":    map[string]interface{}{"type": "number"},
						"minItems": 2,
						"maxItems": 2,
					},
					"output_range": map[string]interface{}{
						"type":     "array",
						"items":    map[string]interface{}{"type": "number"},
						"minItems": 2,
						"maxItems": 2,
					},
				},
				"required": []string{"value", "input_range", "output_range"},
			},
		},
		{
			Name:        "colour_sample",
			Description: "Read colours from an image file at one or more pixel coordinates. Each sample is returned in every representation, like colour_convert.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image_path": map[string]interface{}{
						"type":        "string",
						"description": "Path to a PNG, JPEG, GIF, TIFF or BMP file",
					},
					"points": map[string]interface{}{
						"type":        "array",
						"description": "Pixels to sample, 0-based from the top-left",
						"maxItems":    sample.MaxPoints,
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
					},
					"radius": map[string]interface{}{
						"type":        "integer",
						"description": "Average a square patch of this radius around each point (default: 0, single pixel)",
						"minimum":     0,
						"maximum":     sample.MaxRadius,
					},
				},
				"required": []string{"image_path", "points"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
