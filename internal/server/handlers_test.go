package server

import (
	"encoding/json"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/colour-tools-mcp/internal/colour"
	"github.com/ironsheep/colour-tools-mcp/internal/config"
	"github.com/ironsheep/colour-tools-mcp/internal/swatch"
)

// callTool sends a tools/call request through handleRequest.
func callTool(t *testing.T, s *Server, name string, args interface{}) *MCPResponse {
	t.Helper()

	params, err := json.Marshal(map[string]interface{}{
		"name":      name,
		"arguments": args,
	})
	require.NoError(t, err)

	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  params,
	})
	require.NotNil(t, resp)
	return resp
}

// decodeContent unmarshals the JSON text content of a successful response.
func decodeContent(t *testing.T, resp *MCPResponse, v interface{}) {
	t.Helper()

	require.Nil(t, resp.Error)
	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok, "result should be a map")
	content, ok := result["content"].([]map[string]interface{})
	require.True(t, ok, "content should be a list")
	require.Len(t, content, 1)
	assert.Equal(t, "text", content[0]["type"])

	text, _ := content[0]["text"].(string)
	require.NoError(t, json.Unmarshal([]byte(text), v), text)
}

// requireToolError asserts a -32000 failure whose data mentions want.
func requireToolError(t *testing.T, resp *MCPResponse, want string) {
	t.Helper()

	require.NotNil(t, resp.Error, "expected a tool error")
	assert.Equal(t, -32000, resp.Error.Code)
	if want != "" {
		assert.Contains(t, resp.Error.Data, want)
	}
}

func TestHandleToolsCall_Convert(t *testing.T) {
	s := New(nil)

	resp := callTool(t, s, "colour_convert", map[string]interface{}{
		"colour":  "#e27a3f",
		"options": map[string]interface{}{"alpha": 0.7},
	})

	var got colour.Summary
	decodeContent(t, resp, &got)

	assert.Equal(t, "#e27a3f", got.Hex)
	assert.Equal(t, colour.RGB{R: 226, G: 122, B: 63}, got.RGB)
	assert.Equal(t, colour.HSL{H: 22, S: 73.8, L: 56.7}, got.HSL)
	assert.Equal(t, colour.HSV{H: 22, S: 72.1, V: 88.6}, got.HSV)
	assert.Equal(t, 0.7, got.RGBA.A)
	assert.Equal(t, 0.7, got.HSLA.A)
	assert.Equal(t, 0.7, got.HSVA.A)
	assert.False(t, got.IsGrayscale)
	assert.True(t, got.IsColour)
}

func TestHandleToolsCall_ConvertInputs(t *testing.T) {
	s := New(nil)

	tests := []struct {
		name    string
		colour  interface{}
		wantHex string
	}{
		{"hsl", map[string]interface{}{"type": "HSL", "value": []float64{359, 50.2, 59.8}}, "#cc6567"},
		{"hsv", map[string]interface{}{"type": "hsv", "value": []float64{22, 72.1, 88.6}}, "#e27b3f"},
		{"rgb", map[string]interface{}{"type": "RGB", "value": []int{0, 0, 1}}, "#000001"},
		{"named", map[string]interface{}{"name": "teal"}, "#008080"},
		{"malformed hex is black", "#j7za3f", "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := callTool(t, s, "colour_convert", map[string]interface{}{"colour": tt.colour})

			var got colour.Summary
			decodeContent(t, resp, &got)
			assert.Equal(t, tt.wantHex, got.Hex)
			assert.Equal(t, 1.0, got.Alpha)
		})
	}
}

func TestHandleToolsCall_ConvertRejectsArrays(t *testing.T) {
	s := New(nil)

	tests := map[string]map[string]interface{}{
		"array colour":  {"colour": []int{1, 2, 3}},
		"array options": {"colour": "#fff", "options": []float64{0.5}},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			requireToolError(t, callTool(t, s, "colour_convert", args), "invalid argument")
		})
	}
}

func TestHandleToolsCall_StrictMode(t *testing.T) {
	cfg := config.Default()
	cfg.Strict = true
	s := New(cfg)

	resp := callTool(t, s, "colour_convert", map[string]interface{}{"colour": "#j7za3f"})
	requireToolError(t, resp, "malformed hex")

	resp = callTool(t, s, "colour_convert", map[string]interface{}{
		"colour": map[string]interface{}{"type": "RGB", "value": []int{256, 0, 0}},
	})
	requireToolError(t, resp, "invalid argument")
}

func TestHandleToolsCall_MissingColour(t *testing.T) {
	s := New(nil)

	resp := callTool(t, s, "colour_convert", map[string]interface{}{})
	requireToolError(t, resp, "missing required argument")
}

func TestHandleToolsCall_Manipulate(t *testing.T) {
	s := New(nil)

	resp := callTool(t, s, "colour_manipulate", map[string]interface{}{
		"colour":  "#e27a3f",
		"options": map[string]interface{}{"alpha": 0.7},
		"operations": []map[string]interface{}{
			{"op": "lighten", "amount": 100},
			{"op": "alpha", "amount": 0},
		},
	})

	var got ManipulateResult
	decodeContent(t, resp, &got)

	assert.Equal(t, "#ffffff", got.Hex)
	assert.Equal(t, 0.0, got.Alpha, "an explicit zero alpha is kept")
	assert.Equal(t, []string{"lighten", "alpha"}, got.Applied)
}

func TestHandleToolsCall_ManipulateDefaultAmount(t *testing.T) {
	s := New(nil)

	resp := callTool(t, s, "colour_manipulate", map[string]interface{}{
		"colour":     "#e27a3f",
		"operations": []map[string]interface{}{{"op": "darken"}},
	})

	var got ManipulateResult
	decodeContent(t, resp, &got)

	// 56.7 darkened by the default step of 10.
	assert.InDelta(t, 46.7, got.HSL.L, 0.3)
}

func TestHandleToolsCall_ManipulateGrayscale(t *testing.T) {
	s := New(nil)

	resp := callTool(t, s, "colour_manipulate", map[string]interface{}{
		"colour":     "#e27a3f",
		"operations": []map[string]interface{}{{"op": "saturate", "amount": 5}, {"op": "greyscale"}},
	})

	var got ManipulateResult
	decodeContent(t, resp, &got)

	assert.True(t, got.IsGrayscale)
	assert.False(t, got.IsColour)
	assert.Equal(t, got.RGB.R, got.RGB.G)
	assert.Equal(t, got.RGB.G, got.RGB.B)
}

func TestHandleToolsCall_ManipulateErrors(t *testing.T) {
	s := New(nil)

	tests := []struct {
		name string
		ops  []map[string]interface{}
		want string
	}{
		{"unknown op", []map[string]interface{}{{"op": "invert"}}, "unknown operation"},
		{"alpha without amount", []map[string]interface{}{{"op": "lighten"}, {"op": "alpha"}}, "operation 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := callTool(t, s, "colour_manipulate", map[string]interface{}{
				"colour":     "#e27a3f",
				"operations": tt.ops,
			})
			requireToolError(t, resp, tt.want)
		})
	}
}

func TestHandleToolsCall_Swatch(t *testing.T) {
	s := New(nil)

	resp := callTool(t, s, "colour_swatch", map[string]interface{}{
		"colour": "#e27a3f",
		"width":  20,
	})

	var got swatch.Result
	decodeContent(t, resp, &got)

	assert.Equal(t, 20, got.Width)
	assert.Equal(t, 64, got.Height, "height comes from the config default")
	assert.Equal(t, "image/png", got.MimeType)
	assert.Equal(t, "#e27a3f", got.Hex)
	assert.NotEmpty(t, got.ImageBase64)
}

func TestHandleToolsCall_SwatchTooLarge(t *testing.T) {
	s := New(nil)

	resp := callTool(t, s, "colour_swatch", map[string]interface{}{
		"colour": "#e27a3f",
		"width":  swatch.MaxSize + 1,
	})
	requireToolError(t, resp, "exceeds maximum")
}

func TestHandleToolsCall_Scale(t *testing.T) {
	s := New(nil)

	resp := callTool(t, s, "colour_scale", map[string]interface{}{
		"value":        127.5,
		"input_range":  []float64{0, 255},
		"output_range": []float64{0, 1},
	})

	var got ScaleResult
	decodeContent(t, resp, &got)
	assert.Equal(t, 0.5, got.Value)
}

func TestHandleToolsCall_ScaleErrors(t *testing.T) {
	s := New(nil)

	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"degenerate range", map[string]interface{}{"value": 1, "input_range": []float64{2, 2}, "output_range": []float64{0, 1}}, "invalid range"},
		{"short range", map[string]interface{}{"value": 1, "input_range": []float64{0}, "output_range": []float64{0, 1}}, "2 numbers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireToolError(t, callTool(t, s, "colour_scale", tt.args), tt.want)
		})
	}
}

// writeTestImage saves a 4x4 PNG whose top row is orange (#e27a3f) and the
// rest white, returning its path.
func writeTestImage(t *testing.T) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := color.NRGBA{255, 255, 255, 255}
			if y == 0 {
				c = color.NRGBA{226, 122, 63, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	require.NoError(t, imaging.Save(img, path))
	return path
}

func TestHandleToolsCall_Sample(t *testing.T) {
	s := New(nil)
	path := writeTestImage(t)

	resp := callTool(t, s, "colour_sample", map[string]interface{}{
		"image_path": path,
		"points": []map[string]interface{}{
			{"x": 1, "y": 0, "label": "accent"},
			{"x": 2, "y": 3},
		},
	})

	var got SampleResult
	decodeContent(t, resp, &got)

	require.Len(t, got.Samples, 2)
	assert.Equal(t, "accent", got.Samples[0].Label)
	assert.Equal(t, "#e27a3f", got.Samples[0].Colour.Hex)
	assert.Equal(t, "#ffffff", got.Samples[1].Colour.Hex)
	assert.True(t, got.Samples[1].Colour.IsGrayscale)
	assert.Equal(t, 1, s.images.Len())
}

func TestHandleToolsCall_SampleErrors(t *testing.T) {
	s := New(nil)
	path := writeTestImage(t)
	origin := []map[string]interface{}{{"x": 0, "y": 0}}

	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"missing path", map[string]interface{}{"points": origin}},
		{"no points", map[string]interface{}{"image_path": path}},
		{"missing file", map[string]interface{}{"image_path": filepath.Join(t.TempDir(), "nope.png"), "points": origin}},
		{"out of bounds", map[string]interface{}{"image_path": path, "points": []map[string]interface{}{{"x": 4, "y": 0}}}},
		{"radius too large", map[string]interface{}{"image_path": path, "points": origin, "radius": 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireToolError(t, callTool(t, s, "colour_sample", tt.args), "")
		})
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New(nil)

	resp := s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Params:  json.RawMessage(`{invalid`),
	})
	require.NotNil(t, resp.Error)
	assert.Equal(t, -32602, resp.Error.Code)
}

func TestExecuteTool_UnknownTool(t *testing.T) {
	s := New(nil)

	_, err := s.executeTool("colour_invert", json.RawMessage(`{}`))
	assert.EqualError(t, err, "unknown tool: colour_invert")
}

func TestExecuteTool_InvalidJSON(t *testing.T) {
	s := New(nil)

	for _, tool := range GetToolDefinitions() {
		_, err := s.executeTool(tool.Name, json.RawMessage(`{invalid`))
		assert.Error(t, err, tool.Name)
	}
}
