package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/colour-tools-mcp/internal/colour"
	"github.com/ironsheep/colour-tools-mcp/internal/sample"
	"github.com/ironsheep/colour-tools-mcp/internal/swatch"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "colour_convert", "colour_swatch").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	if s.cfg.Debug() {
		log.Printf("tools/call %s %s", params.Name, params.Arguments)
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.cfg.Debug() {
			log.Printf("tools/call %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Builds the colour, honouring the server's strict setting
//  3. Applies default values for optional parameters
//  4. Calls the appropriate colour/swatch function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "colour_convert":
		return s.handleColourConvert(args)
	case "colour_manipulate":
		return s.handleColourManipulate(args)
	case "colour_swatch":
		return s.handleColourSwatch(args)
	case "colour_scale":
		return s.handleColourScale(args)
	case "colour_sample":
		return s.handleColourSample(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response. An empty data string is
// left out of the encoded error.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{Code: code, Message: message}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// colourArgs is embedded by every tool that takes a colour.
type colourArgs struct {
	Colour  json.RawMessage `json:"colour"`
	Options json.RawMessage `json:"options,omitempty"`
}

func (s *Server) decodeColour(a colourArgs) (*colour.Colour, error) {
	if len(a.Colour) == 0 {
		return nil, fmt.Errorf("missing required argument: colour")
	}
	return colour.Decode(a.Colour, a.Options, colour.WithStrict(s.cfg.Strict))
}

func (s *Server) handleColourConvert(args json.RawMessage) (interface{}, error) {
	var a colourArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := s.decodeColour(a)
	if err != nil {
		return nil, err
	}
	return c.Summary(), nil
}

type operation struct {
	Op     string   `json:"op"`
	Amount *float64 `json:"amount,omitempty"`
}

type colourManipulateArgs struct {
	colourArgs
	Operations []operation `json:"operations"`
}

// ManipulateResult is the colour after all operations plus the names of the
// operations that were applied.
type ManipulateResult struct {
	colour.Summary
	Applied []string `json:"applied"`
}

func (s *Server) handleColourManipulate(args json.RawMessage) (interface{}, error) {
	var a colourManipulateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := s.decodeColour(a.colourArgs)
	if err != nil {
		return nil, err
	}

	applied := make([]string, 0, len(a.Operations))
	for i, op := range a.Operations {
		if err := applyOperation(c, op); err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		applied = append(applied, op.Op)
	}

	return &ManipulateResult{Summary: c.Summary(), Applied: applied}, nil
}

// applyOperation mutates c. A missing amount uses colour.DefaultAmount; an
// explicit 0 is honoured.
func applyOperation(c *colour.Colour, op operation) error {
	var amount []float64
	if op.Amount != nil {
		amount = []float64{*op.Amount}
	}

	switch op.Op {
	case "lighten":
		c.Lighten(amount...)
	case "darken":
		c.Darken(amount...)
	case "saturate":
		c.Saturate(amount...)
	case "desaturate":
		c.Desaturate(amount...)
	case "grayscale", "greyscale":
		c.Grayscale()
	case "alpha":
		if op.Amount == nil {
			return fmt.Errorf("alpha requires an amount")
		}
		c.SetAlpha(*op.Amount)
	default:
		return fmt.Errorf("unknown operation: %q", op.Op)
	}
	return nil
}

type colourSwatchArgs struct {
	colourArgs
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleColourSwatch(args json.RawMessage) (interface{}, error) {
	var a colourSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = s.cfg.Swatch.Width
	}
	if a.Height == 0 {
		a.Height = s.cfg.Swatch.Height
	}
	c, err := s.decodeColour(a.colourArgs)
	if err != nil {
		return nil, err
	}
	return swatch.Render(c, a.Width, a.Height, s.cfg.Swatch.Cell)
}

type colourScaleArgs struct {
	Value       float64   `json:"value"`
	InputRange  []float64 `json:"input_range"`
	OutputRange []float64 `json:"output_range"`
}

// ScaleResult is the output of colour_scale.
type ScaleResult struct {
	Value float64 `json:"value"`
}

func (s *Server) handleColourScale(args json.RawMessage) (interface{}, error) {
	var a colourScaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if len(a.InputRange) != 2 || len(a.OutputRange) != 2 {
		return nil, fmt.Errorf("input_range and output_range must each have 2 numbers")
	}

	v, err := colour.ScaleChecked(a.Value,
		colour.Range{Lo: a.InputRange[0], Hi: a.InputRange[1]},
		colour.Range{Lo: a.OutputRange[0], Hi: a.OutputRange[1]})
	if err != nil {
		return nil, err
	}
	return &ScaleResult{Value: v}, nil
}

type colourSampleArgs struct {
	ImagePath string         `json:"image_path"`
	Points    []sample.Point `json:"points"`
	Radius    int            `json:"radius"`
}

// SampleResult lists sampled colours in request order.
type SampleResult struct {
	Samples []sample.Labeled `json:"samples"`
}

func (s *Server) handleColourSample(args json.RawMessage) (interface{}, error) {
	var a colourSampleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.ImagePath == "" {
		return nil, fmt.Errorf("missing required argument: image_path")
	}
	if len(a.Points) == 0 {
		return nil, fmt.Errorf("at least one point is required")
	}

	img, err := s.images.Load(a.ImagePath)
	if err != nil {
		return nil, err
	}
	samples, err := sample.Points(img, a.Points, a.Radius)
	if err != nil {
		return nil, err
	}
	return &SampleResult{Samples: samples}, nil
}
