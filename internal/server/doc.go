// Package server implements the MCP (Model Context Protocol) server for colour tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the colour package's
// conversions and manipulations through the MCP protocol, so that MCP-compatible
// clients can convert and adjust colours exactly instead of estimating them.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//   - Notifications (methods under notifications/) are never answered
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - colour_convert: Every representation of one colour
//   - colour_manipulate: Apply lighten/darken/saturate/desaturate/grayscale/alpha in order
//   - colour_swatch: Render a colour as a base64 PNG
//   - colour_scale: Linear range mapping
//   - colour_sample: Read colours from pixels of an image file (decoded images are cached)
//
// Colours are passed as a hex string or as {"type": "HSL", "value": [h, s, l]}.
// A JSON array in place of the colour or the options object is rejected.
//
// # Strict Mode
//
// With strict mode enabled in the server config, malformed hex strings and
// out-of-range channels fail the tool call instead of decoding to black.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure), -32700 (unparseable line),
//     -32602 (bad tools/call params) or -32601 (unknown method)
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
