// Package server implements the MCP (Model Context Protocol) server for pixel format tools.
//
// This package provides a JSON-RPC 2.0 server that exposes pixel sampling and
// pixel format conversion through the MCP protocol, so MCP clients can read
// exact component values out of images and compare channel layouts.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image Information:
//   - image_info: Load image and report its native pixel layout
//
// Pixel Sampling:
//   - pixel_sample: Get one pixel in every supported format
//   - pixel_sample_multi: Sample multiple labelled points
//
// Color Conversion:
//   - pixel_convert: Convert a hex color into every supported format
//   - pixel_swatch: Render a color next to its luma as PNG
//   - pixel_formats: List the supported pixel formats
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
