package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/pixel-tools-mcp/internal/imaging"
	"github.com/ironsheep/pixel-tools-mcp/internal/pixel"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_info", "pixel_sample").
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

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		log.Printf("Tool %s failed: %v", params.Name, err)
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
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging or pixel function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image Information
	case "image_info":
		return s.handleImageInfo(args)

	// Pixel Sampling
	case "pixel_sample":
		return s.handlePixelSample(args)
	case "pixel_sample_multi":
		return s.handlePixelSampleMulti(args)

	// Color Conversion
	case "pixel_convert":
		return s.handlePixelConvert(args)
	case "pixel_swatch":
		return s.handlePixelSwatch(args)
	case "pixel_formats":
		return s.handlePixelFormats()

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure the error is logged and an empty string is returned.
func mustMarshalJSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("Failed to marshal tool result: %v", err)
		return ""
	}
	return string(b)
}

// === Image Information Handlers ===

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// === Pixel Sampling Handlers ===

type pixelSampleArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handlePixelSample(args json.RawMessage) (interface{}, error) {
	var a pixelSampleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

type pixelSampleMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handlePixelSampleMulti(args json.RawMessage) (interface{}, error) {
	var a pixelSampleMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColorsMulti(img, points)
}

// === Color Conversion Handlers ===

// Alpha is a pointer so an explicit 0 (fully transparent) is not mistaken
// for an omitted argument.
type pixelConvertArgs struct {
	Hex   string   `json:"hex"`
	Alpha *float64 `json:"alpha"`
}

func (a pixelConvertArgs) alpha() float64 {
	if a.Alpha == nil {
		return 1.0
	}
	return *a.Alpha
}

func (s *Server) handlePixelConvert(args json.RawMessage) (interface{}, error) {
	var a pixelConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.ConvertHex(a.Hex, a.alpha())
}

type pixelSwatchArgs struct {
	pixelConvertArgs
	Size int `json:"size"`
}

func (s *Server) handlePixelSwatch(args json.RawMessage) (interface{}, error) {
	var a pixelSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Size == 0 {
		a.Size = 64
	}
	c, err := imaging.ParseColor(a.Hex, a.alpha())
	if err != nil {
		return nil, err
	}
	return imaging.RenderSwatch(c, a.Size)
}

// FormatsResult lists the pixel formats known to the server.
type FormatsResult struct {
	Formats []pixel.FormatInfo `json:"formats"`
}

func (s *Server) handlePixelFormats() (interface{}, error) {
	formats := pixel.Formats()
	infos := make([]pixel.FormatInfo, len(formats))
	for i, f := range formats {
		infos[i] = f.Info()
	}
	return &FormatsResult{Formats: infos}, nil
}
