package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Information
		{
			Name:        "image_info",
			Description: "Load an image file and return its dimensions, file format, bit depth, and native pixel layout (format, component type, premultiplication).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Pixel Sampling
		{
			Name:        "pixel_sample",
			Description: "Sample the pixel at (x, y) and report it in every supported pixel format: RGB, BGR, GRB, RGBA, ARGB, BGRA, ABGR, Gray and GrayAlpha, at 8-bit, 16-bit and float precision, plus hex and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, 0 = leftmost)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, 0 = topmost)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "pixel_sample_multi",
			Description: "Sample several labelled points in one call. Results are returned in input order.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"points": map[string]interface{}{
						"type":        "array",
						"description": "Points to sample",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
							},
							"required": []string{"x", "y"},
						},
					},
				},
				"required": []string{"path", "points"},
			},
		},

		// Color Conversion
		{
			Name:        "pixel_convert",
			Description: "Convert a hex color (#RGB or #RRGGBB) with optional alpha into every supported pixel format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Color as #RGB or #RRGGBB (the # is optional)",
					},
					"alpha": map[string]interface{}{
						"type":        "number",
						"description": "Opacity from 0 (transparent) to 1 (opaque). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"hex"},
			},
		},
		{
			Name:        "pixel_swatch",
			Description: "Render a PNG swatch showing a hex color next to its grayscale luma. Returns base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Color as #RGB or #RRGGBB (the # is optional)",
					},
					"alpha": map[string]interface{}{
						"type":        "number",
						"description": "Opacity from 0 (transparent) to 1 (opaque). Default 1.0",
						"default":     1.0,
					},
					"size": map[string]interface{}{
						"type":        "integer",
						"description": "Edge of each panel in pixels, 1 to 1024. Default 64",
						"default":     64,
					},
				},
				"required": []string{"hex"},
			},
		},
		{
			Name:        "pixel_formats",
			Description: "List the supported pixel formats with channel count, alpha, grayscale flag and storage layout.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
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
