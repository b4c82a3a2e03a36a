package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/omnimsg/unipile-mcp/internal/registry"
)

// BuildMCPTool converts a registry tool into an mcp.Tool with the
// corresponding JSON schema. Hidden parameters are resolved internally and
// never exposed.
func BuildMCPTool(t registry.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.Description)}
	for _, p := range t.Params {
		if p.Hidden {
			continue
		}
		opts = append(opts, buildParamOption(p))
	}
	return mcp.NewTool(t.Name, opts...)
}

// buildParamOption maps a registry parameter to the appropriate mcp-go
// tool option.
func buildParamOption(p registry.Param) mcp.ToolOption {
	var opts []mcp.PropertyOption
	if p.Description != "" {
		opts = append(opts, mcp.Description(p.Description))
	}
	// Parameters substituted from configuration are optional at the MCP
	// boundary even when the remote API requires them.
	if p.Required && p.DefaultFrom == "" {
		opts = append(opts, mcp.Required())
	}

	switch p.Type {
	case registry.TypeNumber:
		if def, ok := p.Default.(float64); ok {
			opts = append(opts, mcp.DefaultNumber(def))
		}
		if p.Max > 0 {
			opts = append(opts, mcp.Max(p.Max))
		}
		return mcp.WithNumber(p.Name, opts...)
	case registry.TypeBoolean:
		if def, ok := p.Default.(bool); ok {
			opts = append(opts, mcp.DefaultBool(def))
		}
		return mcp.WithBoolean(p.Name, opts...)
	case registry.TypeArray:
		opts = append([]mcp.PropertyOption{mcp.WithStringItems()}, opts...)
		return mcp.WithArray(p.Name, opts...)
	case registry.TypeObject:
		return mcp.WithObject(p.Name, opts...)
	default:
		if len(p.Enum) > 0 {
			opts = append(opts, mcp.Enum(p.Enum...))
		}
		if def, ok := p.Default.(string); ok {
			opts = append(opts, mcp.DefaultString(def))
		}
		if p.MaxLen > 0 {
			opts = append(opts, mcp.MaxLength(p.MaxLen))
		}
		return mcp.WithString(p.Name, opts...)
	}
}
