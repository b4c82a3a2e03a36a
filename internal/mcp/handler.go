package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/omnimsg/unipile-mcp/internal/common"
	"github.com/omnimsg/unipile-mcp/internal/config"
	"github.com/omnimsg/unipile-mcp/internal/registry"
	"github.com/omnimsg/unipile-mcp/internal/unipile"
)

// Dispatcher routes tool calls by name: registry lookup, argument
// resolution, the Unipile API call, and response translation. All failures
// come back as IsError tool results so the MCP session stays healthy.
type Dispatcher struct {
	client *unipile.Client
	tools  map[string]registry.Tool
	cfg    *config.UnipileConfig
	logger *common.Logger
}

// NewDispatcher builds a dispatcher over the given tool table.
func NewDispatcher(client *unipile.Client, tools []registry.Tool, cfg *config.UnipileConfig, logger *common.Logger) *Dispatcher {
	return &Dispatcher{
		client: client,
		tools:  registry.Index(tools),
		cfg:    cfg,
		logger: logger,
	}
}

// Call dispatches one tool call by name. A name with no registry entry is
// an unknown_tool error; nothing else runs for it.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]interface{}) *mcp.CallToolResult {
	log := d.logger.WithCorrelationId(uuid.NewString())
	start := time.Now()

	t, ok := d.tools[name]
	if !ok {
		log.Debug().
			Str("tool", name).
			Msg("tool call rejected: no such tool")
		return errUnknownTool(name).Result()
	}

	resolved, terr := Resolve(t, args, d.cfg)
	if terr != nil {
		log.Debug().
			Str("tool", name).
			Str("error", string(terr.Kind)).
			Msg("tool call rejected before dispatch")
		return terr.Result()
	}

	resp, err := d.client.Do(ctx, resolved.Method, resolved.Path, resolved.Query, resolved.Body)
	if err != nil {
		log.Warn().
			Str("tool", name).
			Err(err).
			Msg("tool call failed in transport")
		return errRemoteUnavailable(0, err.Error()).Result()
	}

	log.Debug().
		Str("tool", name).
		Int("status", resp.StatusCode).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("tool call completed")

	return translate(resolved, resp)
}

// Handler adapts one named dispatch into an mcp-go tool handler.
func (d *Dispatcher) Handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return d.Call(ctx, name, r.GetArguments()), nil
	}
}

// translate maps an HTTP response to an MCP tool result.
func translate(req *ResolvedRequest, resp *unipile.Response) *mcp.CallToolResult {
	switch {
	case resp.StatusCode >= 500:
		return errRemoteUnavailable(resp.StatusCode, truncateDetail(resp.Body)).Result()
	case resp.StatusCode >= 400:
		return errRemoteRejected(resp.StatusCode, resp.Body).Result()
	}

	if req.Binary || !resp.IsJSON() {
		return binaryResult(resp)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(resp.Body))},
	}
}

// binaryResult wraps non-JSON payloads (attachments, pictures, resumes)
// in a JSON envelope with the bytes base64-encoded.
func binaryResult(resp *unipile.Response) *mcp.CallToolResult {
	envelope := map[string]interface{}{
		"content_type": resp.ContentType,
		"size_bytes":   len(resp.Body),
		"data_base64":  base64.StdEncoding.EncodeToString(resp.Body),
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		return errRemoteUnavailable(0, "failed to encode binary response").Result()
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(data))},
	}
}
