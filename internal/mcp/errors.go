package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ErrorKind classifies tool call failures so agents can react sensibly:
// fix the arguments, give up, or retry.
type ErrorKind string

const (
	KindUnknownTool       ErrorKind = "unknown_tool"
	KindMissingParameter  ErrorKind = "missing_parameter"
	KindInvalidParameter  ErrorKind = "invalid_parameter"
	KindUnknownParameter  ErrorKind = "unknown_parameter"
	KindRemoteRejected    ErrorKind = "remote_rejected"
	KindRemoteUnavailable ErrorKind = "remote_unavailable"
)

// ToolError is a structured tool failure. It is always surfaced to the MCP
// caller as an IsError result, never as a protocol-level Go error.
type ToolError struct {
	Kind      ErrorKind `json:"error"`
	Message   string    `json:"message"`
	Status    int       `json:"status,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	Retryable bool      `json:"retryable,omitempty"`
}

// Result renders the error as an MCP tool result with IsError set.
func (e *ToolError) Result() *mcp.CallToolResult {
	data, err := json.Marshal(e)
	if err != nil {
		data = []byte(fmt.Sprintf(`{"error":%q,"message":%q}`, e.Kind, e.Message))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(data))},
		IsError: true,
	}
}

func errUnknownTool(name string) *ToolError {
	return &ToolError{
		Kind:    KindUnknownTool,
		Message: fmt.Sprintf("no tool named %q is registered", name),
	}
}

func errMissingParameter(tool, param string) *ToolError {
	return &ToolError{
		Kind:    KindMissingParameter,
		Message: fmt.Sprintf("tool %q requires parameter %q", tool, param),
	}
}

func errInvalidParameter(tool, param, reason string) *ToolError {
	return &ToolError{
		Kind:    KindInvalidParameter,
		Message: fmt.Sprintf("tool %q parameter %q: %s", tool, param, reason),
	}
}

func errUnknownParameter(tool, param string) *ToolError {
	return &ToolError{
		Kind:    KindUnknownParameter,
		Message: fmt.Sprintf("tool %q does not accept parameter %q", tool, param),
	}
}

func errRemoteRejected(status int, body []byte) *ToolError {
	return &ToolError{
		Kind:    KindRemoteRejected,
		Message: fmt.Sprintf("remote API rejected the request with status %d", status),
		Status:  status,
		Detail:  truncateDetail(body),
	}
}

func errRemoteUnavailable(status int, detail string) *ToolError {
	return &ToolError{
		Kind:      KindRemoteUnavailable,
		Message:   "remote API is unavailable; retrying may succeed",
		Status:    status,
		Detail:    detail,
		Retryable: true,
	}
}

// maxDetailSize caps how much remote error body is echoed back to the agent.
const maxDetailSize = 4096

func truncateDetail(body []byte) string {
	if len(body) > maxDetailSize {
		return string(body[:maxDetailSize])
	}
	return string(body)
}
