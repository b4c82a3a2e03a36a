package mcp

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/omnimsg/unipile-mcp/internal/common"
	"github.com/omnimsg/unipile-mcp/internal/config"
	"github.com/omnimsg/unipile-mcp/internal/registry"
	"github.com/omnimsg/unipile-mcp/internal/unipile"
)

// --- Helpers ---

func testConfig(baseURL string) *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.Unipile.BaseURL = baseURL
	cfg.Unipile.APIKey = "test-key"
	cfg.Unipile.LinkedInAccountID = "li42"
	cfg.Unipile.EmailAccountID = "em7"
	return cfg
}

func testServer(t *testing.T, baseURL string) *mcpserver.MCPServer {
	t.Helper()
	srv, err := NewServer(testConfig(baseURL), common.NewSilentLogger())
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}
	return srv
}

// listTools calls tools/list on the MCPServer and returns the tools.
func listTools(t *testing.T, s *mcpserver.MCPServer) []mcpgo.Tool {
	t.Helper()

	msg := json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list","params":{}}`)
	result := s.HandleMessage(t.Context(), msg)

	resp, ok := result.(mcpgo.JSONRPCResponse)
	if !ok {
		t.Fatalf("expected JSONRPCResponse, got %T", result)
	}

	resultJSON, err := json.Marshal(resp.Result)
	if err != nil {
		t.Fatalf("failed to marshal result: %v", err)
	}

	var toolsResult mcpgo.ListToolsResult
	if err := json.Unmarshal(resultJSON, &toolsResult); err != nil {
		t.Fatalf("failed to unmarshal ListToolsResult: %v", err)
	}

	return toolsResult.Tools
}

// callTool calls a tool on the MCPServer and returns the result.
func callTool(t *testing.T, s *mcpserver.MCPServer, name string, args map[string]interface{}) *mcpgo.CallToolResult {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, _ := json.Marshal(params)

	msg := json.RawMessage(`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":` + string(paramsJSON) + `}`)
	result := s.HandleMessage(t.Context(), msg)

	resp, ok := result.(mcpgo.JSONRPCResponse)
	if !ok {
		t.Fatalf("expected JSONRPCResponse, got %T", result)
	}

	resultJSON, err := json.Marshal(resp.Result)
	if err != nil {
		t.Fatalf("failed to marshal result: %v", err)
	}

	var toolResult mcpgo.CallToolResult
	if err := json.Unmarshal(resultJSON, &toolResult); err != nil {
		t.Fatalf("failed to unmarshal CallToolResult: %v", err)
	}

	return &toolResult
}

// extractText extracts the text field from an MCP content block.
func extractText(t *testing.T, content mcpgo.Content) string {
	t.Helper()
	contentJSON, _ := json.Marshal(content)
	var tc struct {
		Text string `json:"text"`
	}
	json.Unmarshal(contentJSON, &tc)
	return tc.Text
}

func errorKind(t *testing.T, result *mcpgo.CallToolResult) string {
	t.Helper()
	if !result.IsError {
		t.Fatal("expected an error result")
	}
	if len(result.Content) == 0 {
		t.Fatal("error result has no content")
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(extractText(t, result.Content[0])), &payload); err != nil {
		t.Fatalf("error payload is not JSON: %v", err)
	}
	return payload.Error
}

// --- Tool listing ---

func TestListToolsExposesFullRegistry(t *testing.T) {
	s := testServer(t, "http://localhost:9")
	tools := listTools(t, s)
	if len(tools) != 95 {
		t.Errorf("expected 95 tools, got %d", len(tools))
	}
}

func TestSendMessageAccountOptionalInSchema(t *testing.T) {
	s := testServer(t, "http://localhost:9")
	for _, tool := range listTools(t, s) {
		if tool.Name != "send_message" {
			continue
		}
		for _, req := range tool.InputSchema.Required {
			if req == "account_id" {
				t.Error("account_id should be optional when a configured default exists")
			}
		}
		return
	}
	t.Fatal("send_message not listed")
}

func TestHiddenParamsNotExposed(t *testing.T) {
	s := testServer(t, "http://localhost:9")
	for _, tool := range listTools(t, s) {
		if tool.Name != "reconnect_account" {
			continue
		}
		if _, ok := tool.InputSchema.Properties["api_url"]; ok {
			t.Error("hidden api_url parameter should not appear in the schema")
		}
		return
	}
	t.Fatal("reconnect_account not listed")
}

// --- End-to-end dispatch ---

func TestListAccountsDispatch(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" || r.URL.Path != "/accounts" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.URL.RawQuery != "" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		if r.Header.Get("X-API-KEY") != "test-key" {
			t.Errorf("missing API key header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"id":"li42","type":"LINKEDIN"}]}`))
	}))
	defer backend.Close()

	s := testServer(t, backend.URL)
	result := callTool(t, s, "list_accounts", map[string]interface{}{})
	if result.IsError {
		t.Fatalf("unexpected error: %v", result.Content)
	}
	text := extractText(t, result.Content[0])
	if !strings.Contains(text, `"li42"`) {
		t.Errorf("response body not passed through: %s", text)
	}
}

func TestSendMessageDefaultsAccount(t *testing.T) {
	var gotBody map[string]interface{}
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/chats/chat-1/messages" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("account_id"); got != "li42" {
			t.Errorf("query account_id = %q", got)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message_id":"msg-1"}`))
	}))
	defer backend.Close()

	s := testServer(t, backend.URL)
	result := callTool(t, s, "send_message", map[string]interface{}{
		"chat_id": "chat-1",
		"text":    "hello",
	})
	if result.IsError {
		t.Fatalf("unexpected error: %v", result.Content)
	}
	if gotBody["text"] != "hello" || gotBody["account_id"] != "li42" {
		t.Errorf("unexpected body: %v", gotBody)
	}
}

func TestBinaryResponseEnvelope(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02}
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat_attendees/att-1/picture" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(payload)
	}))
	defer backend.Close()

	s := testServer(t, backend.URL)
	result := callTool(t, s, "get_attendee_picture", map[string]interface{}{"attendee_id": "att-1"})
	if result.IsError {
		t.Fatalf("unexpected error: %v", result.Content)
	}

	var envelope struct {
		ContentType string `json:"content_type"`
		SizeBytes   int    `json:"size_bytes"`
		DataBase64  string `json:"data_base64"`
	}
	if err := json.Unmarshal([]byte(extractText(t, result.Content[0])), &envelope); err != nil {
		t.Fatalf("envelope is not JSON: %v", err)
	}
	if envelope.ContentType != "image/jpeg" {
		t.Errorf("content_type = %q", envelope.ContentType)
	}
	if envelope.SizeBytes != len(payload) {
		t.Errorf("size_bytes = %d", envelope.SizeBytes)
	}
	decoded, err := base64.StdEncoding.DecodeString(envelope.DataBase64)
	if err != nil || string(decoded) != string(payload) {
		t.Error("data_base64 does not round-trip the payload")
	}
}

func TestValidationFailureNeverReachesNetwork(t *testing.T) {
	calls := 0
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer backend.Close()

	s := testServer(t, backend.URL)
	result := callTool(t, s, "search_jobs", map[string]interface{}{
		"keywords":      "golang",
		"remote_policy": "anywhere",
	})
	if kind := errorKind(t, result); kind != "invalid_parameter" {
		t.Errorf("error kind = %q", kind)
	}
	if calls != 0 {
		t.Errorf("backend should not have been called, got %d requests", calls)
	}
}

func TestUnknownToolError(t *testing.T) {
	cfg := testConfig("http://localhost:9")
	client := unipile.NewClient(cfg.Unipile.BaseURL, cfg.Unipile.APIKey, common.NewSilentLogger())
	d := NewDispatcher(client, registry.All(), &cfg.Unipile, common.NewSilentLogger())

	result := d.Call(t.Context(), "no_such_tool", map[string]interface{}{})
	if kind := errorKind(t, result); kind != "unknown_tool" {
		t.Errorf("error kind = %q", kind)
	}
	text := extractText(t, result.Content[0])
	if !strings.Contains(text, "no_such_tool") {
		t.Errorf("error should name the tool: %s", text)
	}
}

func TestMissingParameterError(t *testing.T) {
	s := testServer(t, "http://localhost:9")
	result := callTool(t, s, "send_message", map[string]interface{}{"chat_id": "chat-1"})
	if kind := errorKind(t, result); kind != "missing_parameter" {
		t.Errorf("error kind = %q", kind)
	}
}

func TestUnknownParameterError(t *testing.T) {
	s := testServer(t, "http://localhost:9")
	result := callTool(t, s, "get_chat", map[string]interface{}{
		"chat_id": "chat-1",
		"verbose": true,
	})
	if kind := errorKind(t, result); kind != "unknown_parameter" {
		t.Errorf("error kind = %q", kind)
	}
}

func TestRemoteRejected(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"title":"Not Found","detail":"chat does not exist"}`))
	}))
	defer backend.Close()

	s := testServer(t, backend.URL)
	result := callTool(t, s, "get_chat", map[string]interface{}{"chat_id": "nope"})
	if kind := errorKind(t, result); kind != "remote_rejected" {
		t.Errorf("error kind = %q", kind)
	}
	var payload struct {
		Status int    `json:"status"`
		Detail string `json:"detail"`
	}
	json.Unmarshal([]byte(extractText(t, result.Content[0])), &payload)
	if payload.Status != 404 {
		t.Errorf("status = %d", payload.Status)
	}
	if !strings.Contains(payload.Detail, "chat does not exist") {
		t.Errorf("detail should carry the remote body: %s", payload.Detail)
	}
}

func TestRemoteUnavailableOnServerError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer backend.Close()

	s := testServer(t, backend.URL)
	result := callTool(t, s, "list_accounts", map[string]interface{}{})
	if kind := errorKind(t, result); kind != "remote_unavailable" {
		t.Errorf("error kind = %q", kind)
	}
	var payload struct {
		Retryable bool `json:"retryable"`
	}
	json.Unmarshal([]byte(extractText(t, result.Content[0])), &payload)
	if !payload.Retryable {
		t.Error("server errors should be marked retryable")
	}
}

func TestRemoteUnavailableOnTransportFailure(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := backend.URL
	backend.Close()

	s := testServer(t, url)
	result := callTool(t, s, "list_accounts", map[string]interface{}{})
	if kind := errorKind(t, result); kind != "remote_unavailable" {
		t.Errorf("error kind = %q", kind)
	}
}

func TestNonJSONSuccessWrappedAsBinary(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("plain text"))
	}))
	defer backend.Close()

	s := testServer(t, backend.URL)
	result := callTool(t, s, "list_accounts", map[string]interface{}{})
	if result.IsError {
		t.Fatalf("unexpected error: %v", result.Content)
	}
	var envelope struct {
		ContentType string `json:"content_type"`
	}
	if err := json.Unmarshal([]byte(extractText(t, result.Content[0])), &envelope); err != nil {
		t.Fatalf("expected a binary envelope: %v", err)
	}
	if !strings.HasPrefix(envelope.ContentType, "text/plain") {
		t.Errorf("content_type = %q", envelope.ContentType)
	}
}
