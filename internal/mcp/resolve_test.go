package mcp

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/omnimsg/unipile-mcp/internal/config"
	"github.com/omnimsg/unipile-mcp/internal/registry"
)

var testTools = registry.Index(registry.All())

func testUnipileConfig() *config.UnipileConfig {
	return &config.UnipileConfig{
		BaseURL:           "https://api1.unipile.com:13111/api/v1",
		APIKey:            "test-key",
		LinkedInAccountID: "li42",
		EmailAccountID:    "em7",
	}
}

func TestResolveSubstitutesPathParams(t *testing.T) {
	req, terr := Resolve(testTools["get_chat"], map[string]interface{}{"chat_id": "chat-1"}, testUnipileConfig())
	if terr != nil {
		t.Fatalf("unexpected error: %v", terr)
	}
	if req.Path != "/chats/chat-1" {
		t.Errorf("path = %q", req.Path)
	}
	if req.Method != "GET" || req.Body != nil {
		t.Errorf("unexpected request: %+v", req)
	}
}

func TestResolveEscapesPathValues(t *testing.T) {
	req, terr := Resolve(testTools["get_chat"], map[string]interface{}{"chat_id": "a/b c"}, testUnipileConfig())
	if terr != nil {
		t.Fatalf("unexpected error: %v", terr)
	}
	if strings.Contains(strings.TrimPrefix(req.Path, "/chats/"), "/") {
		t.Errorf("path value not escaped: %q", req.Path)
	}
}

func TestResolveDefaultsLinkedInAccount(t *testing.T) {
	args := map[string]interface{}{"chat_id": "chat-1", "text": "hello"}
	req, terr := Resolve(testTools["send_message"], args, testUnipileConfig())
	if terr != nil {
		t.Fatalf("unexpected error: %v", terr)
	}
	if got := req.Query.Get("account_id"); got != "li42" {
		t.Errorf("query account_id = %q", got)
	}
	// Account context is mirrored into the non-empty body.
	if got := req.Body["account_id"]; got != "li42" {
		t.Errorf("body account_id = %v", got)
	}
	if req.Body["text"] != "hello" {
		t.Errorf("body text = %v", req.Body["text"])
	}
}

func TestResolveCallerOverridesDefaultAccount(t *testing.T) {
	args := map[string]interface{}{"chat_id": "chat-1", "text": "hello", "account_id": "li99"}
	req, terr := Resolve(testTools["send_message"], args, testUnipileConfig())
	if terr != nil {
		t.Fatalf("unexpected error: %v", terr)
	}
	if got := req.Query.Get("account_id"); got != "li99" {
		t.Errorf("query account_id = %q", got)
	}
}

func TestResolveRequiredAccountMissingWithoutDefault(t *testing.T) {
	cfg := testUnipileConfig()
	cfg.LinkedInAccountID = ""
	_, terr := Resolve(testTools["get_my_profile"], map[string]interface{}{}, cfg)
	if terr == nil || terr.Kind != KindMissingParameter {
		t.Fatalf("expected missing_parameter, got %v", terr)
	}
}

func TestResolveMissingRequired(t *testing.T) {
	_, terr := Resolve(testTools["send_message"], map[string]interface{}{"chat_id": "chat-1"}, testUnipileConfig())
	if terr == nil || terr.Kind != KindMissingParameter {
		t.Fatalf("expected missing_parameter, got %v", terr)
	}
	if !strings.Contains(terr.Message, "text") {
		t.Errorf("message should name the parameter: %s", terr.Message)
	}
}

func TestResolveUnknownParameter(t *testing.T) {
	args := map[string]interface{}{"chat_id": "chat-1", "text": "hi", "priority": "high"}
	_, terr := Resolve(testTools["send_message"], args, testUnipileConfig())
	if terr == nil || terr.Kind != KindUnknownParameter {
		t.Fatalf("expected unknown_parameter, got %v", terr)
	}
}

func TestResolveHiddenParameterRejected(t *testing.T) {
	args := map[string]interface{}{"account_id": "acc-1", "api_url": "https://evil.example"}
	_, terr := Resolve(testTools["reconnect_account"], args, testUnipileConfig())
	if terr == nil || terr.Kind != KindUnknownParameter {
		t.Fatalf("expected unknown_parameter for hidden param, got %v", terr)
	}
}

func TestResolveHiddenParameterFilledFromConfig(t *testing.T) {
	req, terr := Resolve(testTools["reconnect_account"], map[string]interface{}{"account_id": "acc-1"}, testUnipileConfig())
	if terr != nil {
		t.Fatalf("unexpected error: %v", terr)
	}
	if got := req.Body["api_url"]; got != "https://api1.unipile.com:13111" {
		t.Errorf("api_url = %v", got)
	}
	if got := req.Body["reconnect_account"]; got != "acc-1" {
		t.Errorf("reconnect_account = %v", got)
	}
	if req.Body["type"] != "reconnect" {
		t.Errorf("static body not merged: %v", req.Body)
	}
}

func TestResolveTypeMismatch(t *testing.T) {
	args := map[string]interface{}{"chat_id": "chat-1", "text": 42.0}
	_, terr := Resolve(testTools["send_message"], args, testUnipileConfig())
	if terr == nil || terr.Kind != KindInvalidParameter {
		t.Fatalf("expected invalid_parameter, got %v", terr)
	}
}

func TestResolveEnumViolation(t *testing.T) {
	args := map[string]interface{}{"keywords": "golang", "remote_policy": "anywhere"}
	_, terr := Resolve(testTools["search_jobs"], args, testUnipileConfig())
	if terr == nil || terr.Kind != KindInvalidParameter {
		t.Fatalf("expected invalid_parameter, got %v", terr)
	}
	if !strings.Contains(terr.Message, "anywhere") {
		t.Errorf("message should name the bad value: %s", terr.Message)
	}
}

func TestResolveEnumFieldRename(t *testing.T) {
	args := map[string]interface{}{"keywords": "golang", "remote_policy": "hybrid"}
	req, terr := Resolve(testTools["search_jobs"], args, testUnipileConfig())
	if terr != nil {
		t.Fatalf("unexpected error: %v", terr)
	}
	if req.Body["remote"] != "hybrid" {
		t.Errorf("remote = %v", req.Body["remote"])
	}
	if _, ok := req.Body["remote_policy"]; ok {
		t.Error("schema name should not appear on the wire")
	}
	if req.Body["api"] != "classic" || req.Body["category"] != "jobs" {
		t.Errorf("static body not merged: %v", req.Body)
	}
}

func TestResolveLimitDefaultAndClamp(t *testing.T) {
	req, terr := Resolve(testTools["list_chats"], map[string]interface{}{}, testUnipileConfig())
	if terr != nil {
		t.Fatalf("unexpected error: %v", terr)
	}
	if got := req.Query.Get("limit"); got != "50" {
		t.Errorf("default limit = %q", got)
	}

	req, terr = Resolve(testTools["list_chats"], map[string]interface{}{"limit": 9999.0}, testUnipileConfig())
	if terr != nil {
		t.Fatalf("unexpected error: %v", terr)
	}
	if got := req.Query.Get("limit"); got != "250" {
		t.Errorf("clamped limit = %q", got)
	}
}

func TestResolveBooleanQueryOnlyWhenTrue(t *testing.T) {
	req, _ := Resolve(testTools["list_chats"], map[string]interface{}{"unread_only": false}, testUnipileConfig())
	if _, ok := req.Query["unread"]; ok {
		t.Error("false boolean should be omitted from the query")
	}
	req, _ = Resolve(testTools["list_chats"], map[string]interface{}{"unread_only": true}, testUnipileConfig())
	if got := req.Query.Get("unread"); got != "true" {
		t.Errorf("unread = %q", got)
	}
}

func TestResolveArrayQueryCommaJoined(t *testing.T) {
	args := map[string]interface{}{
		"provider_id": "john-doe",
		"sections":    []interface{}{"experience", "education"},
	}
	req, terr := Resolve(testTools["get_profile"], args, testUnipileConfig())
	if terr != nil {
		t.Fatalf("unexpected error: %v", terr)
	}
	if got := req.Query.Get("sections"); got != "experience,education" {
		t.Errorf("sections = %q", got)
	}
}

func TestResolveUppercaseNormalization(t *testing.T) {
	args := map[string]interface{}{"param_type": "location", "query": "paris"}
	req, terr := Resolve(testTools["get_search_params"], args, testUnipileConfig())
	if terr != nil {
		t.Fatalf("unexpected error: %v", terr)
	}
	if got := req.Query.Get("type"); got != "LOCATION" {
		t.Errorf("type = %q", got)
	}
	if got := req.Query.Get("q"); got != "paris" {
		t.Errorf("q = %q", got)
	}
}

func TestResolveMessageOverLengthRejected(t *testing.T) {
	long := strings.Repeat("x", 400)
	args := map[string]interface{}{"provider_id": "john-doe", "message": long}
	_, terr := Resolve(testTools["send_invitation"], args, testUnipileConfig())
	if terr == nil || terr.Kind != KindInvalidParameter {
		t.Fatalf("expected invalid_parameter, got %v", terr)
	}
	if !strings.Contains(terr.Message, "300") {
		t.Errorf("message should state the limit: %s", terr.Message)
	}

	args["message"] = strings.Repeat("x", 300)
	req, terr := Resolve(testTools["send_invitation"], args, testUnipileConfig())
	if terr != nil {
		t.Fatalf("unexpected error at the limit: %v", terr)
	}
	if msg, _ := req.Body["message"].(string); len(msg) != 300 {
		t.Errorf("message length = %d, want 300", len(msg))
	}
}

func TestResolveEmailAccountOptional(t *testing.T) {
	cfg := testUnipileConfig()
	cfg.EmailAccountID = ""
	// No configured default and not required at the boundary: proceeds
	// without account context.
	req, terr := Resolve(testTools["list_emails"], map[string]interface{}{}, cfg)
	if terr != nil {
		t.Fatalf("unexpected error: %v", terr)
	}
	if _, ok := req.Query["account_id"]; ok {
		t.Error("account_id should be absent without a configured default")
	}
}

func TestResolveDeterministic(t *testing.T) {
	args := map[string]interface{}{
		"keywords":      "fintech",
		"headcount_min": 10.0,
		"headcount_max": 200.0,
		"limit":         30.0,
	}
	first, terr := Resolve(testTools["search_companies"], args, testUnipileConfig())
	if terr != nil {
		t.Fatalf("unexpected error: %v", terr)
	}
	second, terr := Resolve(testTools["search_companies"], args, testUnipileConfig())
	if terr != nil {
		t.Fatalf("unexpected error: %v", terr)
	}

	firstBody, _ := json.Marshal(first.Body)
	secondBody, _ := json.Marshal(second.Body)
	if string(firstBody) != string(secondBody) {
		t.Errorf("body not deterministic:\n%s\n%s", firstBody, secondBody)
	}
	if first.Query.Encode() != second.Query.Encode() {
		t.Errorf("query not deterministic: %q vs %q", first.Query.Encode(), second.Query.Encode())
	}
}

func TestResolveInmailStaticBody(t *testing.T) {
	args := map[string]interface{}{
		"attendees_ids": []interface{}{"prov-1"},
		"subject":       "Hi",
		"text":          "Hello there",
	}
	req, terr := Resolve(testTools["send_inmail"], args, testUnipileConfig())
	if terr != nil {
		t.Fatalf("unexpected error: %v", terr)
	}
	li, ok := req.Body["linkedin"].(map[string]interface{})
	if !ok || li["inmail"] != true {
		t.Errorf("linkedin inmail flag missing: %v", req.Body)
	}
}

func TestResolveGetRequestHasNilBody(t *testing.T) {
	req, terr := Resolve(testTools["list_accounts"], map[string]interface{}{}, testUnipileConfig())
	if terr != nil {
		t.Fatalf("unexpected error: %v", terr)
	}
	if req.Body != nil {
		t.Errorf("expected nil body, got %v", req.Body)
	}
	if len(req.Query) != 0 {
		t.Errorf("expected empty query, got %v", req.Query)
	}
}
