package mcp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/omnimsg/unipile-mcp/internal/config"
	"github.com/omnimsg/unipile-mcp/internal/registry"
)

// ResolvedRequest is the fully-determined HTTP request for one tool call:
// placeholders substituted, defaults applied, parameters partitioned into
// query and body. Building it touches no network.
type ResolvedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   map[string]interface{}
	Binary bool
}

// Resolve validates the caller's arguments against a tool definition and
// builds the request to send. Validation failures return a ToolError and
// leave the request nil.
func Resolve(t registry.Tool, args map[string]interface{}, cfg *config.UnipileConfig) (*ResolvedRequest, *ToolError) {
	// Reject arguments the tool does not declare. Hidden parameters are
	// internal, so supplying one is also an unknown-parameter error.
	for name := range args {
		p, ok := t.Param(name)
		if !ok || p.Hidden {
			return nil, errUnknownParameter(t.Name, name)
		}
	}

	resolved := map[string]interface{}{}
	for _, p := range t.Params {
		val, present := args[p.Name]
		if p.Hidden {
			present = false
		}

		if present {
			checked, terr := checkValue(t.Name, p, val)
			if terr != nil {
				return nil, terr
			}
			resolved[p.Name] = checked
			continue
		}

		if def := defaultValue(p, cfg); def != nil {
			resolved[p.Name] = def
			continue
		}

		if p.Required {
			return nil, errMissingParameter(t.Name, p.Name)
		}
	}

	req := &ResolvedRequest{
		Method: t.Method,
		Path:   t.Path,
		Query:  url.Values{},
		Binary: t.Binary,
	}
	body := map[string]interface{}{}

	for _, p := range t.Params {
		val, ok := resolved[p.Name]
		if !ok {
			continue
		}
		switch p.In {
		case registry.InPath:
			str := fmt.Sprint(val)
			if str == "" {
				return nil, errMissingParameter(t.Name, p.Name)
			}
			req.Path = strings.ReplaceAll(req.Path, "{"+p.Name+"}", url.PathEscape(str))
		case registry.InQuery:
			if s := queryValue(val); s != "" {
				req.Query.Set(p.WireName(), s)
			}
		case registry.InBody:
			body[p.WireName()] = val
		}
	}

	for k, v := range t.StaticBody {
		body[k] = v
	}
	if t.Shape != nil {
		t.Shape(body)
	}

	// The remote API expects account context in both places: keep the query
	// account_id mirrored into any non-empty body that lacks one.
	if acct := req.Query.Get("account_id"); acct != "" && len(body) > 0 {
		if _, ok := body["account_id"]; !ok {
			body["account_id"] = acct
		}
	}

	if len(body) > 0 {
		req.Body = body
	}
	return req, nil
}

// checkValue enforces the declared type and constraints on a caller-supplied
// argument and returns the normalized value.
func checkValue(tool string, p registry.Param, val interface{}) (interface{}, *ToolError) {
	switch p.Type {
	case registry.TypeString:
		s, ok := val.(string)
		if !ok {
			return nil, errInvalidParameter(tool, p.Name, fmt.Sprintf("expected a string, got %T", val))
		}
		if p.Uppercase {
			s = strings.ToUpper(s)
		}
		if len(p.Enum) > 0 && !containsString(p.Enum, s) {
			return nil, errInvalidParameter(tool, p.Name,
				fmt.Sprintf("value %q is not one of [%s]", s, strings.Join(p.Enum, ", ")))
		}
		if p.MaxLen > 0 && len([]rune(s)) > p.MaxLen {
			return nil, errInvalidParameter(tool, p.Name,
				fmt.Sprintf("must be %d characters or less", p.MaxLen))
		}
		return s, nil
	case registry.TypeNumber:
		n, ok := val.(float64)
		if !ok {
			return nil, errInvalidParameter(tool, p.Name, fmt.Sprintf("expected a number, got %T", val))
		}
		if p.Max > 0 && n > p.Max {
			n = p.Max
		}
		return n, nil
	case registry.TypeBoolean:
		b, ok := val.(bool)
		if !ok {
			return nil, errInvalidParameter(tool, p.Name, fmt.Sprintf("expected a boolean, got %T", val))
		}
		return b, nil
	case registry.TypeArray:
		a, ok := val.([]interface{})
		if !ok {
			return nil, errInvalidParameter(tool, p.Name, fmt.Sprintf("expected an array, got %T", val))
		}
		return a, nil
	case registry.TypeObject:
		o, ok := val.(map[string]interface{})
		if !ok {
			return nil, errInvalidParameter(tool, p.Name, fmt.Sprintf("expected an object, got %T", val))
		}
		return o, nil
	}
	return val, nil
}

// defaultValue produces the value substituted when a caller omits a
// parameter, either a declared literal or process configuration. Returns
// nil when no default applies.
func defaultValue(p registry.Param, cfg *config.UnipileConfig) interface{} {
	if p.Default != nil {
		return p.Default
	}
	switch p.DefaultFrom {
	case registry.DefaultLinkedInAccount:
		if cfg.LinkedInAccountID != "" {
			return cfg.LinkedInAccountID
		}
	case registry.DefaultEmailAccount:
		if cfg.EmailAccountID != "" {
			return cfg.EmailAccountID
		}
	case registry.DefaultAPIOrigin:
		if origin := cfg.APIOrigin(); origin != "" {
			return origin
		}
	}
	return nil
}

// queryValue renders a resolved value as a query string value. Empty
// strings and false booleans are omitted entirely; arrays are
// comma-joined.
func queryValue(val interface{}) string {
	switch v := val.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "true"
		}
		return ""
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
