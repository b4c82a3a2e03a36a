// Package registry holds the declarative table of Unipile tool definitions.
// Every tool maps to exactly one HTTP operation against the Unipile API;
// the table is validated once at startup and never mutated.
package registry

import (
	"fmt"
	"regexp"
	"strings"
)

// ParamType is the JSON-schema type of a tool parameter.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeNumber  ParamType = "number"
	TypeBoolean ParamType = "boolean"
	TypeArray   ParamType = "array"
	TypeObject  ParamType = "object"
)

// ParamIn says where a resolved parameter lands in the HTTP request.
type ParamIn string

const (
	InPath  ParamIn = "path"
	InQuery ParamIn = "query"
	InBody  ParamIn = "body"
)

// DefaultFrom values for parameters substituted from process configuration.
const (
	DefaultLinkedInAccount = "linkedin_account"
	DefaultEmailAccount    = "email_account"
	DefaultAPIOrigin       = "api_origin"
)

// Param describes one parameter of a tool's input schema.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	In          ParamIn
	Field       string // wire name override; Name when empty
	Enum        []string
	Default     interface{} // substituted when the caller omits the parameter
	DefaultFrom string      // config-derived default (account context)
	Hidden      bool        // resolved internally, never exposed or accepted
	Max         float64     // clamp for numeric page sizes (0 = none)
	MaxLen      int         // length cap for string values (0 = none)
	Uppercase   bool        // normalize string value to upper case
}

// WireName returns the name the parameter uses on the wire.
func (p Param) WireName() string {
	if p.Field != "" {
		return p.Field
	}
	return p.Name
}

// ShapeFunc reshapes a resolved body map into the wire format the Unipile
// API expects (nested objects, identifier lists). Applied after validation,
// before the request is built.
type ShapeFunc func(body map[string]interface{})

// Tool is one entry in the registry: a named MCP tool bound to a single
// HTTP operation.
type Tool struct {
	Name        string
	Description string
	Method      string
	Path        string
	Params      []Param
	StaticBody  map[string]interface{} // constant wire fields merged into every request body
	Binary      bool                   // response is binary, surfaced as base64
	Shape       ShapeFunc
}

// Param returns the named parameter declaration.
func (t Tool) Param(name string) (Param, bool) {
	for _, p := range t.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// All returns the complete tool table.
func All() []Tool {
	var tools []Tool
	tools = append(tools, accountTools()...)
	tools = append(tools, messagingTools()...)
	tools = append(tools, attendeeTools()...)
	tools = append(tools, emailTools()...)
	tools = append(tools, calendarTools()...)
	tools = append(tools, searchTools()...)
	tools = append(tools, userTools()...)
	tools = append(tools, networkTools()...)
	tools = append(tools, postTools()...)
	tools = append(tools, jobTools()...)
	tools = append(tools, webhookTools()...)
	return tools
}

// Index builds a name -> Tool lookup map.
func Index(tools []Tool) map[string]Tool {
	idx := make(map[string]Tool, len(tools))
	for _, t := range tools {
		idx[t.Name] = t
	}
	return idx
}

// allowedMethods is the whitelist of HTTP methods for registry tools.
var allowedMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "PATCH": true, "DELETE": true,
}

var placeholderRe = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// Placeholders extracts the {name} placeholders from a path template.
func Placeholders(path string) []string {
	matches := placeholderRe.FindAllStringSubmatch(path, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// ValidateTool checks a single tool definition for internal consistency.
func ValidateTool(t Tool) error {
	if t.Name == "" {
		return fmt.Errorf("tool has empty name")
	}
	if !allowedMethods[t.Method] {
		return fmt.Errorf("tool %q has unsupported method %q", t.Name, t.Method)
	}
	if t.Path == "" || !strings.HasPrefix(t.Path, "/") {
		return fmt.Errorf("tool %q has invalid path %q", t.Name, t.Path)
	}
	if strings.Contains(t.Path, "..") {
		return fmt.Errorf("tool %q has invalid path %q (contains ..)", t.Name, t.Path)
	}
	if t.Description == "" {
		return fmt.Errorf("tool %q has empty description", t.Name)
	}

	declared := map[string]Param{}
	for _, p := range t.Params {
		if p.Name == "" {
			return fmt.Errorf("tool %q has a parameter with empty name", t.Name)
		}
		if _, dup := declared[p.Name]; dup {
			return fmt.Errorf("tool %q declares parameter %q twice", t.Name, p.Name)
		}
		declared[p.Name] = p

		switch p.Type {
		case TypeString, TypeNumber, TypeBoolean, TypeArray, TypeObject:
		default:
			return fmt.Errorf("tool %q parameter %q has unknown type %q", t.Name, p.Name, p.Type)
		}
		switch p.In {
		case InPath, InQuery, InBody:
		default:
			return fmt.Errorf("tool %q parameter %q has unknown location %q", t.Name, p.Name, p.In)
		}
		if len(p.Enum) > 0 && p.Type != TypeString {
			return fmt.Errorf("tool %q parameter %q: enum constraints require string type", t.Name, p.Name)
		}
		if p.In == InPath && !p.Required && p.DefaultFrom == "" && p.Default == nil {
			return fmt.Errorf("tool %q path parameter %q must be required or defaultable", t.Name, p.Name)
		}
	}

	// Every placeholder in the path template must be backed by a declared
	// path parameter, and vice versa.
	holes := Placeholders(t.Path)
	holeSet := map[string]bool{}
	for _, h := range holes {
		holeSet[h] = true
		p, ok := declared[h]
		if !ok {
			return fmt.Errorf("tool %q path placeholder {%s} has no matching parameter", t.Name, h)
		}
		if p.In != InPath {
			return fmt.Errorf("tool %q parameter %q matches a placeholder but is declared in=%s", t.Name, h, p.In)
		}
	}
	for _, p := range t.Params {
		if p.In == InPath && !holeSet[p.Name] {
			return fmt.Errorf("tool %q declares path parameter %q with no placeholder", t.Name, p.Name)
		}
	}

	return nil
}

// Validate checks the whole table: per-tool consistency plus unique names.
// Run once at startup; a failure here is a programming error, not a runtime
// condition.
func Validate(tools []Tool) error {
	seen := map[string]bool{}
	for _, t := range tools {
		if err := ValidateTool(t); err != nil {
			return err
		}
		if seen[t.Name] {
			return fmt.Errorf("duplicate tool name %q", t.Name)
		}
		seen[t.Name] = true
	}
	return nil
}
