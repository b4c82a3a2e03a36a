package registry

// Shared parameter constructors. Most list endpoints take the same
// limit/cursor pagination pair, and most tools carry an account_id that is
// either caller-supplied or substituted from the configured default account.

// limitParam declares a numeric page-size parameter sent as a query value.
func limitParam(def, max float64) Param {
	return Param{
		Name:        "limit",
		Type:        TypeNumber,
		Description: "Max results per page",
		In:          InQuery,
		Default:     def,
		Max:         max,
	}
}

// bodyLimitParam declares a page-size parameter carried in the request body
// (the LinkedIn search endpoint paginates through the body).
func bodyLimitParam(def, max float64) Param {
	return Param{
		Name:        "limit",
		Type:        TypeNumber,
		Description: "Max results per page",
		In:          InBody,
		Default:     def,
		Max:         max,
	}
}

func cursorParam() Param {
	return Param{
		Name:        "cursor",
		Type:        TypeString,
		Description: "Pagination cursor from a previous response",
		In:          InQuery,
	}
}

func bodyCursorParam() Param {
	return Param{
		Name:        "cursor",
		Type:        TypeString,
		Description: "Pagination cursor from a previous response",
		In:          InBody,
	}
}

// accountParam declares an optional cross-platform account filter with no
// configured default. Messaging tools work across all connected platforms
// when it is omitted.
func accountParam() Param {
	return Param{
		Name:        "account_id",
		Type:        TypeString,
		Description: "Optional account ID to scope the call to one connected platform",
		In:          InQuery,
	}
}

// linkedinAccountParam declares the account_id of a LinkedIn-family tool:
// required by the remote API, substituted from the configured default
// LinkedIn account when the caller omits it.
func linkedinAccountParam() Param {
	return Param{
		Name:        "account_id",
		Type:        TypeString,
		Description: "LinkedIn account ID (defaults to the configured LinkedIn account)",
		Required:    true,
		In:          InQuery,
		DefaultFrom: DefaultLinkedInAccount,
	}
}

// emailAccountParam declares the account_id of an email/calendar-family
// tool: optional, substituted from the configured default email account.
func emailAccountParam() Param {
	return Param{
		Name:        "account_id",
		Type:        TypeString,
		Description: "Email account ID (defaults to the configured email account)",
		In:          InQuery,
		DefaultFrom: DefaultEmailAccount,
	}
}
