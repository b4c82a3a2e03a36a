package registry

// userTools covers LinkedIn profile reads and edits, follower lists,
// activity history, and the raw passthrough endpoint.
func userTools() []Tool {
	return []Tool{
		{
			Name:        "get_profile",
			Description: "Get a LinkedIn user's profile by provider ID or public identifier.",
			Method:      "GET",
			Path:        "/users/{provider_id}",
			Params: []Param{
				{Name: "provider_id", Type: TypeString, Description: "The user's provider ID or public identifier (e.g. 'john-doe-12345')", Required: true, In: InPath},
				{Name: "sections", Type: TypeArray, Description: "Profile sections to include (e.g. 'experience', 'education', 'skills')", In: InQuery},
				linkedinAccountParam(),
			},
		},
		{
			Name:        "get_company_profile",
			Description: "Get a LinkedIn company page by ID or public identifier.",
			Method:      "GET",
			Path:        "/linkedin/company/{company_id}",
			Params: []Param{
				{Name: "company_id", Type: TypeString, Description: "The company ID or public identifier", Required: true, In: InPath},
				linkedinAccountParam(),
			},
		},
		{
			Name:        "edit_own_profile",
			Description: "Edit the authenticated user's own LinkedIn profile. Only supplied fields change.",
			Method:      "PATCH",
			Path:        "/users/me/edit",
			Params: []Param{
				{Name: "headline", Type: TypeString, Description: "New profile headline", In: InBody},
				{Name: "summary", Type: TypeString, Description: "New 'About' section text", In: InBody},
				{Name: "location", Type: TypeString, Description: "New profile location", In: InBody},
				linkedinAccountParam(),
			},
			StaticBody: map[string]interface{}{"type": "LINKEDIN"},
		},
		{
			Name:        "list_followers",
			Description: "List the authenticated user's LinkedIn followers.",
			Method:      "GET",
			Path:        "/users/followers",
			Params: []Param{
				limitParam(50, 250),
				cursorParam(),
				linkedinAccountParam(),
			},
		},
		{
			Name:        "list_following",
			Description: "List the people and companies the authenticated user follows.",
			Method:      "GET",
			Path:        "/users/following",
			Params: []Param{
				limitParam(50, 250),
				cursorParam(),
				linkedinAccountParam(),
			},
		},
		{
			Name:        "list_user_comments",
			Description: "List comments written by a LinkedIn user.",
			Method:      "GET",
			Path:        "/users/{identifier}/comments",
			Params: []Param{
				{Name: "identifier", Type: TypeString, Description: "The user's provider ID or public identifier", Required: true, In: InPath},
				limitParam(50, 250),
				cursorParam(),
				linkedinAccountParam(),
			},
		},
		{
			Name:        "list_user_reactions",
			Description: "List reactions a LinkedIn user has given.",
			Method:      "GET",
			Path:        "/users/{identifier}/reactions",
			Params: []Param{
				{Name: "identifier", Type: TypeString, Description: "The user's provider ID or public identifier", Required: true, In: InPath},
				limitParam(50, 250),
				cursorParam(),
				linkedinAccountParam(),
			},
		},
		{
			Name:        "list_user_posts",
			Description: "List posts published by a LinkedIn user.",
			Method:      "GET",
			Path:        "/users/{provider_id}/posts",
			Params: []Param{
				{Name: "provider_id", Type: TypeString, Description: "The user's provider ID", Required: true, In: InPath},
				limitParam(50, 250),
				cursorParam(),
				linkedinAccountParam(),
			},
		},
		{
			Name:        "get_profile_visitors",
			Description: "List recent visitors to the authenticated user's LinkedIn profile.",
			Method:      "GET",
			Path:        "/users/me/profile_visitors",
			Params:      []Param{linkedinAccountParam()},
		},
		{
			Name:        "endorse_skill",
			Description: "Endorse a skill on a LinkedIn user's profile.",
			Method:      "POST",
			Path:        "/users/{provider_id}/skill/{skill_name}",
			Params: []Param{
				{Name: "provider_id", Type: TypeString, Description: "The user's provider ID", Required: true, In: InPath},
				{Name: "skill_name", Type: TypeString, Description: "The exact skill name to endorse", Required: true, In: InPath},
				linkedinAccountParam(),
			},
		},
		{
			Name:        "raw_linkedin_request",
			Description: "Make a raw request to any LinkedIn API endpoint through Unipile. For advanced use when no dedicated tool exists.",
			Method:      "POST",
			Path:        "/linkedin",
			Params: []Param{
				{Name: "method", Type: TypeString, Description: "HTTP method for the proxied request", Required: true, In: InBody, Enum: []string{"GET", "POST", "PUT", "DELETE"}, Uppercase: true},
				{Name: "request_url", Type: TypeString, Description: "Full LinkedIn API URL to call", Required: true, In: InBody},
				{Name: "body", Type: TypeObject, Description: "Request body for POST/PUT requests", In: InBody},
				linkedinAccountParam(),
			},
		},
	}
}
