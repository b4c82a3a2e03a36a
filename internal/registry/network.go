package registry

// networkTools covers LinkedIn invitations, relations, and InMail.
func networkTools() []Tool {
	return []Tool{
		{
			Name:        "send_invitation",
			Description: "Send a LinkedIn connection invitation, optionally with a message (300 characters max).",
			Method:      "POST",
			Path:        "/users/invite",
			Params: []Param{
				{Name: "provider_id", Type: TypeString, Description: "The provider ID of the person to invite", Required: true, In: InBody},
				{Name: "message", Type: TypeString, Description: "Optional invitation message (300 characters max)", In: InBody, MaxLen: 300},
				linkedinAccountParam(),
			},
		},
		{
			Name:        "list_invitations_sent",
			Description: "List pending connection invitations the user has sent.",
			Method:      "GET",
			Path:        "/users/invite/sent",
			Params: []Param{
				limitParam(50, 250),
				cursorParam(),
				linkedinAccountParam(),
			},
		},
		{
			Name:        "list_invitations_received",
			Description: "List pending connection invitations the user has received.",
			Method:      "GET",
			Path:        "/users/invite/received",
			Params: []Param{
				limitParam(50, 250),
				cursorParam(),
				linkedinAccountParam(),
			},
		},
		{
			Name:        "accept_invitation",
			Description: "Accept a received connection invitation.",
			Method:      "POST",
			Path:        "/users/invite/received/{invitation_id}",
			Params: []Param{
				{Name: "invitation_id", Type: TypeString, Description: "The invitation ID (from list_invitations_received)", Required: true, In: InPath},
				linkedinAccountParam(),
			},
			StaticBody: map[string]interface{}{"action": "accept"},
		},
		{
			Name:        "decline_invitation",
			Description: "Decline a received connection invitation.",
			Method:      "POST",
			Path:        "/users/invite/received/{invitation_id}",
			Params: []Param{
				{Name: "invitation_id", Type: TypeString, Description: "The invitation ID (from list_invitations_received)", Required: true, In: InPath},
				linkedinAccountParam(),
			},
			StaticBody: map[string]interface{}{"action": "decline"},
		},
		{
			Name:        "cancel_invitation",
			Description: "Cancel a sent connection invitation.",
			Method:      "DELETE",
			Path:        "/users/invite/{invitation_id}",
			Params: []Param{
				{Name: "invitation_id", Type: TypeString, Description: "The invitation ID (from list_invitations_sent)", Required: true, In: InPath},
				linkedinAccountParam(),
			},
		},
		{
			Name:        "list_relations",
			Description: "List the user's first-degree LinkedIn connections.",
			Method:      "GET",
			Path:        "/users/relations",
			Params: []Param{
				limitParam(50, 250),
				cursorParam(),
				linkedinAccountParam(),
			},
		},
		{
			Name:        "send_inmail",
			Description: "Send a LinkedIn InMail to someone outside the user's network (consumes InMail credits).",
			Method:      "POST",
			Path:        "/chats",
			Params: []Param{
				{Name: "attendees_ids", Type: TypeArray, Description: "Provider IDs of the recipients", Required: true, In: InBody},
				{Name: "subject", Type: TypeString, Description: "InMail subject line", Required: true, In: InBody},
				{Name: "text", Type: TypeString, Description: "InMail message content", Required: true, In: InBody},
				linkedinAccountParam(),
			},
			StaticBody: map[string]interface{}{
				"linkedin": map[string]interface{}{"inmail": true},
			},
		},
		{
			Name:        "get_inmail_credits",
			Description: "Get the user's remaining LinkedIn InMail credit balance.",
			Method:      "GET",
			Path:        "/linkedin/inmail_balance",
			Params:      []Param{linkedinAccountParam()},
		},
	}
}
