package registry

// attendeeTools covers chat participants and per-attendee message history.
func attendeeTools() []Tool {
	return []Tool{
		{
			Name:        "list_attendees",
			Description: "List all chat attendees (people you have conversations with) across connected accounts.",
			Method:      "GET",
			Path:        "/chat_attendees",
			Params: []Param{
				limitParam(50, 250),
				cursorParam(),
				accountParam(),
			},
		},
		{
			Name:        "list_messages_by_attendee",
			Description: "List all messages sent by a specific attendee across chats.",
			Method:      "GET",
			Path:        "/chat_attendees/{sender_id}/messages",
			Params: []Param{
				{Name: "sender_id", Type: TypeString, Description: "The attendee/sender provider ID", Required: true, In: InPath},
				limitParam(50, 250),
				cursorParam(),
				{Name: "before", Type: TypeString, Description: "Only messages before this ISO8601 datetime", In: InQuery},
				{Name: "after", Type: TypeString, Description: "Only messages after this ISO8601 datetime", In: InQuery},
				accountParam(),
			},
		},
		{
			Name:        "get_attendee",
			Description: "Get details for a specific chat attendee.",
			Method:      "GET",
			Path:        "/chat_attendees/{attendee_id}",
			Params: []Param{
				{Name: "attendee_id", Type: TypeString, Description: "The attendee ID", Required: true, In: InPath},
			},
		},
		{
			Name:        "get_attendee_picture",
			Description: "Download an attendee's profile picture. Returns {content_type, size_bytes, data_base64}.",
			Method:      "GET",
			Path:        "/chat_attendees/{attendee_id}/picture",
			Params: []Param{
				{Name: "attendee_id", Type: TypeString, Description: "The attendee ID", Required: true, In: InPath},
			},
			Binary: true,
		},
		{
			Name:        "list_chats_by_attendee",
			Description: "List all chats that include a specific attendee.",
			Method:      "GET",
			Path:        "/chat_attendees/{attendee_id}/chats",
			Params: []Param{
				{Name: "attendee_id", Type: TypeString, Description: "The attendee ID", Required: true, In: InPath},
				limitParam(50, 250),
				cursorParam(),
				accountParam(),
			},
		},
		{
			Name:        "add_message_reaction",
			Description: "Add an emoji reaction to a message.",
			Method:      "POST",
			Path:        "/messages/{message_id}/reactions",
			Params: []Param{
				{Name: "message_id", Type: TypeString, Description: "The message ID to react to", Required: true, In: InPath},
				{Name: "reaction", Type: TypeString, Description: "The emoji reaction (e.g. a thumbs-up emoji)", Required: true, In: InBody},
			},
		},
	}
}
