package registry

// messagingTools covers unified cross-platform chats and messages
// (LinkedIn, WhatsApp, Instagram, Telegram). The platform is determined by
// the chat or message ID, so most tools take no account_id at all.
func messagingTools() []Tool {
	return []Tool{
		{
			Name:        "list_chats",
			Description: "List message conversations across ALL connected platforms. Use account_id to filter to a specific platform.",
			Method:      "GET",
			Path:        "/chats",
			Params: []Param{
				limitParam(50, 250),
				cursorParam(),
				{Name: "unread_only", Type: TypeBoolean, Description: "If true, only return chats with unread messages", In: InQuery, Field: "unread"},
				accountParam(),
			},
		},
		{
			Name:        "get_chat",
			Description: "Get details for a specific chat conversation.",
			Method:      "GET",
			Path:        "/chats/{chat_id}",
			Params: []Param{
				{Name: "chat_id", Type: TypeString, Description: "The chat/conversation ID", Required: true, In: InPath},
			},
		},
		{
			Name:        "sync_chat",
			Description: "Sync a chat to get the latest messages and state.",
			Method:      "GET",
			Path:        "/chats/{chat_id}/sync",
			Params: []Param{
				{Name: "chat_id", Type: TypeString, Description: "The chat/conversation ID to sync", Required: true, In: InPath},
			},
		},
		{
			Name:        "update_chat",
			Description: "Update chat settings (archive, mute, mark read/unread).",
			Method:      "PATCH",
			Path:        "/chats/{chat_id}",
			Params: []Param{
				{Name: "chat_id", Type: TypeString, Description: "The chat/conversation ID", Required: true, In: InPath},
				{Name: "archived", Type: TypeBoolean, Description: "Set to true to archive, false to unarchive", In: InBody},
				{Name: "muted", Type: TypeBoolean, Description: "Set to true to mute notifications", In: InBody},
				{Name: "read", Type: TypeBoolean, Description: "Set to true to mark as read", In: InBody},
			},
		},
		{
			Name:        "delete_chat",
			Description: "Delete a chat conversation.",
			Method:      "DELETE",
			Path:        "/chats/{chat_id}",
			Params: []Param{
				{Name: "chat_id", Type: TypeString, Description: "The chat ID to delete", Required: true, In: InPath},
			},
		},
		{
			Name:        "list_chat_attendees",
			Description: "List participants in a specific chat.",
			Method:      "GET",
			Path:        "/chats/{chat_id}/attendees",
			Params: []Param{
				{Name: "chat_id", Type: TypeString, Description: "The chat/conversation ID", Required: true, In: InPath},
			},
		},
		{
			Name:        "get_chat_messages",
			Description: "Get messages from a specific chat (works for any platform).",
			Method:      "GET",
			Path:        "/chats/{chat_id}/messages",
			Params: []Param{
				{Name: "chat_id", Type: TypeString, Description: "The chat/conversation ID (from list_chats)", Required: true, In: InPath},
				limitParam(50, 250),
				cursorParam(),
			},
		},
		{
			Name:        "get_message",
			Description: "Get a specific message by ID.",
			Method:      "GET",
			Path:        "/messages/{message_id}",
			Params: []Param{
				{Name: "message_id", Type: TypeString, Description: "The message ID", Required: true, In: InPath},
			},
		},
		{
			Name:        "send_message",
			Description: "Send a message in an existing chat. The platform is determined by the chat_id.",
			Method:      "POST",
			Path:        "/chats/{chat_id}/messages",
			Params: []Param{
				{Name: "chat_id", Type: TypeString, Description: "The chat/conversation ID (from list_chats)", Required: true, In: InPath},
				{Name: "text", Type: TypeString, Description: "The message content to send", Required: true, In: InBody},
				{Name: "account_id", Type: TypeString, Description: "Account to send from (defaults to the configured LinkedIn account)", In: InQuery, DefaultFrom: DefaultLinkedInAccount},
			},
		},
		{
			Name:        "forward_message",
			Description: "Forward a message to another chat.",
			Method:      "POST",
			Path:        "/messages/{message_id}/forward",
			Params: []Param{
				{Name: "message_id", Type: TypeString, Description: "The message ID to forward", Required: true, In: InPath},
				{Name: "chat_id", Type: TypeString, Description: "The target chat ID to forward to", Required: true, In: InBody},
			},
		},
		{
			Name:        "delete_message",
			Description: "Delete a specific message.",
			Method:      "DELETE",
			Path:        "/messages/{message_id}",
			Params: []Param{
				{Name: "message_id", Type: TypeString, Description: "The message ID to delete", Required: true, In: InPath},
			},
		},
		{
			Name:        "get_message_attachment",
			Description: "Download a message attachment. Returns {content_type, size_bytes, data_base64}.",
			Method:      "GET",
			Path:        "/messages/{message_id}/attachment",
			Params: []Param{
				{Name: "message_id", Type: TypeString, Description: "The message ID containing the attachment", Required: true, In: InPath},
			},
			Binary: true,
		},
		{
			Name:        "start_chat",
			Description: "Start a new conversation on any connected platform. For LinkedIn pass provider IDs; for WhatsApp pass phone numbers with country code.",
			Method:      "POST",
			Path:        "/chats",
			Params: []Param{
				{Name: "attendees_ids", Type: TypeArray, Description: "List of provider IDs or phone numbers", Required: true, In: InBody},
				{Name: "text", Type: TypeString, Description: "The initial message content", Required: true, In: InBody},
				{Name: "account_id", Type: TypeString, Description: "Account to start the chat from (defaults to the configured LinkedIn account)", In: InQuery, DefaultFrom: DefaultLinkedInAccount},
			},
		},
		{
			Name:        "list_all_messages",
			Description: "List messages across all chats (cross-chat search).",
			Method:      "GET",
			Path:        "/messages",
			Params: []Param{
				limitParam(50, 250),
				cursorParam(),
				{Name: "before", Type: TypeString, Description: "Only messages before this ISO8601 datetime", In: InQuery},
				{Name: "after", Type: TypeString, Description: "Only messages after this ISO8601 datetime", In: InQuery},
				{Name: "sender_id", Type: TypeString, Description: "Filter by sender provider ID", In: InQuery},
				accountParam(),
			},
		},
	}
}
