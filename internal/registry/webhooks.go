package registry

// webhookTools covers Unipile webhook subscriptions.
func webhookTools() []Tool {
	return []Tool{
		{
			Name:        "list_webhooks",
			Description: "List registered webhooks.",
			Method:      "GET",
			Path:        "/webhooks",
			Params: []Param{
				limitParam(50, 250),
				cursorParam(),
			},
		},
		{
			Name:        "create_webhook",
			Description: "Register a webhook that receives events (new messages, emails, account status changes) for the given accounts.",
			Method:      "POST",
			Path:        "/webhooks",
			Params: []Param{
				{Name: "name", Type: TypeString, Description: "Webhook name", Required: true, In: InBody},
				{Name: "request_url", Type: TypeString, Description: "URL Unipile will POST events to", Required: true, In: InBody},
				{Name: "account_ids", Type: TypeArray, Description: "Account IDs to receive events for", Required: true, In: InBody},
				{Name: "events", Type: TypeArray, Description: "Event types to subscribe to (e.g. 'message_received')", Required: true, In: InBody},
				{Name: "format", Type: TypeString, Description: "Payload format", In: InBody, Default: "json", Enum: []string{"json", "xml"}},
				{Name: "headers", Type: TypeArray, Description: "Extra headers to send, as {key, value} objects", In: InBody},
			},
		},
		{
			Name:        "delete_webhook",
			Description: "Delete a registered webhook.",
			Method:      "DELETE",
			Path:        "/webhooks/{webhook_id}",
			Params: []Param{
				{Name: "webhook_id", Type: TypeString, Description: "The webhook ID to delete", Required: true, In: InPath},
			},
		},
	}
}
