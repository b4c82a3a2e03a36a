package registry

// emailTools covers mail folders, messages, drafts, and contacts for the
// configured email account.
func emailTools() []Tool {
	return []Tool{
		{
			Name:        "list_email_folders",
			Description: "List email folders (inbox, sent, drafts, etc.) for an email account.",
			Method:      "GET",
			Path:        "/folders",
			Params:      []Param{emailAccountParam()},
		},
		{
			Name:        "get_email_folder",
			Description: "Get details of a specific email folder.",
			Method:      "GET",
			Path:        "/folders/{folder_id}",
			Params: []Param{
				{Name: "folder_id", Type: TypeString, Description: "The folder ID", Required: true, In: InPath},
				emailAccountParam(),
			},
		},
		{
			Name:        "list_emails",
			Description: "List emails from an email account with optional folder, sender, and recipient filters.",
			Method:      "GET",
			Path:        "/emails",
			Params: []Param{
				emailAccountParam(),
				limitParam(100, 250),
				{Name: "after", Type: TypeString, Description: "Only emails after this ISO8601 datetime", In: InQuery},
				{Name: "folder", Type: TypeString, Description: "Folder to list from (e.g. 'INBOX')", In: InQuery},
				{Name: "sender", Type: TypeString, Description: "Filter by sender email address", In: InQuery},
				{Name: "recipient", Type: TypeString, Description: "Filter by recipient email address", In: InQuery},
			},
		},
		{
			Name:        "get_email",
			Description: "Get a specific email by ID, including its full body.",
			Method:      "GET",
			Path:        "/emails/{email_id}",
			Params: []Param{
				{Name: "email_id", Type: TypeString, Description: "The email ID", Required: true, In: InPath},
			},
		},
		{
			Name:        "send_email",
			Description: "Send an email. Supports cc/bcc, reply threading, and open/link tracking.",
			Method:      "POST",
			Path:        "/emails",
			Params: []Param{
				{Name: "to", Type: TypeArray, Description: "Recipient email addresses", Required: true, In: InBody},
				{Name: "subject", Type: TypeString, Description: "Email subject line", Required: true, In: InBody},
				{Name: "body", Type: TypeString, Description: "Email body (HTML or plain text)", Required: true, In: InBody},
				{Name: "cc", Type: TypeArray, Description: "CC email addresses", In: InBody},
				{Name: "bcc", Type: TypeArray, Description: "BCC email addresses", In: InBody},
				{Name: "reply_to", Type: TypeString, Description: "Email ID to reply to (threads the message)", In: InBody},
				{Name: "track_opens", Type: TypeBoolean, Description: "Track when the email is opened", In: InBody},
				{Name: "track_links", Type: TypeBoolean, Description: "Track link clicks in the email", In: InBody},
				{Name: "tracking_label", Type: TypeString, Description: "Custom label for tracking events", In: InBody},
				emailAccountParam(),
			},
			Shape: shapeEmailSend,
		},
		{
			Name:        "update_email",
			Description: "Update an email's read/starred state or move it to another folder.",
			Method:      "PUT",
			Path:        "/emails/{email_id}",
			Params: []Param{
				{Name: "email_id", Type: TypeString, Description: "The email ID to update", Required: true, In: InPath},
				{Name: "read", Type: TypeBoolean, Description: "Mark as read (true) or unread (false)", In: InBody},
				{Name: "starred", Type: TypeBoolean, Description: "Star (true) or unstar (false)", In: InBody},
				{Name: "folder", Type: TypeString, Description: "Move to this folder", In: InBody},
			},
		},
		{
			Name:        "delete_email",
			Description: "Delete an email.",
			Method:      "DELETE",
			Path:        "/emails/{email_id}",
			Params: []Param{
				{Name: "email_id", Type: TypeString, Description: "The email ID to delete", Required: true, In: InPath},
			},
		},
		{
			Name:        "get_email_attachment",
			Description: "Download an email attachment. Returns {content_type, size_bytes, data_base64}.",
			Method:      "GET",
			Path:        "/emails/{email_id}/attachments/{attachment_id}",
			Params: []Param{
				{Name: "email_id", Type: TypeString, Description: "The email ID", Required: true, In: InPath},
				{Name: "attachment_id", Type: TypeString, Description: "The attachment ID", Required: true, In: InPath},
			},
			Binary: true,
		},
		{
			Name:        "create_email_draft",
			Description: "Create an email draft without sending it.",
			Method:      "POST",
			Path:        "/emails/drafts",
			Params: []Param{
				{Name: "to", Type: TypeArray, Description: "Recipient email addresses", Required: true, In: InBody},
				{Name: "subject", Type: TypeString, Description: "Email subject line", Required: true, In: InBody},
				{Name: "body", Type: TypeString, Description: "Email body (HTML or plain text)", Required: true, In: InBody},
				{Name: "cc", Type: TypeArray, Description: "CC email addresses", In: InBody},
				{Name: "bcc", Type: TypeArray, Description: "BCC email addresses", In: InBody},
				emailAccountParam(),
			},
			Shape: shapeEmailDraft,
		},
		{
			Name:        "list_email_contacts",
			Description: "List contacts derived from email history.",
			Method:      "GET",
			Path:        "/emails/contacts",
			Params: []Param{
				limitParam(50, 250),
				cursorParam(),
				emailAccountParam(),
			},
		},
	}
}
