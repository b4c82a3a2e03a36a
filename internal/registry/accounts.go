package registry

// accountTools covers Unipile account lifecycle: listing, connecting,
// reconnecting, sync control, and 2FA checkpoints.
func accountTools() []Tool {
	return []Tool{
		{
			Name:        "list_accounts",
			Description: "List all connected accounts (LinkedIn, WhatsApp, Email, etc.) with their IDs, types, and connection status.",
			Method:      "GET",
			Path:        "/accounts",
		},
		{
			Name:        "get_my_profile",
			Description: "Get the authenticated user's LinkedIn profile: name, headline, summary, experience, education, and skills.",
			Method:      "GET",
			Path:        "/users/me",
			Params:      []Param{linkedinAccountParam()},
		},
		{
			Name:        "get_account",
			Description: "Get details of a single connected account.",
			Method:      "GET",
			Path:        "/accounts/{account_id}",
			Params: []Param{
				{Name: "account_id", Type: TypeString, Description: "The account ID to retrieve", Required: true, In: InPath},
			},
		},
		{
			Name:        "connect_account",
			Description: "Connect a new account using native authentication (username/password). IMAP/SMTP settings apply to the CUSTOM_IMAP provider.",
			Method:      "POST",
			Path:        "/accounts",
			Params: []Param{
				{Name: "provider", Type: TypeString, Description: "Provider name (e.g. 'LINKEDIN', 'WHATSAPP', 'TELEGRAM', 'CUSTOM_IMAP')", Required: true, In: InBody},
				{Name: "username", Type: TypeString, Description: "Account username or email", Required: true, In: InBody},
				{Name: "password", Type: TypeString, Description: "Account password or app-specific password", Required: true, In: InBody},
				{Name: "imap_host", Type: TypeString, Description: "IMAP server host", In: InBody},
				{Name: "imap_port", Type: TypeNumber, Description: "IMAP server port", In: InBody},
				{Name: "smtp_host", Type: TypeString, Description: "SMTP server host", In: InBody},
				{Name: "smtp_port", Type: TypeNumber, Description: "SMTP server port", In: InBody},
			},
		},
		{
			Name:        "delete_account",
			Description: "Delete a connected account from Unipile.",
			Method:      "DELETE",
			Path:        "/accounts/{account_id}",
			Params: []Param{
				{Name: "account_id", Type: TypeString, Description: "The account ID to delete", Required: true, In: InPath},
			},
		},
		{
			Name:        "reconnect_account",
			Description: "Reconnect a disconnected account via hosted authentication. Returns a URL the user must open in a browser to re-authorize.",
			Method:      "POST",
			Path:        "/hosted/accounts/link",
			Params: []Param{
				{Name: "account_id", Type: TypeString, Description: "The account ID to reconnect", Required: true, In: InBody, Field: "reconnect_account"},
				{Name: "google_scopes", Type: TypeString, Description: "Optional comma-separated Google OAuth scope URLs (max 6)", In: InBody},
				{Name: "api_url", Type: TypeString, In: InBody, DefaultFrom: DefaultAPIOrigin, Hidden: true},
			},
			StaticBody: map[string]interface{}{
				"type":      "reconnect",
				"expiresOn": "2099-12-31T23:59:59.999Z",
			},
		},
		{
			Name:        "resync_account",
			Description: "Force a full resync of an account's data.",
			Method:      "GET",
			Path:        "/accounts/{account_id}/resync",
			Params: []Param{
				{Name: "account_id", Type: TypeString, Description: "The account ID to resync", Required: true, In: InPath},
			},
		},
		{
			Name:        "restart_account",
			Description: "Restart sync processes for an account.",
			Method:      "POST",
			Path:        "/accounts/{account_id}/restart",
			Params: []Param{
				{Name: "account_id", Type: TypeString, Description: "The account ID to restart", Required: true, In: InPath},
			},
		},
		{
			Name:        "solve_checkpoint",
			Description: "Solve a 2FA/checkpoint challenge during account connection.",
			Method:      "POST",
			Path:        "/accounts/checkpoint",
			Params: []Param{
				{Name: "account_id", Type: TypeString, Description: "The account ID requiring checkpoint", Required: true, In: InBody},
				{Name: "code", Type: TypeString, Description: "The verification/2FA code", Required: true, In: InBody},
				{Name: "provider", Type: TypeString, Description: "Provider name (e.g. 'LINKEDIN', 'WHATSAPP')", Required: true, In: InBody},
			},
		},
		{
			Name:        "resend_checkpoint",
			Description: "Resend a checkpoint/2FA verification code.",
			Method:      "POST",
			Path:        "/accounts/checkpoint/resend",
			Params: []Param{
				{Name: "account_id", Type: TypeString, Description: "The account ID requiring checkpoint", Required: true, In: InBody},
				{Name: "provider", Type: TypeString, Description: "Provider name (e.g. 'LINKEDIN', 'WHATSAPP')", Required: true, In: InBody},
			},
		},
	}
}
