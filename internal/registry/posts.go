package registry

// postTools covers LinkedIn posts, comments, and reactions.
func postTools() []Tool {
	return []Tool{
		{
			Name:        "get_post",
			Description: "Get a LinkedIn post by ID.",
			Method:      "GET",
			Path:        "/posts/{post_id}",
			Params: []Param{
				{Name: "post_id", Type: TypeString, Description: "The post ID or URN", Required: true, In: InPath},
				linkedinAccountParam(),
			},
		},
		{
			Name:        "create_post",
			Description: "Publish a new LinkedIn post from the authenticated user.",
			Method:      "POST",
			Path:        "/posts",
			Params: []Param{
				{Name: "text", Type: TypeString, Description: "The post content", Required: true, In: InBody},
				linkedinAccountParam(),
			},
		},
		{
			Name:        "list_post_comments",
			Description: "List comments on a LinkedIn post.",
			Method:      "GET",
			Path:        "/posts/{post_id}/comments",
			Params: []Param{
				{Name: "post_id", Type: TypeString, Description: "The post ID or URN", Required: true, In: InPath},
				limitParam(50, 250),
				cursorParam(),
				linkedinAccountParam(),
			},
		},
		{
			Name:        "comment_on_post",
			Description: "Add a comment to a LinkedIn post.",
			Method:      "POST",
			Path:        "/posts/{post_id}/comments",
			Params: []Param{
				{Name: "post_id", Type: TypeString, Description: "The post ID or URN", Required: true, In: InPath},
				{Name: "text", Type: TypeString, Description: "The comment content", Required: true, In: InBody},
				linkedinAccountParam(),
			},
		},
		{
			Name:        "react_to_post",
			Description: "React to a LinkedIn post.",
			Method:      "POST",
			Path:        "/posts/{post_id}/reactions",
			Params: []Param{
				{Name: "post_id", Type: TypeString, Description: "The post ID or URN", Required: true, In: InPath},
				{Name: "reaction_type", Type: TypeString, Description: "Reaction type", In: InBody, Default: "LIKE",
					Enum: []string{"LIKE", "CELEBRATE", "SUPPORT", "FUNNY", "LOVE", "INSIGHTFUL", "CURIOUS"}},
				linkedinAccountParam(),
			},
		},
		{
			Name:        "list_post_reactions",
			Description: "List reactions on a LinkedIn post.",
			Method:      "GET",
			Path:        "/posts/{post_id}/reactions",
			Params: []Param{
				{Name: "post_id", Type: TypeString, Description: "The post ID or URN", Required: true, In: InPath},
				limitParam(50, 250),
				cursorParam(),
				linkedinAccountParam(),
			},
		},
	}
}
