package registry

// jobTools covers LinkedIn job postings, applicants, hiring projects, and
// recruiter actions.
func jobTools() []Tool {
	return []Tool{
		{
			Name:        "list_jobs",
			Description: "List job postings managed by the authenticated LinkedIn account.",
			Method:      "GET",
			Path:        "/linkedin/jobs",
			Params: []Param{
				limitParam(50, 250),
				cursorParam(),
				linkedinAccountParam(),
			},
		},
		{
			Name:        "get_job",
			Description: "Get details of a job posting.",
			Method:      "GET",
			Path:        "/linkedin/jobs/{job_id}",
			Params: []Param{
				{Name: "job_id", Type: TypeString, Description: "The job posting ID", Required: true, In: InPath},
				linkedinAccountParam(),
			},
		},
		{
			Name:        "create_job",
			Description: "Create a draft job posting. Use publish_job to make it live.",
			Method:      "POST",
			Path:        "/linkedin/jobs",
			Params: []Param{
				{Name: "title", Type: TypeString, Description: "Job title", Required: true, In: InBody},
				{Name: "description", Type: TypeString, Description: "Job description", Required: true, In: InBody},
				{Name: "location", Type: TypeString, Description: "Job location", Required: true, In: InBody},
				{Name: "company_id", Type: TypeString, Description: "The hiring company's LinkedIn ID", Required: true, In: InBody},
				linkedinAccountParam(),
			},
		},
		{
			Name:        "edit_job",
			Description: "Edit a job posting. Only supplied fields change.",
			Method:      "PATCH",
			Path:        "/linkedin/jobs/{job_id}",
			Params: []Param{
				{Name: "job_id", Type: TypeString, Description: "The job posting ID", Required: true, In: InPath},
				{Name: "title", Type: TypeString, Description: "New job title", In: InBody},
				{Name: "description", Type: TypeString, Description: "New job description", In: InBody},
				{Name: "location", Type: TypeString, Description: "New job location", In: InBody},
				linkedinAccountParam(),
			},
		},
		{
			Name:        "publish_job",
			Description: "Publish a draft job posting.",
			Method:      "POST",
			Path:        "/linkedin/jobs/{job_id}/publish",
			Params: []Param{
				{Name: "job_id", Type: TypeString, Description: "The draft job posting ID", Required: true, In: InPath},
				linkedinAccountParam(),
			},
		},
		{
			Name:        "close_job",
			Description: "Close a published job posting.",
			Method:      "POST",
			Path:        "/linkedin/jobs/{job_id}/close",
			Params: []Param{
				{Name: "job_id", Type: TypeString, Description: "The job posting ID to close", Required: true, In: InPath},
				linkedinAccountParam(),
			},
		},
		{
			Name:        "get_job_applicants",
			Description: "List applicants for a job posting.",
			Method:      "GET",
			Path:        "/linkedin/jobs/{job_id}/applicants",
			Params: []Param{
				{Name: "job_id", Type: TypeString, Description: "The job posting ID", Required: true, In: InPath},
				limitParam(50, 250),
				cursorParam(),
				linkedinAccountParam(),
			},
		},
		{
			Name:        "get_job_applicant",
			Description: "Get details of a single job applicant.",
			Method:      "GET",
			Path:        "/linkedin/jobs/applicants/{applicant_id}",
			Params: []Param{
				{Name: "applicant_id", Type: TypeString, Description: "The applicant ID", Required: true, In: InPath},
				{Name: "service", Type: TypeString, Description: "LinkedIn service to query", In: InQuery, Enum: []string{"LINKEDIN", "LINKEDIN_RECRUITER"}},
				linkedinAccountParam(),
			},
		},
		{
			Name:        "get_applicant_resume",
			Description: "Download an applicant's resume. Returns {content_type, size_bytes, data_base64}.",
			Method:      "GET",
			Path:        "/linkedin/jobs/{job_id}/applicants/{applicant_id}/resume",
			Params: []Param{
				{Name: "job_id", Type: TypeString, Description: "The job posting ID", Required: true, In: InPath},
				{Name: "applicant_id", Type: TypeString, Description: "The applicant ID", Required: true, In: InPath},
				linkedinAccountParam(),
			},
			Binary: true,
		},
		{
			Name:        "get_hiring_projects",
			Description: "List LinkedIn Recruiter hiring projects.",
			Method:      "GET",
			Path:        "/linkedin/projects",
			Params: []Param{
				limitParam(50, 250),
				cursorParam(),
				linkedinAccountParam(),
			},
		},
		{
			Name:        "get_hiring_project",
			Description: "Get details of a LinkedIn Recruiter hiring project.",
			Method:      "GET",
			Path:        "/linkedin/projects/{project_id}",
			Params: []Param{
				{Name: "project_id", Type: TypeString, Description: "The hiring project ID", Required: true, In: InPath},
				linkedinAccountParam(),
			},
		},
		{
			Name:        "perform_linkedin_action",
			Description: "Perform an action on a LinkedIn user: follow, unfollow, block, unblock, or save/remove as a Recruiter lead.",
			Method:      "POST",
			Path:        "/linkedin/user/{user_id}",
			Params: []Param{
				{Name: "user_id", Type: TypeString, Description: "The target user's provider ID", Required: true, In: InPath},
				{Name: "action", Type: TypeString, Description: "The action to perform", Required: true, In: InBody,
					Enum: []string{"follow", "unfollow", "block", "unblock", "saveLead", "removeLead"}},
				{Name: "api", Type: TypeString, Description: "LinkedIn API surface to use", In: InBody, Default: "LINKEDIN", Enum: []string{"LINKEDIN", "LINKEDIN_RECRUITER"}},
				linkedinAccountParam(),
			},
		},
		{
			Name:        "solve_job_checkpoint",
			Description: "Solve a verification checkpoint raised while publishing a job posting.",
			Method:      "POST",
			Path:        "/linkedin/jobs/{draft_id}/checkpoint",
			Params: []Param{
				{Name: "draft_id", Type: TypeString, Description: "The draft job posting ID", Required: true, In: InPath},
				{Name: "input_value", Type: TypeString, Description: "The checkpoint answer (e.g. verification code)", Required: true, In: InBody, Field: "input"},
				linkedinAccountParam(),
			},
		},
	}
}
