package registry

// searchTools covers the LinkedIn search endpoint. Every search posts to
// /linkedin/search with a static api/category pair; filters travel in the
// request body, pagination included.
func searchTools() []Tool {
	return []Tool{
		{
			Name:        "search_people",
			Description: "Search for people on LinkedIn using the classic search API.",
			Method:      "POST",
			Path:        "/linkedin/search",
			Params: []Param{
				{Name: "keywords", Type: TypeString, Description: "Search keywords", In: InBody},
				{Name: "location", Type: TypeArray, Description: "Location filter IDs (from get_search_params)", In: InBody},
				{Name: "industry", Type: TypeArray, Description: "Industry filter IDs", In: InBody},
				{Name: "company", Type: TypeArray, Description: "Current company filter IDs", In: InBody},
				{Name: "past_company", Type: TypeArray, Description: "Past company filter IDs", In: InBody},
				{Name: "network_distance", Type: TypeArray, Description: "Connection degree filters (1, 2, 3)", In: InBody},
				{Name: "profile_language", Type: TypeArray, Description: "Profile language codes (e.g. 'en')", In: InBody},
				bodyLimitParam(25, 50),
				bodyCursorParam(),
				linkedinAccountParam(),
			},
			StaticBody: map[string]interface{}{"api": "classic", "category": "people"},
		},
		{
			Name:        "search_people_sales_nav",
			Description: "Search for people using Sales Navigator filters (requires a Sales Navigator subscription).",
			Method:      "POST",
			Path:        "/linkedin/search",
			Params: []Param{
				{Name: "keywords", Type: TypeString, Description: "Search keywords", In: InBody},
				{Name: "location", Type: TypeArray, Description: "Location filter IDs", In: InBody},
				{Name: "industry", Type: TypeArray, Description: "Industry filter IDs", In: InBody},
				{Name: "company", Type: TypeArray, Description: "Current company filter IDs", In: InBody},
				{Name: "past_company", Type: TypeArray, Description: "Past company filter IDs", In: InBody},
				{Name: "network_distance", Type: TypeArray, Description: "Connection degree filters (1, 2, 3)", In: InBody},
				{Name: "profile_language", Type: TypeArray, Description: "Profile language codes (e.g. 'en')", In: InBody},
				{Name: "seniority_level", Type: TypeArray, Description: "Seniority level filters", In: InBody},
				{Name: "function", Type: TypeArray, Description: "Job function filters", In: InBody},
				{Name: "company_headcount", Type: TypeArray, Description: "Company headcount ranges", In: InBody},
				{Name: "tenure", Type: TypeObject, Description: "Tenure filter (e.g. {\"min\": 2, \"max\": 5})", In: InBody},
				{Name: "changed_jobs", Type: TypeBoolean, Description: "Only people who changed jobs recently", In: InBody},
				{Name: "posted_on_linkedin", Type: TypeBoolean, Description: "Only people who posted recently", In: InBody},
				bodyLimitParam(25, 100),
				bodyCursorParam(),
				linkedinAccountParam(),
			},
			StaticBody: map[string]interface{}{"api": "sales_navigator", "category": "people"},
		},
		{
			Name:        "search_companies",
			Description: "Search for companies on LinkedIn.",
			Method:      "POST",
			Path:        "/linkedin/search",
			Params: []Param{
				{Name: "keywords", Type: TypeString, Description: "Search keywords", In: InBody},
				{Name: "industry", Type: TypeArray, Description: "Industry filter IDs", In: InBody},
				{Name: "location", Type: TypeArray, Description: "Location filter IDs", In: InBody},
				{Name: "headcount_min", Type: TypeNumber, Description: "Minimum company headcount", In: InBody},
				{Name: "headcount_max", Type: TypeNumber, Description: "Maximum company headcount", In: InBody},
				{Name: "has_job_offers", Type: TypeBoolean, Description: "Only companies with open job offers", In: InBody},
				bodyLimitParam(25, 50),
				bodyCursorParam(),
				linkedinAccountParam(),
			},
			StaticBody: map[string]interface{}{"api": "classic", "category": "companies"},
			Shape:      shapeHeadcount,
		},
		{
			Name:        "search_posts",
			Description: "Search for posts on LinkedIn.",
			Method:      "POST",
			Path:        "/linkedin/search",
			Params: []Param{
				{Name: "keywords", Type: TypeString, Description: "Search keywords", Required: true, In: InBody},
				{Name: "sort_by", Type: TypeString, Description: "Sort order", In: InBody, Enum: []string{"relevance", "date"}},
				{Name: "date_posted", Type: TypeString, Description: "Recency filter", In: InBody, Enum: []string{"past_day", "past_week", "past_month"}},
				{Name: "content_type", Type: TypeString, Description: "Restrict to a media type", In: InBody, Enum: []string{"videos", "images", "documents"}},
				bodyLimitParam(25, 50),
				bodyCursorParam(),
				linkedinAccountParam(),
			},
			StaticBody: map[string]interface{}{"api": "classic", "category": "posts"},
		},
		{
			Name:        "search_jobs",
			Description: "Search for job listings on LinkedIn.",
			Method:      "POST",
			Path:        "/linkedin/search",
			Params: []Param{
				{Name: "keywords", Type: TypeString, Description: "Search keywords (e.g. job title)", Required: true, In: InBody},
				{Name: "location", Type: TypeArray, Description: "Location filter IDs", In: InBody},
				{Name: "remote_policy", Type: TypeString, Description: "Workplace policy filter", In: InBody, Field: "remote", Enum: []string{"on_site", "remote", "hybrid"}},
				{Name: "sort_by", Type: TypeString, Description: "Sort order", In: InBody, Enum: []string{"relevance", "date"}},
				{Name: "minimum_salary", Type: TypeNumber, Description: "Minimum annual salary filter", In: InBody},
				bodyLimitParam(25, 50),
				bodyCursorParam(),
				linkedinAccountParam(),
			},
			StaticBody: map[string]interface{}{"api": "classic", "category": "jobs"},
		},
		{
			Name:        "get_search_params",
			Description: "Look up LinkedIn search filter IDs (locations, industries, companies) to use in search tools.",
			Method:      "GET",
			Path:        "/linkedin/search/parameters",
			Params: []Param{
				{Name: "param_type", Type: TypeString, Description: "Parameter type (e.g. 'LOCATION', 'INDUSTRY', 'COMPANY')", Required: true, In: InQuery, Field: "type", Uppercase: true},
				{Name: "query", Type: TypeString, Description: "Search text to match parameter names against", In: InQuery, Field: "q"},
				linkedinAccountParam(),
			},
		},
	}
}
