package registry

// calendarTools covers calendars and events for the configured email
// account. Event start/end times are flattened in the tool schema and
// reshaped into nested objects on the wire.
func calendarTools() []Tool {
	return []Tool{
		{
			Name:        "list_calendars",
			Description: "List calendars for an email account.",
			Method:      "GET",
			Path:        "/calendars",
			Params:      []Param{emailAccountParam()},
		},
		{
			Name:        "get_calendar",
			Description: "Get details of a specific calendar.",
			Method:      "GET",
			Path:        "/calendars/{calendar_id}",
			Params: []Param{
				{Name: "calendar_id", Type: TypeString, Description: "The calendar ID", Required: true, In: InPath},
				emailAccountParam(),
			},
		},
		{
			Name:        "list_events",
			Description: "List events from a calendar.",
			Method:      "GET",
			Path:        "/calendars/{calendar_id}/events",
			Params: []Param{
				{Name: "calendar_id", Type: TypeString, Description: "The calendar ID", Required: true, In: InPath},
				limitParam(50, 250),
				cursorParam(),
				emailAccountParam(),
			},
		},
		{
			Name:        "create_event",
			Description: "Create a calendar event. Times use ISO8601 date-times with IANA time zone names.",
			Method:      "POST",
			Path:        "/calendars/{calendar_id}/events",
			Params: []Param{
				{Name: "calendar_id", Type: TypeString, Description: "The calendar ID", Required: true, In: InPath},
				{Name: "title", Type: TypeString, Description: "Event title", Required: true, In: InBody},
				{Name: "start_date_time", Type: TypeString, Description: "Start date-time (ISO8601, e.g. '2026-09-01T10:00:00')", Required: true, In: InBody},
				{Name: "start_time_zone", Type: TypeString, Description: "Start time zone (IANA, e.g. 'Europe/Paris')", Required: true, In: InBody},
				{Name: "end_date_time", Type: TypeString, Description: "End date-time (ISO8601)", Required: true, In: InBody},
				{Name: "end_time_zone", Type: TypeString, Description: "End time zone (IANA)", Required: true, In: InBody},
				{Name: "body", Type: TypeString, Description: "Event description", In: InBody},
				{Name: "location", Type: TypeString, Description: "Event location", In: InBody},
				{Name: "attendees", Type: TypeArray, Description: "Attendee email addresses", In: InBody},
				{Name: "recurrence", Type: TypeArray, Description: "RRULE recurrence strings", In: InBody},
				{Name: "conference", Type: TypeObject, Description: "Conference settings (e.g. {\"provider\": \"googleMeet\"})", In: InBody},
				{Name: "notify", Type: TypeBoolean, Description: "Whether to notify attendees (default true)", In: InBody},
				{Name: "visibility", Type: TypeString, Description: "Event visibility", In: InBody, Enum: []string{"default", "public", "private"}},
				{Name: "transparency", Type: TypeString, Description: "Whether the event blocks time", In: InBody, Enum: []string{"opaque", "transparent"}},
				emailAccountParam(),
			},
			Shape: shapeEventTimes,
		},
		{
			Name:        "get_event",
			Description: "Get a specific calendar event.",
			Method:      "GET",
			Path:        "/calendars/{calendar_id}/events/{event_id}",
			Params: []Param{
				{Name: "calendar_id", Type: TypeString, Description: "The calendar ID", Required: true, In: InPath},
				{Name: "event_id", Type: TypeString, Description: "The event ID", Required: true, In: InPath},
				emailAccountParam(),
			},
		},
		{
			Name:        "edit_event",
			Description: "Edit a calendar event. Only supplied fields change.",
			Method:      "PATCH",
			Path:        "/calendars/{calendar_id}/events/{event_id}",
			Params: []Param{
				{Name: "calendar_id", Type: TypeString, Description: "The calendar ID", Required: true, In: InPath},
				{Name: "event_id", Type: TypeString, Description: "The event ID to edit", Required: true, In: InPath},
				{Name: "title", Type: TypeString, Description: "New event title", In: InBody},
				{Name: "start_date_time", Type: TypeString, Description: "New start date-time (ISO8601)", In: InBody},
				{Name: "start_time_zone", Type: TypeString, Description: "New start time zone (IANA)", In: InBody},
				{Name: "end_date_time", Type: TypeString, Description: "New end date-time (ISO8601)", In: InBody},
				{Name: "end_time_zone", Type: TypeString, Description: "New end time zone (IANA)", In: InBody},
				{Name: "body", Type: TypeString, Description: "New event description", In: InBody},
				{Name: "location", Type: TypeString, Description: "New event location", In: InBody},
				{Name: "attendees", Type: TypeArray, Description: "New attendee email addresses", In: InBody},
				{Name: "visibility", Type: TypeString, Description: "Event visibility", In: InBody, Enum: []string{"default", "public", "private"}},
				{Name: "transparency", Type: TypeString, Description: "Whether the event blocks time", In: InBody, Enum: []string{"opaque", "transparent"}},
				emailAccountParam(),
			},
			Shape: shapeEventTimes,
		},
		{
			Name:        "delete_event",
			Description: "Delete a calendar event.",
			Method:      "DELETE",
			Path:        "/calendars/{calendar_id}/events/{event_id}",
			Params: []Param{
				{Name: "calendar_id", Type: TypeString, Description: "The calendar ID", Required: true, In: InPath},
				{Name: "event_id", Type: TypeString, Description: "The event ID to delete", Required: true, In: InPath},
				emailAccountParam(),
			},
		},
	}
}
