package registry

// Body reshapers. Tool schemas stay flat so agents can fill them easily;
// these rewrite the resolved body into the nested wire format the Unipile
// API expects.

// identifierList converts a list of plain addresses into the wire form
// [{"identifier": addr}, ...].
func identifierList(v interface{}) interface{} {
	items, ok := v.([]interface{})
	if !ok {
		return v
	}
	out := make([]interface{}, 0, len(items))
	for _, item := range items {
		out = append(out, map[string]interface{}{"identifier": item})
	}
	return out
}

func shapeRecipients(body map[string]interface{}) {
	for _, key := range []string{"to", "cc", "bcc"} {
		if v, ok := body[key]; ok {
			body[key] = identifierList(v)
		}
	}
}

// shapeEmailSend rewrites recipients, reply threading, and tracking flags
// for POST /emails. tracking_options is only sent when opens or links
// tracking is enabled; the label rides along inside it.
func shapeEmailSend(body map[string]interface{}) {
	shapeRecipients(body)

	if v, ok := body["reply_to"]; ok {
		delete(body, "reply_to")
		body["in_reply_to"] = v
	}

	opens, _ := body["track_opens"].(bool)
	links, _ := body["track_links"].(bool)
	label, hasLabel := body["tracking_label"]
	delete(body, "track_opens")
	delete(body, "track_links")
	delete(body, "tracking_label")

	if opens || links {
		tracking := map[string]interface{}{}
		if opens {
			tracking["opens"] = true
		}
		if links {
			tracking["links"] = true
		}
		if hasLabel {
			tracking["label"] = label
		}
		body["tracking_options"] = tracking
	}
}

// shapeEmailDraft rewrites recipients for POST /emails/drafts.
func shapeEmailDraft(body map[string]interface{}) {
	shapeRecipients(body)
}

// shapeEventTimes nests the flat start/end date-time and time-zone fields
// into the {date_time, time_zone} objects calendar endpoints expect. The
// notify flag is only sent when explicitly false; the API default is true.
func shapeEventTimes(body map[string]interface{}) {
	nest := func(dtKey, tzKey, target string) {
		dt, hasDT := body[dtKey]
		tz, hasTZ := body[tzKey]
		if !hasDT && !hasTZ {
			return
		}
		obj := map[string]interface{}{}
		if hasDT {
			delete(body, dtKey)
			obj["date_time"] = dt
		}
		if hasTZ {
			delete(body, tzKey)
			obj["time_zone"] = tz
		}
		body[target] = obj
	}
	nest("start_date_time", "start_time_zone", "start")
	nest("end_date_time", "end_time_zone", "end")

	if v, ok := body["notify"]; ok {
		if b, isBool := v.(bool); !isBool || b {
			delete(body, "notify")
		}
	}
}

// shapeHeadcount nests headcount_min/headcount_max into a headcount
// {min, max} object for company search.
func shapeHeadcount(body map[string]interface{}) {
	mn, hasMin := body["headcount_min"]
	mx, hasMax := body["headcount_max"]
	if !hasMin && !hasMax {
		return
	}
	obj := map[string]interface{}{}
	if hasMin {
		delete(body, "headcount_min")
		obj["min"] = mn
	}
	if hasMax {
		delete(body, "headcount_max")
		obj["max"] = mx
	}
	body["headcount"] = obj
}
