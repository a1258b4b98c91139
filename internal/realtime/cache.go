package realtime

// Record is one entry in a client-held local cache, keyed by its "id" field.
// Local caches are only caches: on any conflict the most recent
// server-confirmed state wins, and these reducers exist so clients can patch
// optimistic state from events instead of refetching.
type Record map[string]interface{}

// ID returns the record's identifier as a string, or "" if absent.
func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

// ApplyCreated prepends payload to records unless a record with the same id
// is already present. Applying the same created event twice is a no-op.
func ApplyCreated(records []Record, payload Record) []Record {
	id := payload.ID()
	if id == "" {
		return records
	}
	for _, r := range records {
		if r.ID() == id {
			return records
		}
	}

	out := make([]Record, 0, len(records)+1)
	out = append(out, payload)
	out = append(out, records...)
	return out
}

// ApplyUpdated merges payload fields into the matching record by id. If no
// record matches, the collection is returned unchanged: updates never insert.
func ApplyUpdated(records []Record, payload Record) []Record {
	id := payload.ID()
	if id == "" {
		return records
	}

	out := make([]Record, len(records))
	for i, r := range records {
		if r.ID() != id {
			out[i] = r
			continue
		}
		merged := make(Record, len(r)+len(payload))
		for k, v := range r {
			merged[k] = v
		}
		for k, v := range payload {
			merged[k] = v
		}
		out[i] = merged
	}
	return out
}

// ApplyDeleted removes the record with the given id; no-op if absent.
func ApplyDeleted(records []Record, id string) []Record {
	if id == "" {
		return records
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.ID() == id {
			continue
		}
		out = append(out, r)
	}
	return out
}
