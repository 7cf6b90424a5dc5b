package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnmarshalJSON decodes a usage profile without failing on malformed
// fields. Numbers may arrive as numeric strings; anything that cannot be
// interpreted falls back to the field's default. Only a document that is
// not a JSON object at all is rejected.
func (p *UsageProfile) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := UsageProfile{}

	for _, item := range rawList(raw["vehicles"]) {
		fields := rawObject(item)
		if fields == nil {
			continue
		}
		out.Vehicles = append(out.Vehicles, Vehicle{
			Make:          lenientString(fields["make"]),
			Model:         lenientString(fields["model"]),
			Year:          lenientString(fields["year"]),
			Length:        lenientFloat(fields["length"]),
			Width:         lenientFloat(fields["width"]),
			MustFitInside: lenientBool(fields["must_fit_inside"]),
		})
	}

	for _, item := range rawList(raw["storage_categories"]) {
		fields := rawObject(item)
		if fields == nil {
			continue
		}
		out.StorageCategories = append(out.StorageCategories, StorageCategory{
			Name:               lenientString(fields["name"]),
			NeedsAccessibility: AccessFrequency(strings.ToLower(lenientString(fields["needs_accessibility"]))),
		})
	}

	for _, item := range rawList(raw["work_activities"]) {
		fields := rawObject(item)
		if fields == nil {
			continue
		}
		out.WorkActivities = append(out.WorkActivities, WorkActivity{
			Name:        lenientString(fields["name"]),
			SpaceNeeded: SpaceNeed(strings.ToLower(lenientString(fields["space_needed"]))),
		})
	}

	if prios := rawObject(raw["priorities"]); prios != nil {
		out.Priorities = make(map[string]int, len(prios))
		for k, v := range prios {
			if n, ok := parseLenientInt(v); ok {
				out.Priorities[k] = n
			}
		}
	}

	if prefs := rawObject(raw["preferences"]); prefs != nil {
		out.Preferences = make(map[string]bool, len(prefs))
		for k, v := range prefs {
			if b, ok := parseLenientBool(v); ok {
				out.Preferences[k] = b
			}
		}
	}

	out.Notes = lenientString(raw["notes"])

	*p = out
	return nil
}

// UnmarshalYAML applies the same lenient rules to a YAML profile by
// routing the decoded document through UnmarshalJSON.
func (p *UsageProfile) UnmarshalYAML(value *yaml.Node) error {
	var generic any
	if err := value.Decode(&generic); err != nil {
		return err
	}
	data, err := json.Marshal(generic)
	if err != nil {
		return fmt.Errorf("failed to convert profile: %w", err)
	}
	return p.UnmarshalJSON(data)
}

// absent reports whether a field is missing or explicitly null. Empty
// YAML values arrive here as null.
func absent(data json.RawMessage) bool {
	return len(data) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func rawList(data json.RawMessage) []json.RawMessage {
	if absent(data) {
		return nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(data, &list); err != nil {
		return nil
	}
	return list
}

func rawObject(data json.RawMessage) map[string]json.RawMessage {
	if absent(data) {
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	return obj
}

// lenientString accepts strings and numbers ("year": 2021).
func lenientString(data json.RawMessage) string {
	if absent(data) {
		return ""
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		return n.String()
	}
	return ""
}

// lenientFloat accepts numbers and length strings such as "231" or 19' 3".
func lenientFloat(data json.RawMessage) float64 {
	if absent(data) {
		return 0
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		return f
	}
	if f, err := ParseLength(lenientString(data)); err == nil {
		return f
	}
	return 0
}

func parseLenientInt(data json.RawMessage) (int, bool) {
	if absent(data) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		return int(f), true
	}
	if n, err := strconv.Atoi(lenientString(data)); err == nil {
		return n, true
	}
	return 0, false
}

func lenientBool(data json.RawMessage) bool {
	b, _ := parseLenientBool(data)
	return b
}

func parseLenientBool(data json.RawMessage) (bool, bool) {
	if absent(data) {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		return b, true
	}
	switch strings.ToLower(lenientString(data)) {
	case "true", "yes", "y", "1":
		return true, true
	case "false", "no", "n", "0":
		return false, true
	}
	return false, false
}
