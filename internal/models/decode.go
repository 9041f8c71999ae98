package models

import (
	"encoding/json"
	"strings"
)

// SizeEntry is one key of a decoded SizeBreakdown object, in document order.
// Order matters: expanded lines must come out in the order the frontend
// wrote the sizes.
type SizeEntry struct {
	Label string
	Raw   json.RawMessage
}

// DecodeSizeBreakdown parses a JSON-encoded object into ordered entries.
// Malformed or empty input yields nil, never an error; the quote tables carry
// several optionally-JSON text columns and a bad value in one of them must
// not fail the whole transformation.
func DecodeSizeBreakdown(raw string) []SizeEntry {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil
	}
	var entries []SizeEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil
		}
		entries = append(entries, SizeEntry{Label: key, Raw: value})
	}
	return entries
}

// DecodeLogoSpecsOrEmpty parses a JSON-encoded LogoSpecs array, returning nil
// on malformed input.
func DecodeLogoSpecsOrEmpty(raw string) []LogoSpec {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var specs []LogoSpec
	if err := json.Unmarshal([]byte(raw), &specs); err != nil {
		return nil
	}
	return specs
}

// DecodeStringListOrWrap parses a JSON-encoded string array. A plain
// non-JSON string is wrapped as a one-element list; empty input yields nil.
// ImportNotes and DesignNumbers are stored either way depending on which
// frontend version wrote them.
func DecodeStringListOrWrap(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return list
	}
	return []string{raw}
}

// DecodeQuantity interprets one value from a size-breakdown map as a
// quantity. Numbers and numeric strings both occur; anything else counts as
// zero and is skipped by the caller.
func DecodeQuantity(raw json.RawMessage) float64 {
	var f FlexFloat
	if err := f.UnmarshalJSON(raw); err != nil {
		return 0
	}
	return f.Float64()
}
