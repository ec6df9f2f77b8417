package plan

import "encoding/json"

// NormalizedItinerary is the structured form of an AI planning response.
// Each section holds parsed JSON when the field could be decoded, or the
// field's original string when it could not. RawResponse is set only when
// the whole payload resisted parsing, so the caller can still render
// something instead of losing the response.
type NormalizedItinerary struct {
	Itinerary           interface{} `json:"itinerary,omitempty"`
	HotelOptions        interface{} `json:"hotel_options,omitempty"`
	VisaInfo            interface{} `json:"visa_info,omitempty"`
	CulturalDifferences interface{} `json:"cultural_differences,omitempty"`
	LocalTips           interface{} `json:"local_tips,omitempty"`
	RawResponse         string      `json:"raw_response,omitempty"`
}

// HasStructuredContent reports whether at least one section parsed.
func (n *NormalizedItinerary) HasStructuredContent() bool {
	return n.Itinerary != nil ||
		n.HotelOptions != nil ||
		n.VisaInfo != nil ||
		n.CulturalDifferences != nil ||
		n.LocalTips != nil
}

// NormalizeAIResponse converts a raw AI planning response into a
// NormalizedItinerary. It accepts both the current shape, a JSON document
// with top-level sections, and the legacy shape where the document arrives
// double-encoded as a JSON string. Individual sections may themselves be
// JSON-encoded strings and are unwrapped one level. A section that fails
// to parse keeps its string form rather than failing the whole response.
func NormalizeAIResponse(raw string) *NormalizedItinerary {
	doc, ok := parseDocument([]byte(raw))
	if !ok {
		return &NormalizedItinerary{RawResponse: raw}
	}

	n := &NormalizedItinerary{
		Itinerary:           sectionValue(doc, "itinerary"),
		HotelOptions:        sectionValue(doc, "hotelOptions", "hotel_options"),
		VisaInfo:            sectionValue(doc, "visaInfo", "visa_info"),
		CulturalDifferences: sectionValue(doc, "culturalDifferences", "cultural_differences"),
		LocalTips:           sectionValue(doc, "localTips", "local_tips"),
	}

	if !n.HasStructuredContent() {
		n.RawResponse = raw
	}

	return n
}

// parseDocument decodes the payload into a keyed document, unwrapping the
// legacy string-encoded variant when needed.
func parseDocument(data []byte) (map[string]json.RawMessage, bool) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, true
	}

	var wrapped string
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, false
	}
	if err := json.Unmarshal([]byte(wrapped), &doc); err != nil {
		return nil, false
	}
	return doc, true
}

func sectionValue(doc map[string]json.RawMessage, keys ...string) interface{} {
	for _, key := range keys {
		raw, ok := doc[key]
		if !ok {
			continue
		}
		return coerceSection(raw)
	}
	return nil
}

// coerceSection decodes one section. String sections get a second decode
// attempt in case they carry nested JSON; when that fails the string is
// kept as-is.
func coerceSection(raw json.RawMessage) interface{} {
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return string(raw)
	}

	str, ok := value.(string)
	if !ok {
		return value
	}

	var nested interface{}
	if err := json.Unmarshal([]byte(str), &nested); err != nil {
		return str
	}
	switch nested.(type) {
	case map[string]interface{}, []interface{}:
		return nested
	default:
		return str
	}
}
