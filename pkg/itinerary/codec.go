package itinerary

import "encoding/json"

// Marshal encodes the document in its canonical compact JSON shape.
func Marshal(d Document) ([]byte, error) {
	return json.Marshal(d)
}

// MarshalIndent encodes the document pretty-printed for export.
func MarshalIndent(d Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Unmarshal decodes and normalizes a document.
func Unmarshal(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, err
	}
	d.Normalize()
	return d, nil
}
