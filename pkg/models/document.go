package models

import "encoding/json"

// Row maps a lower-cased column name to its decoded value. Values are int64,
// float64, string or nil.
type Row map[string]any

// Dataset is the ordered sequence of rows produced by one query.
type Dataset []Row

// Document maps query names to their datasets. It is the single JSON payload
// the static dashboard consumes.
type Document map[string]Dataset

// EncodeDocument renders a dashboard document as indented JSON.
func EncodeDocument(document Document) ([]byte, error) {
	if document == nil {
		document = Document{}
	}

	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}

// DecodeDocument parses a dashboard document previously produced by
// EncodeDocument. Numeric values come back as float64, which is all the
// dashboard distinguishes.
func DecodeDocument(data []byte) (Document, error) {
	document := Document{}
	err := json.Unmarshal(data, &document)
	if err != nil {
		return nil, err
	}

	return document, nil
}
