package graphql

import (
	"bytes"
	"encoding/json"
)

type Response struct {
	Data       json.RawMessage        `json:"data,omitempty"`
	Errors     ResponseErrors         `json:"errors,omitempty"`
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}

func (r Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func (r Response) HasErrors() bool {
	return len(r.Errors) > 0
}

// DecodeData decodes the data payload keeping numbers as json.Number.
// A missing payload decodes to nil.
func (r Response) DecodeData() (interface{}, error) {
	if len(r.Data) == 0 {
		return nil, nil
	}
	decoder := json.NewDecoder(bytes.NewReader(r.Data))
	decoder.UseNumber()
	var data interface{}
	if err := decoder.Decode(&data); err != nil {
		return nil, err
	}
	return data, nil
}
