package models

import "github.com/mitchellh/mapstructure"

// Decode fills out from a raw JSON document, reading field names from json tags.
func Decode(document interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(document)
}
