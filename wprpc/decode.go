// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package wprpc

import (
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// timeLayouts are the date formats WordPress has been seen to send
// when a date arrives as a string rather than a dateTime.iso8601.
var timeLayouts = []string{
	"20060102T15:04:05",
	"20060102T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

var timeType = reflect.TypeOf(time.Time{})

// decode converts a generic XML-RPC response value (maps, slices,
// strings, numbers, times) into a typed record.  out must be a
// pointer.  Members not named in out's mapstructure tags are ignored.
func decode(in, out interface{}) error {
	config := mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			decodeBytesAsString,
			decodeStringAsTime,
			decodeFalseAsEmpty,
		),
		WeaklyTypedInput: true,
		Result:           out,
	}
	decoder, err := mapstructure.NewDecoder(&config)
	if err == nil {
		err = decoder.Decode(in)
	}
	return err
}

// decodeBytesAsString is a mapstructure decode hook that accepts a
// byte slice, as an XML-RPC base64 value decodes to, where a string
// is expected.
func decodeBytesAsString(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to.Kind() == reflect.String && from.Kind() == reflect.Slice && from.Elem().Kind() == reflect.Uint8 {
		return string(data.([]uint8)), nil
	}
	return data, nil
}

// decodeStringAsTime is a mapstructure decode hook that parses a
// string where a time.Time is expected.  An empty string is the zero
// time.
func decodeStringAsTime(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to != timeType || from.Kind() != reflect.String {
		return data, nil
	}
	s := data.(string)
	if s == "" {
		return time.Time{}, nil
	}
	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		t, err = time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return nil, err
}

// decodeFalseAsEmpty is a mapstructure decode hook for PHP's habit of
// returning false instead of an empty array or struct.
func decodeFalseAsEmpty(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.Bool || data.(bool) {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Map, reflect.Slice:
		return reflect.Zero(to).Interface(), nil
	}
	return data, nil
}
