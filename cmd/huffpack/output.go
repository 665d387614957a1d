package main

import (
	"encoding/json"

	prettyjson "github.com/hokaccha/go-prettyjson"
)

// writeJSON writes v to the output as a single JSON document
// followed by a newline.
func (s *session) writeJSON(v any) error {
	var (
		bs  []byte
		err error
	)
	if s.Config.Pretty {
		bs, err = s.prettyJSON(v)
	} else {
		bs, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	bs = append(bs, '\n')
	_, err = s.Output.Write(bs)
	return err
}

func (s *session) prettyJSON(v any) ([]byte, error) {
	// prettyjson writes object keys verbatim.
	// Keys that need escaping, like "\n" in a code table,
	// would make its output invalid JSON.
	if p, ok := v.(encodedPayload); ok && !plainKeys(p) {
		s.Log.Debug("code table has keys that need escaping: not highlighting output")
		return json.MarshalIndent(v, "", "  ")
	}

	f := prettyjson.NewFormatter()
	f.DisabledColor = !s.Color
	return f.Marshal(v)
}

// plainKeys reports whether every key of the payload's code table
// is written as-is inside a JSON string.
func plainKeys(p encodedPayload) bool {
	for r := range p.CodeTable {
		key := string(r)
		bs, err := json.Marshal(key)
		if err != nil || string(bs) != `"`+key+`"` {
			return false
		}
	}
	return true
}
