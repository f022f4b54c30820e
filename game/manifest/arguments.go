package manifest

import (
	"bytes"
	"encoding/json"
)

// structuredArguments is the wire shape of the "arguments" block shared by
// generations 5 and 6.
type structuredArguments struct {
	Game []argumentJSON `json:"game"`
	JVM  []argumentJSON `json:"jvm"`
}

func (s *structuredArguments) unified() ArgumentSet {
	return StructuredArguments(argumentsUnified(s.Game), argumentsUnified(s.JVM))
}

func argumentsUnified(args []argumentJSON) []Argument {
	out := make([]Argument, 0, len(args))
	for _, a := range args {
		if a.isPlain {
			out = append(out, PlainArgument(a.plain))
			continue
		}
		out = append(out, ConditionalArgument(fullRulesUnified(a.rules), a.value.values...))
	}
	return out
}

// argumentJSON is the untagged union of a bare string and a rule-guarded
// value object. The original wire form is remembered so the document
// round-trips without changing shape.
type argumentJSON struct {
	plain   string
	isPlain bool
	rules   []fullRule
	value   oneOrMany
}

type conditionalArgumentJSON struct {
	Rules []fullRule `json:"rules"`
	Value oneOrMany  `json:"value"`
}

func (a *argumentJSON) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		a.isPlain = true
		return json.Unmarshal(data, &a.plain)
	}

	var obj conditionalArgumentJSON
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&obj); err != nil {
		return err
	}

	a.isPlain = false
	a.rules = obj.Rules
	a.value = obj.Value
	return nil
}

func (a argumentJSON) MarshalJSON() ([]byte, error) {
	if a.isPlain {
		return json.Marshal(a.plain)
	}
	return json.Marshal(conditionalArgumentJSON{Rules: a.rules, Value: a.value})
}

// oneOrMany is a string-or-array-of-strings value. Whether the document
// used the single form is preserved for serialization.
type oneOrMany struct {
	values []string
	single bool
}

func (v *oneOrMany) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v.values = []string{s}
		v.single = true
		return nil
	}

	v.single = false
	return json.Unmarshal(data, &v.values)
}

func (v oneOrMany) MarshalJSON() ([]byte, error) {
	if v.single && len(v.values) == 1 {
		return json.Marshal(v.values[0])
	}
	return json.Marshal(v.values)
}
