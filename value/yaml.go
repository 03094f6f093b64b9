package value

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAML mapping
//
// Scalars map to Int, Float, Bool, String and Null as YAML resolves them.
// A sequence whose items all share one primitive kind becomes the matching
// typed list; any other sequence becomes a ListAny. Mappings become
// Structs. Ranges are written as tagged scalars (!Range 1..5 or
// !Range 1.<5). A kind tag such as !ListAny, !FloatList or !String forces
// the decoded value through a cast to that kind.

const rangeTag = "!Range"

// FromYAML decodes a YAML document into a Value.
func FromYAML(data []byte) (Value, error) {
	var v Value
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Null(), err
	}
	return v, nil
}

// ToYAML encodes a Value as a YAML document.
func ToYAML(v Value) ([]byte, error) {
	return yaml.Marshal(v)
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.yamlNode(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	val, err := decodeNode(node)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func scalarNode(tag, text string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: text}
}

func (v Value) yamlNode() *yaml.Node {
	switch d := v.data.(type) {
	case *big.Int:
		return scalarNode("!!int", d.String())
	case float64:
		return scalarNode("!!float", yamlFloat(d))
	case bool:
		return scalarNode("!!bool", strconv.FormatBool(d))
	case string:
		return scalarNode("!!str", d)
	case Range:
		return scalarNode(rangeTag, d.String())
	case intList, floatList, boolList, stringList, listAny:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range v.elements() {
			seq.Content = append(seq.Content, item.yamlNode())
		}
		if inferListKind(v.elements()) != v.Kind() {
			seq.Tag = "!" + v.Kind().String()
		}
		return seq
	case structMap:
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range sortedKeys(d) {
			m.Content = append(m.Content, scalarNode("!!str", k), d[k].yamlNode())
		}
		return m
	default:
		return scalarNode("!!null", "null")
	}
}

func yamlFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return reprFloat(f)
}

// inferListKind picks the list kind an untagged sequence of items decodes
// to.
func inferListKind(items []Value) Kind {
	if len(items) == 0 {
		return KindListAny
	}
	first := items[0].Kind()
	if !allKind(items, first) {
		return KindListAny
	}
	switch first {
	case KindInt:
		return KindIntList
	case KindFloat:
		return KindFloatList
	case KindBool:
		return KindBoolList
	case KindString:
		return KindStringList
	}
	return KindListAny
}

func decodeNode(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return decodeNode(node.Content[0])
	case yaml.AliasNode:
		return decodeNode(node.Alias)
	case yaml.SequenceNode:
		return decodeSequence(node)
	case yaml.MappingNode:
		return decodeMapping(node)
	case yaml.ScalarNode:
		return decodeScalar(node)
	}
	return Null(), nil
}

func decodeSequence(node *yaml.Node) (Value, error) {
	items := make([]Value, 0, len(node.Content))
	for _, child := range node.Content {
		item, err := decodeNode(child)
		if err != nil {
			return Null(), err
		}
		items = append(items, item)
	}
	tag := node.ShortTag()
	if tag == "!!seq" {
		return collect(inferListKind(items), items), nil
	}
	kind, ok := kindTag(tag)
	if !ok || !kind.IsList() {
		return Null(), Errorf(ErrCastParseFailure, "line %d: unsupported sequence tag %s", node.Line, tag)
	}
	return FromList(items...).Cast(kind)
}

func decodeMapping(node *yaml.Node) (Value, error) {
	tag := node.ShortTag()
	if tag != "!!map" && tag != "!Struct" {
		return Null(), Errorf(ErrCastParseFailure, "line %d: unsupported mapping tag %s", node.Line, tag)
	}
	m := make(map[string]Value, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		if keyNode.Kind == yaml.AliasNode {
			keyNode = keyNode.Alias
		}
		if keyNode.Kind != yaml.ScalarNode {
			return Null(), Errorf(ErrKeyTypeMismatch, "line %d: struct keys must be scalars", keyNode.Line)
		}
		val, err := decodeNode(node.Content[i+1])
		if err != nil {
			return Null(), err
		}
		m[keyNode.Value] = val
	}
	return FromStruct(m), nil
}

func decodeScalar(node *yaml.Node) (Value, error) {
	switch tag := node.ShortTag(); tag {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Null(), Errorf(ErrCastParseFailure, "line %d: invalid bool %q", node.Line, node.Value).WithCause(err)
		}
		return FromBool(b), nil
	case "!!int":
		n, ok := new(big.Int).SetString(node.Value, 0)
		if !ok {
			return Null(), Errorf(ErrCastParseFailure, "line %d: invalid int %q", node.Line, node.Value)
		}
		return Value{data: n}, nil
	case "!!float":
		f, err := parseYAMLFloat(node.Value)
		if err != nil {
			return Null(), Errorf(ErrCastParseFailure, "line %d: invalid float %q", node.Line, node.Value).WithCause(err)
		}
		return FromFloat(f), nil
	case "!!str", "!!timestamp", "!!binary":
		return FromString(node.Value), nil
	case rangeTag:
		r, err := ParseRange(node.Value)
		if err != nil {
			return Null(), err
		}
		return Value{data: r}, nil
	default:
		kind, ok := kindTag(tag)
		if !ok {
			return Null(), Errorf(ErrCastParseFailure, "line %d: unsupported tag %s", node.Line, tag)
		}
		plain := *node
		plain.Tag = ""
		val, err := decodeScalar(&plain)
		if err != nil {
			return Null(), err
		}
		return val.Cast(kind)
	}
}

func kindTag(tag string) (Kind, bool) {
	name, ok := strings.CutPrefix(tag, "!")
	if !ok || strings.HasPrefix(name, "!") {
		return KindNull, false
	}
	return ParseKind(name)
}

func parseYAMLFloat(s string) (float64, error) {
	switch strings.ToLower(strings.TrimPrefix(s, "+")) {
	case ".inf":
		return math.Inf(1), nil
	case "-.inf":
		return math.Inf(-1), nil
	case ".nan":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
}

// ParseRange parses the textual form of a range, "1..5" or "1.<5".
func ParseRange(s string) (Range, error) {
	inclusive := true
	start, end, ok := strings.Cut(s, ".<")
	if ok {
		inclusive = false
	} else if start, end, ok = strings.Cut(s, ".."); !ok {
		return Range{}, Errorf(ErrCastParseFailure, "invalid range %q", s)
	}
	lo, err := strconv.ParseInt(strings.TrimSpace(start), 10, 64)
	if err != nil {
		return Range{}, Errorf(ErrCastParseFailure, "invalid range start in %q", s).WithCause(err)
	}
	hi, err := strconv.ParseInt(strings.TrimSpace(end), 10, 64)
	if err != nil {
		return Range{}, Errorf(ErrCastParseFailure, "invalid range end in %q", s).WithCause(err)
	}
	return Range{Start: lo, End: hi, Inclusive: inclusive}, nil
}
