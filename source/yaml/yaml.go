// Package yaml turns YAML documents into godec values so the same decoders
// run on YAML configuration input. Mappings become ordered objects, scalars
// map onto null/bool/number/string.
package yaml

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/godec-io/godec"
)

// Parse reads a single YAML document into a Value. An empty document parses
// as null.
func Parse(b []byte) (godec.Value, error) {
	var root yamlv3.Node
	if err := yamlv3.Unmarshal(b, &root); err != nil {
		return godec.Value{}, err
	}
	if root.Kind == 0 {
		return godec.Null(), nil
	}
	return fromNode(&root)
}

// ParseString reads a single YAML document given as a string.
func ParseString(s string) (godec.Value, error) { return Parse([]byte(s)) }

func fromNode(n *yamlv3.Node) (godec.Value, error) {
	switch n.Kind {
	case yamlv3.DocumentNode:
		if len(n.Content) == 0 {
			return godec.Null(), nil
		}
		return fromNode(n.Content[0])
	case yamlv3.AliasNode:
		return fromNode(n.Alias)
	case yamlv3.MappingNode:
		members := make([]godec.Member, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, err := keyString(n.Content[i])
			if err != nil {
				return godec.Value{}, err
			}
			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return godec.Value{}, err
			}
			members = append(members, godec.Pair(key, v))
		}
		return godec.ObjOf(members), nil
	case yamlv3.SequenceNode:
		items := make([]godec.Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return godec.Value{}, err
			}
			items = append(items, v)
		}
		return godec.ArrOf(items), nil
	case yamlv3.ScalarNode:
		return fromScalar(n)
	default:
		return godec.Value{}, fmt.Errorf("yaml: unsupported node kind %d at line %d", n.Kind, n.Line)
	}
}

// keyString stringifies a mapping key. Non-scalar keys fall back to their
// YAML rendering so lookups stay deterministic.
func keyString(n *yamlv3.Node) (string, error) {
	if n.Kind == yamlv3.AliasNode {
		return keyString(n.Alias)
	}
	if n.Kind == yamlv3.ScalarNode {
		return n.Value, nil
	}
	out, err := yamlv3.Marshal(n)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func fromScalar(n *yamlv3.Node) (godec.Value, error) {
	switch n.Tag {
	case "!!null", "":
		return godec.Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return godec.Value{}, err
		}
		return godec.Bool(b), nil
	case "!!int":
		// Decode normalizes YAML forms such as 0x10 or 1_000 into a plain
		// base-10 literal.
		var i int64
		if err := n.Decode(&i); err == nil {
			return godec.Int(i), nil
		}
		var u uint64
		if err := n.Decode(&u); err == nil {
			return godec.Uint(u), nil
		}
		return godec.Number(n.Value), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return godec.Value{}, err
		}
		// .inf and .nan have no JSON number form.
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return godec.Null(), nil
		}
		return godec.Float(f), nil
	case "!!str", "!!timestamp":
		return godec.Str(n.Value), nil
	default:
		return godec.Value{}, errors.New("yaml: unsupported scalar tag " + strconv.Quote(n.Tag))
	}
}
