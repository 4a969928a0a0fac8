package css

import (
	"strings"

	"github.com/elliotchance/orderedmap/v3"
)

// Declaration is a single property: value pair.
type Declaration struct {
	Property string
	Value    string
}

func (d Declaration) String() string {
	return d.Property + ":" + d.Value
}

// properties keeps declarations in insertion order, redefining a property
// keeps its original position.
type properties = orderedmap.OrderedMap[string, string]

func newProperties() *properties {
	return orderedmap.NewOrderedMap[string, string]()
}

// parseDeclarations splits "color: red; margin: 0" into declarations. When
// any non-empty fragment has no colon the whole text is rejected and the
// offending fragment is returned.
func parseDeclarations(text string) ([]Declaration, string, bool) {
	var decls []Declaration
	for frag := range strings.SplitSeq(strings.TrimSpace(text), ";") {
		if frag == "" {
			continue
		}
		prop, val, ok := strings.Cut(frag, ":")
		if !ok {
			return nil, frag, false
		}
		decls = append(decls, Declaration{
			Property: strings.TrimSpace(prop),
			Value:    strings.TrimSpace(val),
		})
	}
	return decls, "", true
}

// merge overwrites same named properties in place and appends new ones.
func merge(dst *properties, decls []Declaration) {
	for _, d := range decls {
		dst.Set(d.Property, d.Value)
	}
}

func declarations(props *properties) []Declaration {
	decls := make([]Declaration, 0, props.Len())
	for el := props.Front(); el != nil; el = el.Next() {
		decls = append(decls, Declaration{Property: el.Key, Value: el.Value})
	}
	return decls
}

// writeProperties writes non-empty declarations as "prop:value;" sequence.
func writeProperties(sb *strings.Builder, props *properties) {
	for el := props.Front(); el != nil; el = el.Next() {
		if el.Value == "" {
			continue
		}
		sb.WriteString(el.Key)
		sb.WriteByte(':')
		sb.WriteString(el.Value)
		sb.WriteByte(';')
	}
}
