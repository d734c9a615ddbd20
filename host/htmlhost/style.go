package htmlhost

import (
	"strings"

	"github.com/gorilla/css/scanner"
)

// declaration is one property/value pair of an inline style attribute.
type declaration struct {
	property string
	value    string
}

// parseStyle tokenizes an inline style attribute into declarations in source
// order. Malformed declarations are dropped.
func parseStyle(input string) []declaration {
	var (
		out      []declaration
		property string
		value    strings.Builder
		inValue  bool
	)
	flush := func() {
		if property != "" {
			if v := strings.TrimSpace(value.String()); v != "" {
				out = append(out, declaration{property: property, value: v})
			}
		}
		property = ""
		value.Reset()
		inValue = false
	}

	s := scanner.New(input)
	for {
		token := s.Next()
		if token.Type == scanner.TokenEOF || token.Type == scanner.TokenError {
			break
		}
		switch {
		case token.Type == scanner.TokenComment:
			continue
		case token.Type == scanner.TokenChar && token.Value == ";":
			flush()
		case !inValue && token.Type == scanner.TokenChar && token.Value == ":":
			inValue = true
		case !inValue && token.Type == scanner.TokenIdent:
			property = strings.ToLower(token.Value)
		case !inValue:
			// anything else before the colon invalidates the declaration
			if token.Type != scanner.TokenS {
				property = ""
			}
		case token.Type == scanner.TokenS:
			value.WriteByte(' ')
		default:
			value.WriteString(token.Value)
		}
	}
	flush()
	return out
}

func formatStyle(decls []declaration) string {
	parts := make([]string, 0, len(decls))
	for _, decl := range decls {
		parts = append(parts, decl.property+": "+decl.value)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "; ") + ";"
}

func lookupStyle(decls []declaration, property string) (string, bool) {
	for i := len(decls) - 1; i >= 0; i-- {
		if decls[i].property == property {
			return decls[i].value, true
		}
	}
	return "", false
}

// setStyle replaces every declaration of property with value, or removes
// them when value is empty.
func setStyle(decls []declaration, property, value string) []declaration {
	out := make([]declaration, 0, len(decls)+1)
	replaced := false
	for _, decl := range decls {
		if decl.property != property {
			out = append(out, decl)
			continue
		}
		if value != "" && !replaced {
			out = append(out, declaration{property: property, value: value})
			replaced = true
		}
	}
	if value != "" && !replaced {
		out = append(out, declaration{property: property, value: value})
	}
	return out
}

// displayValue strips a trailing !important from a display declaration.
func displayValue(raw string) string {
	value := strings.TrimSpace(raw)
	if idx := strings.Index(value, "!"); idx >= 0 {
		value = strings.TrimSpace(value[:idx])
	}
	return strings.ToLower(value)
}
