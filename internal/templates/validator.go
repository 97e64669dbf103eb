package templates

import (
	"fmt"
	"unicode"
)

// ValidateIdentifier reports whether name can be used as a Java package
// segment and class name. Invalid names are still scaffolded; callers use
// the error as a warning.
func ValidateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("identifier cannot be empty")
	}

	for i, r := range name {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' && r != '$' {
				return fmt.Errorf("invalid identifier %q: must start with a letter, underscore or dollar sign", name)
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '$' {
			return fmt.Errorf("invalid identifier %q: contains invalid character %q", name, r)
		}
	}

	if isReservedWord(name) {
		return fmt.Errorf("invalid identifier %q: cannot use reserved word", name)
	}

	return nil
}

// isReservedWord checks if a name is a Java keyword or literal.
func isReservedWord(name string) bool {
	reserved := map[string]bool{
		"_":            true,
		"abstract":     true,
		"assert":       true,
		"boolean":      true,
		"break":        true,
		"byte":         true,
		"case":         true,
		"catch":        true,
		"char":         true,
		"class":        true,
		"const":        true,
		"continue":     true,
		"default":      true,
		"do":           true,
		"double":       true,
		"else":         true,
		"enum":         true,
		"extends":      true,
		"false":        true,
		"final":        true,
		"finally":      true,
		"float":        true,
		"for":          true,
		"goto":         true,
		"if":           true,
		"implements":   true,
		"import":       true,
		"instanceof":   true,
		"int":          true,
		"interface":    true,
		"long":         true,
		"native":       true,
		"new":          true,
		"null":         true,
		"package":      true,
		"private":      true,
		"protected":    true,
		"public":       true,
		"return":       true,
		"short":        true,
		"static":       true,
		"strictfp":     true,
		"super":        true,
		"switch":       true,
		"synchronized": true,
		"this":         true,
		"throw":        true,
		"throws":       true,
		"transient":    true,
		"true":         true,
		"try":          true,
		"void":         true,
		"volatile":     true,
		"while":        true,
	}
	return reserved[name]
}
