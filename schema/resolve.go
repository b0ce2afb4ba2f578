package schema

import (
	"fmt"
	"strings"
)

// resolveTypeName returns the fully qualified name typeName refers to when
// written inside the message scope. Lookup order follows protoc:
//  1. a leading dot means the name is already fully qualified;
//  2. otherwise scope, then each enclosing scope out to the package, is
//     tried as a prefix;
//  3. finally typeName is tried as written.
//
// known holds every message and enum name in the file.
func resolveTypeName(typeName, scope string, known map[string]struct{}) (string, error) {
	if strings.HasPrefix(typeName, ".") {
		return resolveAbsolute(typeName, known)
	}
	if name, ok := resolveInScopes(typeName, scope, known); ok {
		return name, nil
	}
	if _, ok := known[typeName]; ok {
		return typeName, nil
	}
	return "", fmt.Errorf("unable to resolve type name: %s", typeName)
}

// resolveInScopes walks from scope outwards, dropping one trailing name
// component per step, and returns the first scope+"."+typeName that exists.
func resolveInScopes(typeName, scope string, known map[string]struct{}) (string, bool) {
	for scope != "" {
		candidate := scope + "." + typeName
		if _, ok := known[candidate]; ok {
			return candidate, true
		}
		i := strings.LastIndexByte(scope, '.')
		if i < 0 {
			break
		}
		scope = scope[:i]
	}
	return "", false
}

func resolveAbsolute(typeName string, known map[string]struct{}) (string, error) {
	name := strings.TrimPrefix(typeName, ".")
	if _, ok := known[name]; !ok {
		return "", fmt.Errorf("unable to resolve fully qualified type name: %s", name)
	}
	return name, nil
}
