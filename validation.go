package main

import "strings"

// Statement classes the SQL tools accept.
var (
	queryPrefixes = []string{"SELECT"}
	dmlPrefixes   = []string{"INSERT", "UPDATE", "DELETE"}
)

// validateStatementClass checks that the statement's leading keyword matches
// one of the allowed prefixes for the tool, case-insensitively. The check is
// textual only: it does not parse SQL, does not detect multiple statements
// behind a separator, and does not compare bind count against placeholders.
func validateStatementClass(toolName, stmt string, allowed []string) error {
	upper := strings.ToUpper(strings.TrimSpace(stmt))
	for _, prefix := range allowed {
		if strings.HasPrefix(upper, prefix) {
			return nil
		}
	}
	return invalidArgument("%s only accepts statements starting with %s", toolName, strings.Join(allowed, ", "))
}

// requiredString extracts a mandatory string argument.
func requiredString(args map[string]any, field string) (string, error) {
	v, ok := args[field].(string)
	if !ok || v == "" {
		return "", invalidArgument("missing required parameter '%s'", field)
	}
	return v, nil
}

// optionalString extracts an optional string argument; absence is not an
// error, a non-string value is.
func optionalString(args map[string]any, field string) (string, error) {
	raw, present := args[field]
	if !present {
		return "", nil
	}
	v, ok := raw.(string)
	if !ok {
		return "", invalidArgument("parameter '%s' must be a string", field)
	}
	return v, nil
}

// bindValues extracts the optional positional bind parameters. Values pass
// through as strings; any conversion to the column type is the driver's.
func bindValues(args map[string]any) ([]any, error) {
	raw, present := args["binds"]
	if !present {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, invalidArgument("parameter 'binds' must be an array of strings")
	}
	binds := make([]any, 0, len(list))
	for i, v := range list {
		s, ok := v.(string)
		if !ok {
			return nil, invalidArgument("bind value %d must be a string", i+1)
		}
		binds = append(binds, s)
	}
	return binds, nil
}
