package main

import (
	"sort"
	"testing"
)

func testRegistry() *toolRegistry {
	return newToolRegistry(NewExecutor(&stubConnector{}, DefaultMaxRows))
}

func TestRegistry_DescriptorsMatchContract(t *testing.T) {
	want := []struct {
		name     string
		required []string
		optional []string
	}{
		{"execute_query", []string{"query"}, []string{"binds"}},
		{"execute_dml", []string{"statement"}, []string{"binds"}},
		{"describe_table", []string{"table_name"}, []string{"schema"}},
		{"list_tables", []string{}, []string{"schema"}},
		{"get_connection_info", []string{}, []string{}},
	}

	tools := testRegistry().Tools()
	if len(tools) != len(want) {
		t.Fatalf("Expected %d tools, got %d", len(want), len(tools))
	}

	for i, w := range want {
		tool := tools[i]
		t.Run(w.name, func(t *testing.T) {
			if tool.Name != w.name {
				t.Fatalf("Tool %d: expected name %q, got %q", i, w.name, tool.Name)
			}
			if tool.Description == "" {
				t.Error("Missing description")
			}
			if tool.InputSchema.Type != "object" {
				t.Errorf("Expected object schema, got %q", tool.InputSchema.Type)
			}

			gotRequired := append([]string{}, tool.InputSchema.Required...)
			sort.Strings(gotRequired)
			wantRequired := append([]string{}, w.required...)
			sort.Strings(wantRequired)
			if len(gotRequired) != len(wantRequired) {
				t.Fatalf("Expected required %v, got %v", wantRequired, gotRequired)
			}
			for j := range wantRequired {
				if gotRequired[j] != wantRequired[j] {
					t.Errorf("Expected required %v, got %v", wantRequired, gotRequired)
				}
			}

			if len(tool.InputSchema.Properties) != len(w.required)+len(w.optional) {
				t.Errorf("Expected %d properties, got %v", len(w.required)+len(w.optional), tool.InputSchema.Properties)
			}
			for _, param := range append(w.required, w.optional...) {
				if _, ok := tool.InputSchema.Properties[param]; !ok {
					t.Errorf("Missing property %q", param)
				}
			}
		})
	}
}

func TestRegistry_BindsAreStringArrays(t *testing.T) {
	for _, tool := range testRegistry().Tools() {
		binds, ok := tool.InputSchema.Properties["binds"]
		if !ok {
			continue
		}
		if binds.Type != "array" || binds.Items == nil || binds.Items.Type != "string" {
			t.Errorf("%s: binds must be an array of strings, got %+v", tool.Name, binds)
		}
	}
}

func TestRegistry_Lookup(t *testing.T) {
	reg := testRegistry()

	for _, name := range []string{"execute_query", "execute_dml", "describe_table", "list_tables", "get_connection_info"} {
		if _, ok := reg.Lookup(name); !ok {
			t.Errorf("Lookup(%q) failed", name)
		}
	}
	if _, ok := reg.Lookup("drop_everything"); ok {
		t.Error("Lookup of unknown tool succeeded")
	}
}
