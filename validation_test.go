package main

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateStatementClass_AllowedQueries(t *testing.T) {
	allowed := []string{
		"SELECT * FROM employees",
		"select * from employees", // lowercase
		"  SELECT 1 FROM dual  ",  // surrounding whitespace
		"Select e.name FROM employees e WHERE e.id = :1",
		"select",
	}

	for _, stmt := range allowed {
		t.Run(stmt, func(t *testing.T) {
			if err := validateStatementClass("execute_query", stmt, queryPrefixes); err != nil {
				t.Errorf("Expected statement to be allowed, but got error: %v", err)
			}
		})
	}
}

func TestValidateStatementClass_BlockedQueries(t *testing.T) {
	blocked := []string{
		"INSERT INTO employees VALUES (1, 'test')",
		"UPDATE employees SET name = 'test'",
		"DELETE FROM employees",
		"DROP TABLE employees",
		"TRUNCATE TABLE employees",
		"CREATE TABLE test (id NUMBER)",
		"",
		"   ",
	}

	for _, stmt := range blocked {
		t.Run(stmt, func(t *testing.T) {
			err := validateStatementClass("execute_query", stmt, queryPrefixes)
			if err == nil {
				t.Fatal("Expected statement to be blocked, but it was allowed")
			}
			var te *ToolError
			if !errors.As(err, &te) || te.Code != InvalidParams {
				t.Errorf("Expected InvalidParams error, got: %v", err)
			}
		})
	}
}

func TestValidateStatementClass_DMLPrefixes(t *testing.T) {
	allowed := []string{
		"INSERT INTO employees VALUES (:1, :2)",
		"insert into employees values (:1, :2)",
		"UPDATE employees SET name = :1 WHERE id = :2",
		"DELETE FROM employees WHERE id = :1",
	}
	for _, stmt := range allowed {
		t.Run(stmt, func(t *testing.T) {
			if err := validateStatementClass("execute_dml", stmt, dmlPrefixes); err != nil {
				t.Errorf("Expected statement to be allowed, but got error: %v", err)
			}
		})
	}

	blocked := []string{
		"SELECT * FROM employees",
		"DROP TABLE employees",
		"MERGE INTO employees USING dual ON (1=1)",
	}
	for _, stmt := range blocked {
		t.Run(stmt, func(t *testing.T) {
			if err := validateStatementClass("execute_dml", stmt, dmlPrefixes); err == nil {
				t.Error("Expected statement to be blocked, but it was allowed")
			}
		})
	}
}

func TestValidateStatementClass_ErrorNamesToolAndPrefixes(t *testing.T) {
	err := validateStatementClass("execute_dml", "SELECT 1 FROM dual", dmlPrefixes)
	if err == nil {
		t.Fatal("Expected error")
	}
	for _, want := range []string{"execute_dml", "INSERT", "UPDATE", "DELETE"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Error message %q missing %q", err.Error(), want)
		}
	}
}

func TestRequiredString(t *testing.T) {
	if _, err := requiredString(map[string]any{"query": "SELECT 1"}, "query"); err != nil {
		t.Errorf("Expected value to be accepted, got: %v", err)
	}

	missing := []map[string]any{
		{},
		{"query": ""},
		{"query": 42},
	}
	for _, args := range missing {
		_, err := requiredString(args, "query")
		if err == nil {
			t.Fatalf("Expected error for args %v", args)
		}
		var te *ToolError
		if !errors.As(err, &te) || te.Code != InvalidParams {
			t.Errorf("Expected InvalidParams, got: %v", err)
		}
		if !strings.Contains(err.Error(), "query") {
			t.Errorf("Error %q does not name the missing field", err.Error())
		}
	}
}

func TestOptionalString(t *testing.T) {
	v, err := optionalString(map[string]any{}, "schema")
	if err != nil || v != "" {
		t.Errorf("Absent optional should be empty and nil error, got %q, %v", v, err)
	}

	v, err = optionalString(map[string]any{"schema": "HR"}, "schema")
	if err != nil || v != "HR" {
		t.Errorf("Expected HR, got %q, %v", v, err)
	}

	if _, err := optionalString(map[string]any{"schema": 7}, "schema"); err == nil {
		t.Error("Expected non-string optional to be rejected")
	}
}

func TestBindValues(t *testing.T) {
	binds, err := bindValues(map[string]any{"binds": []any{"5", "1"}})
	if err != nil {
		t.Fatalf("Expected binds to be accepted, got: %v", err)
	}
	if len(binds) != 2 || binds[0] != "5" || binds[1] != "1" {
		t.Errorf("Binds not passed through as strings: %v", binds)
	}

	binds, err = bindValues(map[string]any{})
	if err != nil || binds != nil {
		t.Errorf("Absent binds should yield nil, got %v, %v", binds, err)
	}

	// Values pass through as strings only; no type inference
	if _, err := bindValues(map[string]any{"binds": []any{float64(5)}}); err == nil {
		t.Error("Expected non-string bind to be rejected")
	}
	if _, err := bindValues(map[string]any{"binds": "5"}); err == nil {
		t.Error("Expected non-array binds to be rejected")
	}
}
