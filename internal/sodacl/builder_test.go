package sodacl

import (
	"strings"
	"testing"
	"time"

	"github.com/lvyanru/soda-apiserver/internal/domain/entity"
)

func testSnowflakeConfig() *entity.SnowflakeConfig {
	return &entity.SnowflakeConfig{
		Account:   "test.snowflakecomputing.com",
		Username:  "testuser",
		Password:  "testpass",
		Database:  "TESTDB",
		Warehouse: "TESTWH",
		Schema:    "PUBLIC",
	}
}

func TestBuildDataSourceYAML(t *testing.T) {
	cfg := testSnowflakeConfig()
	cfg.Role = "ANALYST"
	cfg.ConnectionTimeout = 120 * time.Second

	yaml := BuildDataSourceYAML(cfg, "test_source")

	for _, want := range []string{
		"data_source test_source:",
		"type: snowflake",
		"account: test.snowflakecomputing.com",
		"username: testuser",
		"database: TESTDB",
		"warehouse: TESTWH",
		"schema: PUBLIC",
		"role: ANALYST",
		"connection_timeout: 120",
		"client_session_keep_alive: true",
		"QUERY_TAG: soda-data-quality-api",
	} {
		if !strings.Contains(yaml, want) {
			t.Errorf("data source yaml missing %q:\n%s", want, yaml)
		}
	}
}

func TestBuildDataSourceYAMLDefaults(t *testing.T) {
	yaml := BuildDataSourceYAML(testSnowflakeConfig(), "snowflake_api")

	if !strings.Contains(yaml, "role: PUBLIC") {
		t.Errorf("expected default role PUBLIC, got:\n%s", yaml)
	}
	if !strings.Contains(yaml, "connection_timeout: 240") {
		t.Errorf("expected default connection_timeout 240, got:\n%s", yaml)
	}
}

func TestBuildChecksYAML(t *testing.T) {
	tests := []struct {
		name        string
		tableName   string
		customSQL   string
		rules       string
		wantHeader  string
		expectError bool
	}{
		{
			name:       "table name",
			tableName:  "CUSTOMERS",
			rules:      "  - row_count > 0",
			wantHeader: "checks for CUSTOMERS:",
		},
		{
			name:       "custom query wrapped in parentheses",
			customSQL:  "SELECT * FROM orders WHERE amount > 100",
			rules:      "  - row_count > 0",
			wantHeader: "checks for (SELECT * FROM orders WHERE amount > 100):",
		},
		{
			name:        "both table and query",
			tableName:   "CUSTOMERS",
			customSQL:   "SELECT 1",
			rules:       "  - row_count > 0",
			expectError: true,
		},
		{
			name:        "neither table nor query",
			rules:       "  - row_count > 0",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaml, err := BuildChecksYAML(tt.tableName, tt.customSQL, tt.rules)
			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error, got:\n%s", yaml)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasPrefix(yaml, tt.wantHeader) {
				t.Errorf("expected header %q, got:\n%s", tt.wantHeader, yaml)
			}
			if !strings.Contains(yaml, tt.rules) {
				t.Errorf("rule text not carried verbatim:\n%s", yaml)
			}
		})
	}
}

func TestBuildChecksYAMLMultilineRules(t *testing.T) {
	rules := "  - row_count > 0\n  - missing_count(email) = 0"
	yaml, err := BuildChecksYAML("CUSTOMERS", "", rules)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(yaml, rules) {
		t.Errorf("multiline rules not preserved:\n%s", yaml)
	}
}
