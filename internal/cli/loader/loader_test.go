package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScanFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write scan file: %v", err)
	}
	return path
}

const validScan = `kind: ValidationScan
spec:
  scanName: orders_quality
  snowflake:
    account: xy12345.eu-west-1
    username: VALIDATOR
    password: secret
    database: ANALYTICS
    warehouse: COMPUTE_WH
    schema: PUBLIC
  target:
    table: ORDERS
  rules: |
    - row_count > 0
`

func TestLoadFromFile(t *testing.T) {
	scan, err := LoadFromFile(writeScanFile(t, validScan))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req, err := scan.ToValidationRequest()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.TableName != "ORDERS" {
		t.Errorf("expected table ORDERS, got %s", req.TableName)
	}
	if req.ScanName != "orders_quality" {
		t.Errorf("expected scan name orders_quality, got %s", req.ScanName)
	}
	if !strings.Contains(req.ValidationRules, "row_count > 0") {
		t.Errorf("rules not carried over: %q", req.ValidationRules)
	}
}

func TestLoadFromFileRejectsWrongKind(t *testing.T) {
	_, err := LoadFromFile(writeScanFile(t, "kind: Deployment\nspec: {}\n"))
	if err == nil {
		t.Fatal("expected an error for wrong kind")
	}
}

func TestToValidationRequestErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ScanFile)
		wantErr string
	}{
		{
			name:    "missing password",
			mutate:  func(s *ScanFile) { s.Spec.Snowflake.Password = "" },
			wantErr: "password",
		},
		{
			name:    "missing target",
			mutate:  func(s *ScanFile) { s.Spec.Target = TargetSpec{} },
			wantErr: "target",
		},
		{
			name:    "both table and query",
			mutate:  func(s *ScanFile) { s.Spec.Target.Query = "SELECT 1" },
			wantErr: "only one",
		},
		{
			name:    "missing rules",
			mutate:  func(s *ScanFile) { s.Spec.Rules = "" },
			wantErr: "rules",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(passwordEnvVar, "")

			scan, err := LoadFromFile(writeScanFile(t, validScan))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.mutate(scan)

			_, err = scan.ToValidationRequest()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestPasswordFromEnvironment(t *testing.T) {
	scan, err := LoadFromFile(writeScanFile(t, validScan))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	scan.Spec.Snowflake.Password = ""
	t.Setenv(passwordEnvVar, "from-env")

	req, err := scan.ToValidationRequest()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.SnowflakeConfig.Password != "from-env" {
		t.Errorf("expected password from environment, got %q", req.SnowflakeConfig.Password)
	}
}
