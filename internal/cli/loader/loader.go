package loader

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/lvyanru/soda-apiserver/internal/cli/types"
)

// passwordEnvVar supplies the Snowflake password when the scan file omits it,
// so credentials can stay out of files that end up in version control
const passwordEnvVar = "SNOWFLAKE_PASSWORD"

// ScanFile represents a validation scan definition loaded from a YAML file
type ScanFile struct {
	// Kind must be "ValidationScan"
	Kind string `yaml:"kind"`
	// Spec contains the scan specification
	Spec ScanSpec `yaml:"spec"`
}

// ScanSpec defines one validation scan: a Snowflake connection, a target
// (table or query) and the SodaCL rules to evaluate
type ScanSpec struct {
	ScanName  string        `yaml:"scanName,omitempty"`
	Snowflake SnowflakeSpec `yaml:"snowflake"`
	Target    TargetSpec    `yaml:"target"`
	Rules     string        `yaml:"rules"`
}

// SnowflakeSpec is the connection part of a scan file
type SnowflakeSpec struct {
	Account           string `yaml:"account"`
	Username          string `yaml:"username"`
	Password          string `yaml:"password,omitempty"`
	Database          string `yaml:"database"`
	Warehouse         string `yaml:"warehouse"`
	Schema            string `yaml:"schema"`
	Role              string `yaml:"role,omitempty"`
	ConnectionTimeout int    `yaml:"connectionTimeout,omitempty"`
}

// TargetSpec names what the rules run against. Exactly one field must be set.
type TargetSpec struct {
	Table string `yaml:"table,omitempty"`
	Query string `yaml:"query,omitempty"`
}

// LoadFromFile loads a validation scan definition from a YAML file
func LoadFromFile(filepath string) (*ScanFile, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var scan ScanFile
	if err := yaml.Unmarshal(data, &scan); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if scan.Kind == "" {
		return nil, fmt.Errorf("'kind' field is required")
	}
	if scan.Kind != "ValidationScan" {
		return nil, fmt.Errorf("invalid kind '%s', must be 'ValidationScan'", scan.Kind)
	}

	return &scan, nil
}

// ToValidationRequest converts a ScanFile to the API request body
func (s *ScanFile) ToValidationRequest() (*types.ValidationRequest, error) {
	if s.Spec.Snowflake.Account == "" {
		return nil, fmt.Errorf("spec.snowflake.account is required")
	}
	if s.Spec.Snowflake.Username == "" {
		return nil, fmt.Errorf("spec.snowflake.username is required")
	}
	if s.Spec.Snowflake.Database == "" {
		return nil, fmt.Errorf("spec.snowflake.database is required")
	}
	if s.Spec.Snowflake.Warehouse == "" {
		return nil, fmt.Errorf("spec.snowflake.warehouse is required")
	}
	if s.Spec.Snowflake.Schema == "" {
		return nil, fmt.Errorf("spec.snowflake.schema is required")
	}

	password := s.Spec.Snowflake.Password
	if password == "" {
		password = os.Getenv(passwordEnvVar)
	}
	if password == "" {
		return nil, fmt.Errorf("spec.snowflake.password is required (or set %s)", passwordEnvVar)
	}

	if s.Spec.Target.Table == "" && s.Spec.Target.Query == "" {
		return nil, fmt.Errorf("spec.target requires either 'table' or 'query'")
	}
	if s.Spec.Target.Table != "" && s.Spec.Target.Query != "" {
		return nil, fmt.Errorf("spec.target must set only one of 'table' and 'query'")
	}

	if s.Spec.Rules == "" {
		return nil, fmt.Errorf("spec.rules is required")
	}

	return &types.ValidationRequest{
		SnowflakeConfig: types.SnowflakeConfig{
			Account:           s.Spec.Snowflake.Account,
			Username:          s.Spec.Snowflake.Username,
			Password:          password,
			Database:          s.Spec.Snowflake.Database,
			Warehouse:         s.Spec.Snowflake.Warehouse,
			Schema:            s.Spec.Snowflake.Schema,
			Role:              s.Spec.Snowflake.Role,
			ConnectionTimeout: s.Spec.Snowflake.ConnectionTimeout,
		},
		TableName:       s.Spec.Target.Table,
		CustomSQLQuery:  s.Spec.Target.Query,
		ValidationRules: s.Spec.Rules,
		ScanName:        s.Spec.ScanName,
	}, nil
}
