// Package sodacl composes the two textual specifications the Soda scan
// engine consumes: a data source (connection) YAML and a SodaCL checks YAML.
// The composed text is an opaque payload for the engine; no grammar
// validation happens here.
package sodacl

import (
	"fmt"
	"time"

	"github.com/lvyanru/soda-apiserver/internal/domain/entity"
)

const (
	// DefaultRole is applied when the request does not name a role
	DefaultRole = "PUBLIC"
	// DefaultConnectionTimeout is applied when the request does not
	// override the warehouse connection timeout
	DefaultConnectionTimeout = 240 * time.Second
	// QueryTag identifies this service in Snowflake query history
	QueryTag = "soda-data-quality-api"
)

// BuildDataSourceYAML renders the Snowflake data source configuration for
// the given connection descriptor, applying defaults for role, connection
// timeout, keep-alive and the session query tag. Pure, no I/O.
func BuildDataSourceYAML(cfg *entity.SnowflakeConfig, dataSourceName string) string {
	role := cfg.Role
	if role == "" {
		role = DefaultRole
	}

	timeout := cfg.ConnectionTimeout
	if timeout <= 0 {
		timeout = DefaultConnectionTimeout
	}

	return fmt.Sprintf(`data_source %s:
  type: snowflake
  account: %s
  username: %s
  password: %s
  database: %s
  warehouse: %s
  schema: %s
  role: %s
  connection_timeout: %d
  client_session_keep_alive: true
  session_parameters:
    QUERY_TAG: %s
`,
		dataSourceName,
		cfg.Account,
		cfg.Username,
		cfg.Password,
		cfg.Database,
		cfg.Warehouse,
		cfg.Schema,
		role,
		int(timeout.Seconds()),
		QueryTag,
	)
}

// BuildChecksYAML renders the SodaCL checks specification. A custom SQL
// query is embedded as a parenthesized subquery, a table name is referenced
// directly; the rule text is appended verbatim beneath the header. The
// subquery is not sanitized, malformed SQL is the caller's responsibility
// and surfaces as an engine error.
//
// Supplying both or neither of tableName and customSQL is a caller error,
// there is no precedence between them.
func BuildChecksYAML(tableName, customSQL, rules string) (string, error) {
	switch {
	case customSQL != "" && tableName != "":
		return "", fmt.Errorf("table_name and custom_sql_query are mutually exclusive")
	case customSQL != "":
		return fmt.Sprintf("checks for (%s):\n%s\n", customSQL, rules), nil
	case tableName != "":
		return fmt.Sprintf("checks for %s:\n%s\n", tableName, rules), nil
	default:
		return "", fmt.Errorf("either table_name or custom_sql_query must be provided")
	}
}
