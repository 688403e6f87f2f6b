package client

// API server endpoints
const (
	endpointValidate     = "/api/v1/validate"
	endpointRuleExamples = "/api/v1/validation-rules-examples"
	endpointPing         = "/ping"
	endpointReady        = "/health/ready"
)
