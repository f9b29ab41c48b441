package types

import "strings"

// DefaultRegion é a região usada quando o payload não informa uma.
const DefaultRegion = "us-east-1"

// Credentials carries the AWS credentials supplied with a single request.
// It lives only for the duration of that request and is never logged or
// persisted anywhere.
type Credentials struct {
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
	Region    string `json:"region"`
}

// Validate checks that both key fields are present and fills in the default
// region when none was supplied. It runs before any provider call is issued.
func (c *Credentials) Validate() error {
	if strings.TrimSpace(c.AccessKey) == "" {
		return &ValidationError{Message: "access_key is required"}
	}
	if strings.TrimSpace(c.SecretKey) == "" {
		return &ValidationError{Message: "secret_key is required"}
	}
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	return nil
}
