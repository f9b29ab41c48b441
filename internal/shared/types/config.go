package types

// Config represents the server configuration that can be loaded from a file.
// Credentials are never part of it: they always arrive per request.
type Config struct {
	Addr     string `json:"addr" yaml:"addr" toml:"addr"`
	LogLevel string `json:"log_level" yaml:"log_level" toml:"log_level"`
}
