package types

// ValidationError indica um payload malformado ou incompleto, detectado antes
// de qualquer chamada ao provider.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ProviderError wraps any failure during session construction or a provider
// call. The underlying error text is surfaced to the caller unchanged; no
// distinction is made between bad credentials, outages or network failures.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
