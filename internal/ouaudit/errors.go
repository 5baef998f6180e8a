package ouaudit

import "fmt"

// ConfigurationError is a parameter problem detected before any
// directory contact.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// ConnectivityError means the pre-flight probe of the controller
// failed, no bind was attempted.
type ConnectivityError struct {
	Host string
	Port int
	Err  error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("controller %s:%d unreachable: %v", e.Host, e.Port, e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// AuthenticationError wraps a failed bind.
type AuthenticationError struct {
	Principal string
	Err       error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("bind failed for %s: %v", e.Principal, e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}
