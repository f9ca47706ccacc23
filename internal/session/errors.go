package session

// AuthenticationError reports a failed login: the request failed, the
// backend rejected the credentials, or the response carried no usable token.
// Message is suitable for showing next to the login form.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}
