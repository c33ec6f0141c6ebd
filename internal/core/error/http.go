package errx

import "fmt"

// WrapNetwork wraps a transport-level failure (connect, DNS, context
// cancellation) that happened before any response arrived.
func WrapNetwork(err error, message string) *Error {
	if err == nil {
		return nil
	}
	return New(err, KindNetwork, 0, message)
}

// WrapStatus records a non-2xx response. The status code travels with the
// error so the call site can log it without re-parsing the message.
func WrapStatus(status int, message string) *Error {
	return New(fmt.Errorf("unexpected status %d", status), KindHTTPStatus, status, message)
}

// WrapParse records a response body whose shape did not match any of the
// accepted contracts.
func WrapParse(err error, message string) *Error {
	if err == nil {
		return nil
	}
	return New(err, KindParse, 0, message)
}

// Validation records a form field rejected before submission.
func Validation(field, reason string) *Error {
	return New(fmt.Errorf("field %q: %s", field, reason), KindValidation, 0, reason)
}
