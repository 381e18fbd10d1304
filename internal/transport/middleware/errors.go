package middleware

import "net/http"

// ErrorResponder writes an error response in the shape of the API surface
// the middleware is mounted on.
type ErrorResponder func(w http.ResponseWriter, r *http.Request, status int, code, message string)

// plainText is the fallback responder used when none is configured.
func plainText(w http.ResponseWriter, _ *http.Request, status int, _ string, message string) {
	http.Error(w, message, status)
}

func orPlain(respond ErrorResponder) ErrorResponder {
	if respond == nil {
		return plainText
	}
	return respond
}
