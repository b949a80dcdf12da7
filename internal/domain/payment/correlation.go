package payment

import "net/url"

// values that malformed upstream redirects put where a token should be
var placeholderTokens = map[string]struct{}{
	"":          {},
	"null":      {},
	"undefined": {},
}

// IsUsableToken reports whether s can be trusted as a correlation token.
func IsUsableToken(s string) bool {
	_, placeholder := placeholderTokens[s]
	return !placeholder
}

// ExtractCorrelationToken reads the token under key from a callback request.
// The query string wins over the body. Body values that are not strings are ignored.
func ExtractCorrelationToken(key string, query url.Values, body map[string]any) (string, bool) {
	if query != nil {
		if v := query.Get(key); IsUsableToken(v) {
			return v, true
		}
	}

	raw, ok := body[key]
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	if !ok || !IsUsableToken(s) {
		return "", false
	}
	return s, true
}

// ExtractReturnToken applies the callback priority rule to a browser return request.
func ExtractReturnToken(key string, query url.Values, body map[string]any) (string, bool) {
	return ExtractCorrelationToken(key, query, body)
}
