package gateway

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"sort"
)

// ValidateSignature checks a webhook callback against the Twilio signature
// scheme: HMAC-SHA1 over the full request URL followed by the sorted form
// keys each concatenated with its value, base64-encoded. An empty authToken
// disables validation.
func ValidateSignature(authToken, requestURL string, form map[string]string, signature string) bool {
	if authToken == "" {
		return true
	}

	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	payload := requestURL
	for _, k := range keys {
		payload += k + form[k]
	}

	mac := hmac.New(sha1.New, []byte(authToken))
	mac.Write([]byte(payload))
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
