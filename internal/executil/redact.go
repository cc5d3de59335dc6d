package executil

import "strings"

var secretKeys = []string{"PASSWORD", "TOKEN", "SECRET"}

var secretExact = map[string]bool{
	"DOCKER_AUTH_CONFIG":             true,
	"AWS_SECRET_ACCESS_KEY":          true,
	"AWS_SESSION_TOKEN":              true,
	"GOOGLE_APPLICATION_CREDENTIALS": true,
}

func suspicious(k string) bool {
	k = strings.ToUpper(k)
	if secretExact[k] {
		return true
	}
	for _, s := range secretKeys {
		if strings.Contains(k, s) {
			return true
		}
	}
	return false
}

// Redact masks password flags and secret-looking --build-arg values for printing.
// The input slice is not modified.
func Redact(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i := 0; i < len(out)-1; i++ {
		switch out[i] {
		case "-p", "--password":
			out[i+1] = "REDACTED"
		case "--build-arg":
			kv := out[i+1]
			if eq := strings.IndexByte(kv, '='); eq > 0 {
				if key, val := kv[:eq], kv[eq+1:]; suspicious(key) && val != "" {
					out[i+1] = key + "=REDACTED"
				}
			}
		}
	}
	return out
}
