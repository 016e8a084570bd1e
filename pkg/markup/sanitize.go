package markup

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richPolicyOnce sync.Once
	richPolicy     *bluemonday.Policy
)

// SanitizeRich filters user-supplied markup down to common inline and block
// formatting so message bodies and content blocks can carry HTML without
// opening an injection vector. The policy is built once per process.
func SanitizeRich(content string) string {
	richPolicyOnce.Do(func() {
		richPolicy = bluemonday.UGCPolicy()
	})
	return richPolicy.Sanitize(content)
}
