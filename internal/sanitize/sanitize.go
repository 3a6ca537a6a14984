package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy strips every tag; user input is plain text as far as the state
// machine is concerned.
var policy = bluemonday.StrictPolicy()

// Clean removes markup and scripting from user input and trims surrounding
// whitespace. Entity-encoded input stays encoded so it can never come back
// to life when the text is echoed into a response. Clean is idempotent and
// total.
func Clean(input string) string {
	return strings.TrimSpace(policy.Sanitize(input))
}
