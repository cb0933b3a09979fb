package tracking

import (
	"strings"
	"time"

	"affiliate-redirect/internal/affiliate/domain"

	"github.com/dlclark/regexp2"
)

// Pattern matching runs against the lower-cased user agent. The tablet
// pattern needs a negative lookahead (an android token with no "mobi" after
// it), which RE2 cannot express.
var (
	tabletPattern = compile(`(tablet|ipad|playbook|silk)|(android(?!.*mobi))`)
	mobilePattern = compile(`mobile|android|iphone|ipod|iemobile|blackberry|kindle|silk-accelerated|(hpw|web)os|opera m(obi|ini)`)
)

const (
	matchTimeout = 50 * time.Millisecond

	// maxClassifyLength caps how much of a user agent the backtracking
	// patterns see, keeping a match well inside matchTimeout.
	maxClassifyLength = 1024
)

func compile(expr string) *regexp2.Regexp {
	re := regexp2.MustCompile(expr, regexp2.IgnoreCase)
	re.MatchTimeout = matchTimeout
	return re
}

// ClassifyDevice buckets a user agent into mobile, tablet or desktop.
// Tablet is checked first so Android tablets (no "mobi" token) are not
// reported as phones.
func ClassifyDevice(userAgent string) domain.Device {
	ua := strings.ToLower(Truncate(userAgent, maxClassifyLength))
	if ua == "" {
		return domain.DeviceDesktop
	}

	if matches(tabletPattern, ua) {
		return domain.DeviceTablet
	}
	if matches(mobilePattern, ua) {
		return domain.DeviceMobile
	}
	return domain.DeviceDesktop
}

// matches treats a match timeout as no match.
func matches(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}
