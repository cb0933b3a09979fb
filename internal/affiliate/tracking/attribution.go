package tracking

import (
	"regexp"
	"strconv"
	"strings"
)

var articlePath = regexp.MustCompile(`/article/(\d+)`)

// ArticleID infers the article a click came from. An explicit value (query
// parameter or payload field) wins when it is a positive integer; otherwise
// the referrer is searched for /article/<digits>. The result is heuristic and
// may be nil.
func ArticleID(explicit, referrer string) *int64 {
	if id, ok := parseArticleID(explicit); ok {
		return &id
	}

	m := articlePath.FindStringSubmatch(referrer)
	if m == nil {
		return nil
	}
	if id, ok := parseArticleID(m[1]); ok {
		return &id
	}
	return nil
}

func parseArticleID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
