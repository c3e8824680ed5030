package transform

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/offlinesiem/rulegen/pkg/rulegen/models"
)

// QueryTimeout bounds each rewrite pass over a query cell.
const QueryTimeout = 250 * time.Millisecond

// Only the both-wildcards form is rewritten. LIKE 'x%' and LIKE '%x' have no
// CONTAINS equivalent in the rule engine and are left as written.
var likeRewrites = []struct {
	pattern     *regexp2.Regexp
	replacement string
}{
	{newLikePattern(`LIKE\s+'%([^%]+)%'`), "CONTAINS '$1'"},
	{newLikePattern(`LIKE\s+"%([^%]+)%"`), `CONTAINS "$1"`},
}

func newLikePattern(expr string) *regexp2.Regexp {
	re := regexp2.MustCompile(expr, regexp2.IgnoreCase)
	re.MatchTimeout = QueryTimeout
	return re
}

// NormalizeQuery trims a raw query cell and rewrites LIKE '%x%' patterns to
// CONTAINS 'x', keeping the quote style. An absent cell yields "".
func NormalizeQuery(raw models.Cell) (string, error) {
	if !raw.Present() {
		return "", nil
	}

	query := strings.TrimSpace(raw.String())
	if !strings.Contains(strings.ToUpper(query), "LIKE") {
		return query, nil
	}

	for _, rw := range likeRewrites {
		out, err := rw.pattern.Replace(query, rw.replacement, -1, -1)
		if err != nil {
			return "", fmt.Errorf("rewrite LIKE pattern: %w", err)
		}
		query = out
	}
	return query, nil
}
