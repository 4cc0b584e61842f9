package input

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
	"github.com/awais-ramzan/log-security-analyzer/pkg/keywordset"
)

// ipPattern matches the first dotted-quad token in a line. The value is
// taken verbatim; no octet-range validation is performed.
var ipPattern = regexp.MustCompile(`\b(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})\b`)

var (
	currYear       = time.Now().Year()
	currYearString = fmt.Sprintf("%d", currYear)
)

// timestampRule is a data-described extraction rule: a pattern locating the
// timestamp text in a line plus the layout used to parse it. Rules are tried
// in order; the first pattern match wins.
type timestampRule struct {
	name    string
	pattern *regexp.Regexp
	layout  string

	// prependYear handles formats without a year, like sshd's syslog
	// prefix. The current year is injected before parsing.
	prependYear bool
}

var timestampRules = []timestampRule{
	{
		name:        "syslog",
		pattern:     regexp.MustCompile(`\b([A-Z][a-z]{2}\s+\d{1,2} \d{2}:\d{2}:\d{2})\b`),
		layout:      "2006 Jan _2 15:04:05",
		prependYear: true,
	},
	{
		name:    "iso",
		pattern: regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\b`),
		layout:  "2006-01-02 15:04:05",
	},
	{
		name:    "iso-t",
		pattern: regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2})\b`),
		layout:  "2006-01-02T15:04:05",
	},
	{
		name:    "apache",
		pattern: regexp.MustCompile(`\[(\d{2}/[A-Z][a-z]{2}/\d{4}:\d{2}:\d{2}:\d{2})`),
		layout:  "02/Jan/2006:15:04:05",
	},
}

// usernameRules capture the attempted username near common auth phrasings,
// most specific first.
var usernameRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bfor (?:invalid user )?(\S+) from\b`),
	regexp.MustCompile(`(?i)\binvalid user (\S+)`),
	regexp.MustCompile(`(?i)\buser[= ](\S+)`),
}

// Extractor turns raw log lines into AuthEvents. It is stateless and safe
// for concurrent use once constructed.
type Extractor struct {
	keywords *keywordset.Set
}

// NewExtractor builds an extractor classifying failures against the given
// keyword list. An empty list falls back to domain.DefaultFailureKeywords.
func NewExtractor(keywords []string) *Extractor {
	if len(keywords) == 0 {
		keywords = domain.DefaultFailureKeywords
	}
	return &Extractor{keywords: keywordset.New(keywords)}
}

// Extract produces at most one event from a line. Lines without an IPv4
// token yield no event. An unparsable timestamp does not drop the line; the
// event is kept with a zero Timestamp.
func (x *Extractor) Extract(line string) (*domain.AuthEvent, bool) {
	m := ipPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}

	return &domain.AuthEvent{
		Timestamp: extractTimestamp(line),
		IP:        m[1],
		Username:  extractUsername(line),
		Failure:   x.keywords.Match(line),
		RawLine:   line,
	}, true
}

// Keywords returns the keyword list this extractor classifies with.
func (x *Extractor) Keywords() []string {
	return x.keywords.Keywords()
}

func extractTimestamp(line string) time.Time {
	for _, rule := range timestampRules {
		m := rule.pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		value := m[1]
		if rule.prependYear {
			value = currYearString + " " + value
		}

		ts, err := time.Parse(rule.layout, value)
		if err != nil {
			continue
		}
		return ts
	}
	return time.Time{}
}

func extractUsername(line string) string {
	for _, rule := range usernameRules {
		if m := rule.FindStringSubmatch(line); m != nil {
			return strings.Trim(m[1], `"'`)
		}
	}
	return ""
}
