// Package parse implements the line-oriented heuristic scanner that turns
// extracted document text into a TransferRecord.
package parse

import (
	"regexp"
	"strings"

	"github.com/traydesk/transferdesk/internal/record"
)

var (
	reDigits    = regexp.MustCompile(`\d+`)
	reDateISO   = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	reDateSlash = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
)

// fieldRule is one entry of the priority-ordered dispatch table. A line is
// claimed by the first rule whose markers match; it is never tested against
// later rules. The ordering is a contract: a line can textually satisfy more
// than one category.
type fieldRule struct {
	markers [2]string // default-language token, localized token
	extract func(line string) string
	get     func(*record.TransferRecord) *string
}

var rules = []fieldRule{
	{
		markers: [2]string{"Order", "订单"},
		extract: firstDigitRun,
		get:     func(r *record.TransferRecord) *string { return &r.OrderNumber },
	},
	{
		markers: [2]string{"Date", "日期"},
		extract: firstDate,
		get:     func(r *record.TransferRecord) *string { return &r.Date },
	},
	{
		markers: [2]string{"Customer", "客户"},
		extract: afterLastColon,
		get:     func(r *record.TransferRecord) *string { return &r.Customer },
	},
	{
		markers: [2]string{"Address", "地址"},
		extract: afterLastColon,
		get:     func(r *record.TransferRecord) *string { return &r.Address },
	},
}

// ParseTransferInfo scans text line by line in document order. The first
// occurrence of a category wins; later lines of the same category are
// ignored once the field is set. The parser is total: unmatched lines are
// skipped and unset fields keep their empty defaults.
func ParseTransferInfo(text string) record.TransferRecord {
	rec := record.NewTransferRecord()

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		for i := range rules {
			r := &rules[i]
			if !strings.Contains(line, r.markers[0]) && !strings.Contains(line, r.markers[1]) {
				continue
			}
			field := r.get(&rec)
			if *field == "" {
				if v := r.extract(line); v != "" {
					*field = v
				}
			}
			break // line consumed, later categories never tested
		}
	}
	return rec
}

// firstDigitRun returns the first maximal run of decimal digits in the line.
func firstDigitRun(line string) string {
	return reDigits.FindString(line)
}

// firstDate returns the first ISO YYYY-MM-DD match, falling back to the
// slash MM/DD/YYYY form, in that order.
func firstDate(line string) string {
	if m := reDateISO.FindString(line); m != "" {
		return m
	}
	return reDateSlash.FindString(line)
}

// afterLastColon returns the trimmed substring after the last colon. A line
// with no colon yields the whole line, trimmed.
func afterLastColon(line string) string {
	if i := strings.LastIndex(line, ":"); i >= 0 {
		line = line[i+1:]
	}
	return strings.TrimSpace(line)
}
