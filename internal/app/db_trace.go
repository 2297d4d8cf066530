package app

import (
	"regexp"
	"strconv"
	"strings"
)

const maxTracedQueryLength = 512

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	// A week of kick plays is inserted as one multi-row VALUES list.
	valuesTuples = regexp.MustCompile(`(?i)VALUES \([^()]*\)(?:, ?\([^()]*\))+`)
)

func formatDBQueryForTrace(query string) string {
	query = whitespaceRun.ReplaceAllString(strings.TrimSpace(query), " ")
	query = valuesTuples.ReplaceAllStringFunc(query, func(values string) string {
		rows := strings.Count(values, "(")
		first := values[:strings.Index(values, ")")+1]
		return first + " /* " + strconv.Itoa(rows) + " rows */"
	})

	if len(query) > maxTracedQueryLength {
		return query[:maxTracedQueryLength] + "..."
	}
	return query
}
