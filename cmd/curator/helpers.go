package main

import (
	"strconv"

	"curator/internal/patterns"
	"curator/internal/scoring"
)

func parseScope(domainFlag, categoryFlag string) (patterns.Domain, patterns.Category, error) {
	domain, err := patterns.ParseDomain(domainFlag)
	if err != nil {
		return "", "", err
	}
	category, err := patterns.ParseCategory(categoryFlag)
	if err != nil {
		return "", "", err
	}
	return domain, category, nil
}

func resultsTable(results []scoring.Scored) string {
	rows := make([][]string, 0, len(results))
	for i, result := range results {
		candidate := result.Candidate
		duration := ""
		if candidate.HasDuration {
			duration = candidate.Duration
		}
		views := ""
		if candidate.HasStats {
			views = formatCount(candidate.ViewCount)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(result.Score),
			truncate(candidate.Title, 60),
			truncate(candidate.ChannelTitle, 24),
			duration,
			views,
			candidate.URL(),
		})
	}
	return renderTable(
		[]string{"#", "Score", "Title", "Channel", "Length", "Views", "URL"},
		rows, 0, 1, 5)
}
