package analysis

import (
	"sort"
	"strings"

	"github.com/ridekick/insights-mcp/internal/models"
)

const (
	maxSpeakerSources  = 5
	maxSpeakerProfiles = 10
)

// speakerAccumulator collects one participant's data across records.
type speakerAccumulator struct {
	name        string
	appearances int
	sources     []string
	themes      map[string]bool
}

// AggregateSpeakers groups records by participant name. When filter is
// non-empty only names containing it (case-insensitive) are aggregated, and
// the resulting profile list is returned untruncated; without a filter the
// list is capped at the top 10. TotalSpeakers always reflects the distinct
// speaker count before truncation.
func AggregateSpeakers(records []models.ResearchRecord, filter string) *models.SpeakerReport {
	lowerFilter := strings.ToLower(filter)

	byName := make(map[string]*speakerAccumulator)
	var order []string

	for _, r := range records {
		summary := strings.ToLower(r.Summary)
		for _, name := range r.Participants {
			if lowerFilter != "" && !strings.Contains(strings.ToLower(name), lowerFilter) {
				continue
			}
			acc, ok := byName[name]
			if !ok {
				acc = &speakerAccumulator{name: name, themes: make(map[string]bool)}
				byName[name] = acc
				order = append(order, name)
			}
			acc.appearances++
			if len(acc.sources) < maxSpeakerSources {
				acc.sources = append(acc.sources, r.Title)
			}
			for _, theme := range themeVocabulary {
				if strings.Contains(summary, theme) {
					acc.themes[theme] = true
				}
			}
		}
	}

	profiles := make([]models.SpeakerProfile, 0, len(order))
	for _, name := range order {
		acc := byName[name]
		themes := make([]string, 0, len(acc.themes))
		for _, theme := range themeVocabulary {
			if acc.themes[theme] {
				themes = append(themes, theme)
			}
		}
		profiles = append(profiles, models.SpeakerProfile{
			Name:        acc.name,
			Appearances: acc.appearances,
			Sources:     acc.sources,
			Themes:      themes,
		})
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].Appearances > profiles[j].Appearances
	})

	total := len(profiles)
	if lowerFilter == "" && len(profiles) > maxSpeakerProfiles {
		profiles = profiles[:maxSpeakerProfiles]
	}

	return &models.SpeakerReport{
		TotalSpeakers: total,
		Profiles:      profiles,
	}
}
