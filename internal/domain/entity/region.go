package entity

import (
	"regexp"
	"strings"
)

// Region is a parsed Brazilian city/state pair extracted from a free-text
// location label such as "São Paulo - SP" or "Copacabana - Rio de Janeiro, RJ".
type Region struct {
	City  string
	State string
}

func (r Region) IsZero() bool {
	return r.City == "" && r.State == ""
}

// Common shapes of Brazilian address labels, tried in order
var regionPatterns = []*regexp.Regexp{
	// "São Paulo - SP"
	regexp.MustCompile(`(?i)^([^-]+)\s*-\s*([A-Za-z]{2})$`),
	// "Copacabana - Rio de Janeiro, RJ"
	regexp.MustCompile(`(?i)^([^-]+)\s*-\s*([^,]+),\s*([A-Za-z]{2})$`),
	// "São Paulo, SP"
	regexp.MustCompile(`(?i)^([^,]+),\s*([A-Za-z]{2})$`),
	// "Av. Paulista, 1000 - São Paulo, SP"
	regexp.MustCompile(`(?i)^[^-]+-\s*([^,]+),\s*([A-Za-z]{2})$`),
}

// ParseRegion extracts city and state from a location label. Labels that
// match none of the known shapes fall back to the last two dash/comma
// separated segments; a zero Region means the label was unusable.
func ParseRegion(label string) Region {
	clean := strings.TrimSpace(label)
	if clean == "" {
		return Region{}
	}

	for _, pattern := range regionPatterns {
		match := pattern.FindStringSubmatch(clean)
		if match == nil {
			continue
		}
		switch len(match) {
		case 3:
			return Region{
				City:  strings.TrimSpace(match[1]),
				State: strings.ToUpper(strings.TrimSpace(match[2])),
			}
		case 4:
			// neighborhood - city, state
			return Region{
				City:  strings.TrimSpace(match[2]),
				State: strings.ToUpper(strings.TrimSpace(match[3])),
			}
		}
	}

	parts := regexp.MustCompile(`[-,]`).Split(clean, -1)
	if len(parts) >= 2 {
		return Region{
			City:  strings.TrimSpace(parts[len(parts)-2]),
			State: strings.ToUpper(strings.TrimSpace(parts[len(parts)-1])),
		}
	}

	return Region{}
}
