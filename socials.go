package dexscreener

import "strings"

// Socials collects the well-known social links of a pair. Absent links
// are empty strings.
type Socials struct {
	Twitter  string `json:"twitter,omitempty"`
	Telegram string `json:"telegram,omitempty"`
	Discord  string `json:"discord,omitempty"`
	Website  string `json:"website,omitempty"`
}

// ExtractSocials scans a pair's social-link list for twitter, telegram
// and discord entries, matching types case-insensitively with the last
// entry of each type winning. Website is the first entry of the pair's
// website list. Pairs without an info block yield zero Socials.
func ExtractSocials(p *Pair) Socials {
	var s Socials
	if p == nil || p.Info == nil {
		return s
	}
	for _, social := range p.Info.Socials {
		switch strings.ToLower(social.Type) {
		case "twitter":
			s.Twitter = social.URL
		case "telegram":
			s.Telegram = social.URL
		case "discord":
			s.Discord = social.URL
		}
	}
	if len(p.Info.Websites) > 0 {
		s.Website = p.Info.Websites[0].URL
	}
	return s
}
