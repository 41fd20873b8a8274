package model

import "fmt"

// Icon is a tag from the closed set of icons the frontend knows how to
// render. Unknown tags are rejected at the API boundary rather than
// silently falling back to a default glyph.
type Icon string

const (
	IconCode       Icon = "code"
	IconPalette    Icon = "palette"
	IconZap        Icon = "zap"
	IconSmartphone Icon = "smartphone"
	IconLayers     Icon = "layers"
	IconTarget     Icon = "target"
	IconMail       Icon = "mail"
	IconPhone      Icon = "phone"
	IconMapPin     Icon = "map-pin"
	IconGithub     Icon = "github"
	IconLinkedin   Icon = "linkedin"
	IconTwitter    Icon = "twitter"
)

var knownIcons = map[Icon]bool{
	IconCode:       true,
	IconPalette:    true,
	IconZap:        true,
	IconSmartphone: true,
	IconLayers:     true,
	IconTarget:     true,
	IconMail:       true,
	IconPhone:      true,
	IconMapPin:     true,
	IconGithub:     true,
	IconLinkedin:   true,
	IconTwitter:    true,
}

// ParseIcon validates s against the closed icon set.
func ParseIcon(s string) (Icon, error) {
	ic := Icon(s)
	if !knownIcons[ic] {
		return "", fmt.Errorf("unknown icon %q", s)
	}
	return ic, nil
}
