package services

import "strings"

// Icon marks an itinerary line. Emoji is used by the HTML page, Glyph is the
// ZapfDingbats character the PDF renderer draws.
type Icon struct {
	Name  string
	Emoji string
	Glyph string
}

var (
	IconCalendar = Icon{Name: "calendar", Emoji: "📅", Glyph: "n"}
	IconFood     = Icon{Name: "food", Emoji: "🍽️", Glyph: "l"}
	IconArt      = Icon{Name: "art", Emoji: "🖼️", Glyph: "H"}
	IconShopping = Icon{Name: "shopping", Emoji: "🛍️", Glyph: "u"}
	IconPin      = Icon{Name: "pin", Emoji: "📍", Glyph: "s"}
)

// Checked in order; the first rule with a matching keyword wins.
var iconRules = []struct {
	icon     Icon
	keywords []string
}{
	{IconFood, []string{"food", "restaurant", "cafe", "hotel", "biryani", "lunch", "dinner"}},
	{IconArt, []string{"museum", "gallery"}},
	{IconShopping, []string{"mall", "market", "bazaar", "shopping"}},
}

// IconFor picks the icon of an itinerary body line by case-insensitive substring match.
func IconFor(line string) Icon {
	lower := strings.ToLower(line)
	for _, rule := range iconRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.icon
			}
		}
	}
	return IconPin
}
