package catalog

// DisplayBadge is a profile badge a user can equip once the linked
// achievement is unlocked. Equipping is validated in the profile handler.
type DisplayBadge struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Emoji         string `json:"emoji"`
	AchievementID string `json:"achievementId"` // empty means available to everyone
}

var DisplayBadges = []DisplayBadge{
	{ID: "none", Name: "No Badge", Emoji: ""},
	{ID: "collector", Name: "Collector", Emoji: "📦", AchievementID: "first_collection"},
	{ID: "curator", Name: "Curator", Emoji: "🗂️", AchievementID: "five_collections"},
	{ID: "archivist", Name: "Archivist", Emoji: "🏛️", AchievementID: "ten_collections"},
	{ID: "hoard-keeper", Name: "Hoard Keeper", Emoji: "🐉", AchievementID: "two_hundred_items"},
	{ID: "museum", Name: "Museum Grade", Emoji: "🏆", AchievementID: "thousand_items"},
	{ID: "completionist", Name: "Completionist", Emoji: "💯", AchievementID: "first_complete"},
	{ID: "perfectionist", Name: "Perfectionist", Emoji: "🌟", AchievementID: "five_complete"},
	{ID: "community", Name: "Community Favorite", Emoji: "❤️", AchievementID: "fifty_upvotes"},
	{ID: "renaissance", Name: "Renaissance Collector", Emoji: "🎨", AchievementID: "five_categories"},
}

// BadgeByID returns the display badge and whether it exists
func BadgeByID(id string) (DisplayBadge, bool) {
	for _, b := range DisplayBadges {
		if b.ID == id {
			return b, true
		}
	}
	return DisplayBadge{}, false
}
