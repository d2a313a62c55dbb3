package catalog

// StatsSnapshot is the aggregate view achievements are evaluated against.
// It is computed fresh on every check; see services.CheckAchievements.
type StatsSnapshot struct {
	Collections          int64
	Items                int64
	OwnedItems           int64
	CompletedCollections int64
	CommunityCollections int64
	UpvotesReceived      int64
	WishlistItems        int64
	Categories           int64 // distinct categories across collections
}

type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityLegendary Rarity = "LEGENDARY"
)

// Achievement is a static milestone definition. Unlocked ids are stored as a
// JSON array on the user row; this catalog is never persisted.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Badge       string `json:"badge"` // emoji
	Category    string `json:"category"`
	Rarity      Rarity `json:"rarity"`

	Unlocked func(s StatsSnapshot) bool `json:"-"`
}

var Achievements = []Achievement{
	{
		ID: "first_collection", Name: "Getting Started",
		Description: "Create your first collection.", Badge: "📦",
		Category: "collections", Rarity: RarityCommon,
		Unlocked: func(s StatsSnapshot) bool { return s.Collections >= 1 },
	},
	{
		ID: "five_collections", Name: "Curator",
		Description: "Maintain 5 collections.", Badge: "🗂️",
		Category: "collections", Rarity: RarityUncommon,
		Unlocked: func(s StatsSnapshot) bool { return s.Collections >= 5 },
	},
	{
		ID: "ten_collections", Name: "Archivist",
		Description: "Maintain 10 collections.", Badge: "🏛️",
		Category: "collections", Rarity: RarityRare,
		Unlocked: func(s StatsSnapshot) bool { return s.Collections >= 10 },
	},
	{
		ID: "first_item", Name: "First Find",
		Description: "Catalog your first item.", Badge: "🔍",
		Category: "items", Rarity: RarityCommon,
		Unlocked: func(s StatsSnapshot) bool { return s.Items >= 1 },
	},
	{
		ID: "fifty_items", Name: "Serious Collector",
		Description: "Catalog 50 items.", Badge: "📚",
		Category: "items", Rarity: RarityUncommon,
		Unlocked: func(s StatsSnapshot) bool { return s.Items >= 50 },
	},
	{
		ID: "two_hundred_items", Name: "Hoard Keeper",
		Description: "Catalog 200 items.", Badge: "🐉",
		Category: "items", Rarity: RarityRare,
		Unlocked: func(s StatsSnapshot) bool { return s.Items >= 200 },
	},
	{
		ID: "thousand_items", Name: "Museum Grade",
		Description: "Catalog 1000 items.", Badge: "🏆",
		Category: "items", Rarity: RarityLegendary,
		Unlocked: func(s StatsSnapshot) bool { return s.Items >= 1000 },
	},
	{
		ID: "first_owned", Name: "It's Mine",
		Description: "Mark your first item as owned.", Badge: "✅",
		Category: "items", Rarity: RarityCommon,
		Unlocked: func(s StatsSnapshot) bool { return s.OwnedItems >= 1 },
	},
	{
		ID: "hundred_owned", Name: "Treasure Chest",
		Description: "Own 100 catalogued items.", Badge: "💰",
		Category: "items", Rarity: RarityRare,
		Unlocked: func(s StatsSnapshot) bool { return s.OwnedItems >= 100 },
	},
	{
		ID: "first_complete", Name: "Completionist",
		Description: "Complete a collection at 100%.", Badge: "💯",
		Category: "completion", Rarity: RarityUncommon,
		Unlocked: func(s StatsSnapshot) bool { return s.CompletedCollections >= 1 },
	},
	{
		ID: "five_complete", Name: "Perfectionist",
		Description: "Complete 5 collections at 100%.", Badge: "🌟",
		Category: "completion", Rarity: RarityLegendary,
		Unlocked: func(s StatsSnapshot) bool { return s.CompletedCollections >= 5 },
	},
	{
		ID: "first_shared", Name: "Show and Tell",
		Description: "Share a collection with the community.", Badge: "🌍",
		Category: "community", Rarity: RarityCommon,
		Unlocked: func(s StatsSnapshot) bool { return s.CommunityCollections >= 1 },
	},
	{
		ID: "ten_upvotes", Name: "Crowd Pleaser",
		Description: "Receive 10 upvotes on shared collections.", Badge: "👍",
		Category: "community", Rarity: RarityUncommon,
		Unlocked: func(s StatsSnapshot) bool { return s.UpvotesReceived >= 10 },
	},
	{
		ID: "fifty_upvotes", Name: "Community Favorite",
		Description: "Receive 50 upvotes on shared collections.", Badge: "❤️",
		Category: "community", Rarity: RarityRare,
		Unlocked: func(s StatsSnapshot) bool { return s.UpvotesReceived >= 50 },
	},
	{
		ID: "first_wish", Name: "Dreamer",
		Description: "Add your first wishlist entry.", Badge: "🌠",
		Category: "wishlist", Rarity: RarityCommon,
		Unlocked: func(s StatsSnapshot) bool { return s.WishlistItems >= 1 },
	},
	{
		ID: "three_categories", Name: "Jack of All Trades",
		Description: "Collect across 3 different categories.", Badge: "🎭",
		Category: "variety", Rarity: RarityUncommon,
		Unlocked: func(s StatsSnapshot) bool { return s.Categories >= 3 },
	},
	{
		ID: "five_categories", Name: "Renaissance Collector",
		Description: "Collect across 5 different categories.", Badge: "🎨",
		Category: "variety", Rarity: RarityRare,
		Unlocked: func(s StatsSnapshot) bool { return s.Categories >= 5 },
	},
}

var achievementIndex = func() map[string]Achievement {
	idx := make(map[string]Achievement, len(Achievements))
	for _, a := range Achievements {
		idx[a.ID] = a
	}
	return idx
}()

// AchievementByID returns the achievement and whether it exists
func AchievementByID(id string) (Achievement, bool) {
	a, ok := achievementIndex[id]
	return a, ok
}
