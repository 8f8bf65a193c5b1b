package shared

const (
	UserID = "user_id"

	ScentFamilyFloral   = "floral"
	ScentFamilyFruity   = "fruity"
	ScentFamilySpicy    = "spicy"
	ScentFamilyResinous = "resinous"

	ShareTypeAchievement = "achievement"
	ShareTypeStreak      = "streak"
	ShareTypeMoment      = "moment"
)
