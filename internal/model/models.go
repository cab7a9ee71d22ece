package model

// UserUnlocksTable is the join table between users and unlockables.
const UserUnlocksTable = "user_unlocks"

// All lists every persisted model in dependency order, parents first.
func All() []any {
	return []any{
		&User{},
		&UserProfile{},
		&PlaylistVideo{},
		&FavoriteTheme{},
		&Unlockable{},
	}
}
