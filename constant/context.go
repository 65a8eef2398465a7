package constant

type contextKey string

const (
	AdminUserKey contextKey = "admin_user"
	SessionIDKey contextKey = "session_id"
)

const (
	SortPopular   = "popular"
	SortPriceAsc  = "asc"
	SortPriceDesc = "desc"
)
