package model

type PostFilters struct {
	OwnerID      *int64
	HashtagTerms []string
	Limit        *int
	Offset       *int
}
