package domain

// Analytics is the read-only projection of a group combining membership and
// offer data. MembersCount is recomputed from join records rather than read
// from the group counter, so the aggregator doubles as a consistency check.
type Analytics struct {
	Group        Group   `json:"group"`
	MembersCount int     `json:"members_count"`
	TotalVotes   int     `json:"total_votes"`
	Offers       []Offer `json:"offers"`
}
