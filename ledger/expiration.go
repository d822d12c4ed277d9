package ledger

// Expiration marks the point at which an approval stops being valid.
// The zero value never expires. When both conditions are set, whichever
// is reached first applies.
type Expiration struct {
	AtHeight uint64 `json:"at_height,omitempty"`
	AtTime   int64  `json:"at_time,omitempty"`
}

// Never reports whether the expiration is unbounded
func (e Expiration) Never() bool {
	return e.AtHeight == 0 && e.AtTime == 0
}

// IsExpired reports whether the expiration has passed at the given
// block height and timestamp
func (e Expiration) IsExpired(height uint64, now int64) bool {
	if e.AtHeight != 0 && height >= e.AtHeight {
		return true
	}
	if e.AtTime != 0 && now >= e.AtTime {
		return true
	}
	return false
}
