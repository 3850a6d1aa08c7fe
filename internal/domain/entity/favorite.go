package entity

import "time"

// FavoriteType is the kind of profile a favorite points at.
type FavoriteType string

const (
	FavoriteTypeEstablishment FavoriteType = "establishment"
	FavoriteTypeInfluencer    FavoriteType = "influencer"
	FavoriteTypeAgent         FavoriteType = "agent"
)

// IsValid checks if the FavoriteType is a valid value.
func (t FavoriteType) IsValid() bool {
	switch t {
	case FavoriteTypeEstablishment, FavoriteTypeInfluencer, FavoriteTypeAgent:
		return true
	default:
		return false
	}
}

// Favorite mirrors one entry of the remote favorites relation.
type Favorite struct {
	ID       int64        `json:"id"` // Id of the favorited profile.
	Type     FavoriteType `json:"type"`
	Name     string       `json:"name"`
	Avatar   string       `json:"avatar,omitempty"`
	Rating   float64      `json:"rating"`
	Location string       `json:"location,omitempty"`
	AddedAt  time.Time    `json:"addedAt"`
}

// FavoriteKey identifies a favorite independently of its display data.
type FavoriteKey struct {
	Type FavoriteType
	ID   int64
}

// Key returns the identity of the favorite.
func (f Favorite) Key() FavoriteKey {
	return FavoriteKey{Type: f.Type, ID: f.ID}
}
