package domain

import (
	"time"

	"github.com/tair/packing-checklist/pkg/apperrors"
)

// TravelType categorizes a trip
type TravelType string

const (
	TravelActivity TravelType = "ACTIVITY"
	TravelCulture  TravelType = "CULTURE"
	TravelHealing  TravelType = "HEALING"
	TravelFood     TravelType = "FOOD"
	TravelNature   TravelType = "NATURE"
	TravelShopping TravelType = "SHOPPING"
)

// ParseTravelType returns the travel type for s. Empty input defaults to ACTIVITY.
func ParseTravelType(s string) (TravelType, bool) {
	switch t := TravelType(s); t {
	case "":
		return TravelActivity, true
	case TravelActivity, TravelCulture, TravelHealing, TravelFood, TravelNature, TravelShopping:
		return t, true
	}
	return "", false
}

// PackingBag is where an item is packed
type PackingBag string

const (
	BagHand PackingBag = "HAND"
	BagHold PackingBag = "HOLD"
)

// Valid reports whether b is a known bag
func (b PackingBag) Valid() bool {
	return b == BagHand || b == BagHold
}

// Flip returns the other bag
func (b PackingBag) Flip() PackingBag {
	if b == BagHand {
		return BagHold
	}
	return BagHand
}

// Authority is the role of the acting user
type Authority string

const (
	AuthorityUser  Authority = "USER"
	AuthorityAdmin Authority = "ADMIN"
)

// Actor is the authenticated caller of a mutation
type Actor struct {
	UserID    uint
	Authority Authority
}

// IsAdmin reports whether the actor has admin authority
func (a Actor) IsAdmin() bool {
	return a.Authority == AuthorityAdmin
}

// Checklist represents a trip packing checklist
type Checklist struct {
	ID          uint            `json:"checklist_id" gorm:"column:checklist_id;primaryKey"`
	UserID      uint            `json:"user_id" gorm:"not null;index"`
	Title       string          `json:"title" gorm:"size:100;not null"`
	TravelType  TravelType      `json:"travel_type" gorm:"size:20;not null;default:'ACTIVITY'"`
	CityID      uint            `json:"city_id" gorm:"not null"`
	TravelStart time.Time       `json:"travel_start" gorm:"type:date;not null"`
	TravelEnd   time.Time       `json:"travel_end" gorm:"type:date;not null"`
	IsShared    bool            `json:"is_shared" gorm:"not null;default:false;index"`
	Likes       int             `json:"likes" gorm:"not null;default:0"`
	CreatedAt   time.Time       `json:"created_at" gorm:"index"`
	DeletedAt   *time.Time      `json:"deleted_at,omitempty" gorm:"index"`
	Items       []ChecklistItem `json:"items,omitempty" gorm:"foreignKey:ChecklistID;references:ID"`
}

// TableName specifies the table name
func (Checklist) TableName() string {
	return "checklists"
}

// IsDeleted reports whether the checklist is in its terminal state
func (c *Checklist) IsDeleted() bool {
	return c.DeletedAt != nil
}

// CanBeMutatedBy reports whether actor owns the checklist or is an admin
func (c *Checklist) CanBeMutatedBy(actor Actor) bool {
	return c.UserID == actor.UserID || actor.IsAdmin()
}

// Share moves a private checklist to shared. Guards run in order:
// not deleted, not already shared, owner or admin.
func (c *Checklist) Share(actor Actor) error {
	const op = "checklist.Share"
	if c.IsDeleted() {
		return apperrors.New(apperrors.KindAlreadyDeleted, op, "checklist is deleted")
	}
	if c.IsShared {
		return apperrors.New(apperrors.KindAlreadyShared, op, "checklist is already shared")
	}
	if !c.CanBeMutatedBy(actor) {
		return apperrors.New(apperrors.KindForbidden, op, "only the owner or an admin can share this checklist")
	}
	c.IsShared = true
	return nil
}

// Unshare mirrors Share
func (c *Checklist) Unshare(actor Actor) error {
	const op = "checklist.Unshare"
	if c.IsDeleted() {
		return apperrors.New(apperrors.KindAlreadyDeleted, op, "checklist is deleted")
	}
	if !c.IsShared {
		return apperrors.New(apperrors.KindAlreadyUnshared, op, "checklist is not shared")
	}
	if !c.CanBeMutatedBy(actor) {
		return apperrors.New(apperrors.KindForbidden, op, "only the owner or an admin can unshare this checklist")
	}
	c.IsShared = false
	return nil
}

// CheckMutable guards item edits: the checklist must be active and actor must be owner or admin.
func (c *Checklist) CheckMutable(actor Actor) error {
	const op = "checklist.Edit"
	if c.IsDeleted() {
		return apperrors.New(apperrors.KindAlreadyDeleted, op, "checklist is deleted")
	}
	if !c.CanBeMutatedBy(actor) {
		return apperrors.New(apperrors.KindForbidden, op, "only the owner or an admin can edit this checklist")
	}
	return nil
}

// ChecklistItem is one catalog item placed in a checklist
type ChecklistItem struct {
	ID            uint       `json:"checklist_item_id" gorm:"column:checklist_item_id;primaryKey"`
	ChecklistID   uint       `json:"checklist_id" gorm:"not null;index"`
	ItemID        uint       `json:"item_id" gorm:"not null;index"`
	PackingBag    PackingBag `json:"packing_bag" gorm:"size:4;not null;default:'HAND'"`
	RemovedByUser bool       `json:"removed_by_user" gorm:"not null;default:false"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// TableName specifies the table name
func (ChecklistItem) TableName() string {
	return "checklist_items"
}

// IsVisible reports whether the item is neither removed by the user nor cascade-deleted
func (i ChecklistItem) IsVisible() bool {
	return !i.RemovedByUser && i.DeletedAt == nil
}

// Item is a catalog entry referenced by checklist items
type Item struct {
	ID         uint   `json:"item_id" gorm:"column:item_id;primaryKey"`
	Label      string `json:"label" gorm:"size:100;not null"`
	Category   string `json:"category" gorm:"size:50"`
	ClickCount int    `json:"click_count" gorm:"not null;default:0"`
}

// TableName specifies the table name
func (Item) TableName() string {
	return "items"
}

// NewItem is a request to place a catalog item in a bag
type NewItem struct {
	ItemID     uint
	PackingBag PackingBag
}

// Header holds the checklist attributes set at creation
type Header struct {
	Title       string
	TravelType  TravelType
	CityID      uint
	TravelStart time.Time
	TravelEnd   time.Time
}

// SharedSort orders the public shared list
type SharedSort string

const (
	SortRecent SharedSort = "recent"
	SortLikes  SharedSort = "likes"
)
