package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tair/packing-checklist/pkg/apperrors"
)

func TestShareGuardOrder(t *testing.T) {
	owner := Actor{UserID: 1, Authority: AuthorityUser}
	stranger := Actor{UserID: 2, Authority: AuthorityUser}
	admin := Actor{UserID: 3, Authority: AuthorityAdmin}
	deletedAt := time.Now()

	tests := []struct {
		name      string
		checklist Checklist
		actor     Actor
		wantErr   error
		wantState bool
	}{
		{"deleted wins over shared and stranger", Checklist{UserID: 1, IsShared: true, DeletedAt: &deletedAt}, stranger, apperrors.ErrAlreadyDeleted, true},
		{"already shared wins over stranger", Checklist{UserID: 1, IsShared: true}, stranger, apperrors.ErrAlreadyShared, true},
		{"stranger is forbidden", Checklist{UserID: 1}, stranger, apperrors.ErrForbidden, false},
		{"owner shares", Checklist{UserID: 1}, owner, nil, true},
		{"admin shares", Checklist{UserID: 1}, admin, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.checklist
			err := c.Share(tt.actor)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
			assert.Equal(t, tt.wantState, c.IsShared)
		})
	}
}

func TestUnshareGuards(t *testing.T) {
	owner := Actor{UserID: 1, Authority: AuthorityUser}

	c := Checklist{UserID: 1}
	assert.ErrorIs(t, c.Unshare(owner), apperrors.ErrAlreadyUnshared)

	c.IsShared = true
	assert.ErrorIs(t, c.Unshare(Actor{UserID: 9}), apperrors.ErrForbidden)
	assert.True(t, c.IsShared)

	assert.NoError(t, c.Unshare(owner))
	assert.False(t, c.IsShared)
}

func TestCheckMutable(t *testing.T) {
	now := time.Now()
	assert.ErrorIs(t, (&Checklist{UserID: 1, DeletedAt: &now}).CheckMutable(Actor{UserID: 1}), apperrors.ErrAlreadyDeleted)
	assert.ErrorIs(t, (&Checklist{UserID: 1}).CheckMutable(Actor{UserID: 2}), apperrors.ErrForbidden)
	assert.NoError(t, (&Checklist{UserID: 1}).CheckMutable(Actor{UserID: 2, Authority: AuthorityAdmin}))
}

func TestPackingBagFlip(t *testing.T) {
	assert.Equal(t, BagHold, BagHand.Flip())
	assert.Equal(t, BagHand, BagHold.Flip())
	assert.False(t, PackingBag("TRUNK").Valid())
}

func TestItemVisibility(t *testing.T) {
	now := time.Now()
	assert.True(t, ChecklistItem{}.IsVisible())
	assert.False(t, ChecklistItem{RemovedByUser: true}.IsVisible())
	assert.False(t, ChecklistItem{DeletedAt: &now}.IsVisible())
}

func TestParseTravelType(t *testing.T) {
	tt, ok := ParseTravelType("")
	assert.True(t, ok)
	assert.Equal(t, TravelActivity, tt)

	tt, ok = ParseTravelType("FOOD")
	assert.True(t, ok)
	assert.Equal(t, TravelFood, tt)

	_, ok = ParseTravelType("SPACE")
	assert.False(t, ok)
}
