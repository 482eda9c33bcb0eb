package facade

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/tair/packing-checklist/internal/checklist/domain"
	"github.com/tair/packing-checklist/pkg/apperrors"
)

// DateLayout is the wire format of travel dates
const DateLayout = "2006-01-02"

// ItemInput places one catalog item in a bag
type ItemInput struct {
	ItemID     uint   `json:"item_id" validate:"required"`
	PackingBag string `json:"packing_bag" validate:"required,oneof=HAND HOLD"`
}

// CreateChecklistInput is the header and initial items of a new checklist
type CreateChecklistInput struct {
	Title       string      `json:"title" validate:"required,max=100"`
	TravelType  string      `json:"travel_type" validate:"omitempty,oneof=ACTIVITY CULTURE HEALING FOOD NATURE SHOPPING"`
	CityID      uint        `json:"city_id" validate:"required"`
	TravelStart string      `json:"travel_start" validate:"required,datetime=2006-01-02"`
	TravelEnd   string      `json:"travel_end" validate:"required,datetime=2006-01-02"`
	Items       []ItemInput `json:"items" validate:"dive"`
}

// EditChecklistInput lists the item changes of one edit
type EditChecklistInput struct {
	Added          []ItemInput `json:"added" validate:"dive"`
	Removed        []uint      `json:"removed" validate:"dive,required"`
	PackingToggled []uint      `json:"packing_toggled" validate:"dive,required"`
}

// IsEmpty reports whether the edit changes nothing
func (in EditChecklistInput) IsEmpty() bool {
	return len(in.Added) == 0 && len(in.Removed) == 0 && len(in.PackingToggled) == 0
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateInput(op string, in interface{}) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Wrap(apperrors.KindInvalidInput, op, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
	}
	return apperrors.New(apperrors.KindInvalidInput, op, strings.Join(msgs, "; "))
}

func (in CreateChecklistInput) header() (domain.Header, error) {
	start, err := time.Parse(DateLayout, in.TravelStart)
	if err != nil {
		return domain.Header{}, err
	}
	end, err := time.Parse(DateLayout, in.TravelEnd)
	if err != nil {
		return domain.Header{}, err
	}
	return domain.Header{
		Title:       in.Title,
		TravelType:  domain.TravelType(in.TravelType),
		CityID:      in.CityID,
		TravelStart: start,
		TravelEnd:   end,
	}, nil
}

func newItems(in []ItemInput) []domain.NewItem {
	out := make([]domain.NewItem, 0, len(in))
	for _, it := range in {
		out = append(out, domain.NewItem{ItemID: it.ItemID, PackingBag: domain.PackingBag(it.PackingBag)})
	}
	return out
}
