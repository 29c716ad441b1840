package response

import (
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/config"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/pricing"
)

// EventResponse is the public landing information.
type EventResponse struct {
	Name            string   `json:"name"`
	LotName         string   `json:"lot_name"`
	Price           string   `json:"price"`
	PriceBR         string   `json:"price_br"`
	Remaining       int      `json:"remaining"`
	MaxInstallments int      `json:"max_installments"`
	IncludedItems   []string `json:"included_items"`
	PixNotice       string   `json:"pix_notice"`
	ChildrenNotice  string   `json:"children_notice"`
	Contact         string   `json:"contact"`
	ContactLabel    string   `json:"contact_label"`
}

func FromEvent(lot pricing.Lot, ev config.EventConfig, maxInstallments int) EventResponse {
	items := ev.IncludedItems
	if items == nil {
		items = []string{}
	}
	return EventResponse{
		Name:            ev.Name,
		LotName:         lot.Name,
		Price:           lot.Price.StringFixed(2),
		PriceBR:         pricing.MoneyBR(lot.Price),
		Remaining:       lot.Remaining,
		MaxInstallments: maxInstallments,
		IncludedItems:   items,
		PixNotice:       ev.PixNotice,
		ChildrenNotice:  ev.ChildrenNotice,
		Contact:         ev.Contact,
		ContactLabel:    ev.ContactLabel,
	}
}
