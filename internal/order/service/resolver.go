package service

import (
	"time"

	"github.com/praneeth8555/dairyadmin/internal/order/domain"
)

// winningModification picks the record that governs the given date from
// a preloaded slice ordered newest first: most recently created wins.
func winningModification(mods []domain.Modification, date time.Time) *domain.Modification {
	for i := range mods {
		if covers(&mods[i], date) {
			return &mods[i]
		}
	}
	return nil
}

func covers(mod *domain.Modification, date time.Time) bool {
	return !date.Before(mod.StartDate) && !date.After(mod.EndDate)
}

// resolveDay applies the ledger-over-baseline precedence for one date.
// A paused record is terminal: the day resolves empty no matter what
// the baseline says.
func resolveDay(mods []domain.Modification, defaults []domain.DefaultOrderItem, alternating bool, date time.Time) []domain.ResolvedItem {
	parity := domain.DayParity(date)

	if mod := winningModification(mods, date); mod != nil {
		if mod.Paused {
			return nil
		}
		items := make([]domain.ResolvedItem, 0, len(mod.Items))
		for _, it := range mod.Items {
			if it.DayType == domain.DayTypeAll || it.DayType == parity {
				items = append(items, domain.ResolvedItem{ProductID: it.ProductID, Quantity: it.Quantity})
			}
		}
		return items
	}

	items := make([]domain.ResolvedItem, 0, len(defaults))
	for _, it := range defaults {
		if alternating {
			if it.DayType == parity {
				items = append(items, domain.ResolvedItem{ProductID: it.ProductID, Quantity: it.Quantity})
			}
			continue
		}
		if it.DayType == domain.DayTypeAll {
			items = append(items, domain.ResolvedItem{ProductID: it.ProductID, Quantity: it.Quantity})
		}
	}
	return items
}
