package chat

import "github.com/pizzaria-ai/chat-backend/internal/menu"

// Advance runs one turn of the ordering funnel over cc and returns the
// strategy hint for the reply. Detection only runs for the current phase, so
// the phase is strictly forward-moving and each category accumulates at most
// once.
func Advance(cc *Context, lower string, catalog menu.Catalog) StrategyHint {
	switch cc.OrderPhase {
	case PhasePizza:
		if DetectsOrder(lower, menu.CategoryPizza, catalog.Pizzas) {
			if item, ok := Resolve(lower, catalog.Pizzas); ok {
				cc.SelectedItems.Pizza = item.Name
				cc.OrderTotal += item.Price
			}
			cc.OrderedPizza = true
			cc.OrderPhase = PhaseDrink
		}

	case PhaseDrink:
		if DetectsOrder(lower, menu.CategoryDrink, catalog.Drinks) {
			if item, ok := Resolve(lower, catalog.Drinks); ok {
				cc.SelectedItems.Drink = item.Name
				cc.OrderTotal += item.Price
			}
			cc.OrderedDrink = true
			cc.OrderPhase = PhaseDessert
		} else if DetectsRejection(lower, menu.CategoryDrink) {
			cc.RejectedDrink = true
			cc.OrderPhase = PhaseDessert
		}

	case PhaseDessert:
		if DetectsOrder(lower, menu.CategoryDessert, catalog.Desserts) {
			if item, ok := Resolve(lower, catalog.Desserts); ok {
				cc.SelectedItems.Dessert = item.Name
				cc.OrderTotal += item.Price
			}
			cc.OrderedDessert = true
			cc.OrderPhase = PhaseFinalizing
		} else if DetectsRejection(lower, menu.CategoryDessert) {
			cc.RejectedDessert = true
			cc.OrderPhase = PhaseFinalizing
		}
	}

	if cc.OrderPhase == PhaseFinalizing {
		cc.NeedsAddress = true
	}

	// A rejecting turn overrides the phase hint for this reply only.
	if cc.CustomerIntent == IntentRejecting {
		return HintRespectRejection
	}

	switch cc.OrderPhase {
	case PhasePizza:
		return HintSellPizza
	case PhaseDrink:
		return HintOfferDrink
	case PhaseDessert:
		return HintOfferDessert
	case PhaseFinalizing:
		return HintFinalizeOrder
	default:
		return HintPostCompletion
	}
}
