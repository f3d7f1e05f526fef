package chat

// Suggest returns up to three product names to surface as quick replies.
// The triples are fixed by sales priority and are not checked against live
// availability.
func Suggest(cc *Context) []string {
	switch {
	case !cc.OrderedPizza:
		return []string{"Calabresa", "Margherita", "Quatro Queijos"}
	case !cc.OrderedDrink && !cc.RejectedDrink:
		return []string{"Coca-Cola", "Guaraná", "Suco de Laranja"}
	case !cc.OrderedDessert && !cc.RejectedDessert:
		return []string{"Brownie", "Pudim", "Mousse de Maracujá"}
	case !cc.RejectedDrink && !cc.RejectedDessert:
		return []string{"Portuguesa", "Pepperoni", "Frango c/ Catupiry"}
	default:
		return []string{"Pedido Confirmado", "Finalizar", "Obrigado"}
	}
}
