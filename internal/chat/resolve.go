package chat

import (
	"strings"

	"github.com/pizzaria-ai/chat-backend/internal/menu"
)

// itemAliases maps a fragment of a catalog name to the short forms customers
// actually type. Checked after the full name fails to match.
var itemAliases = []struct {
	nameFragment string
	aliases      []string
}{
	{"Calabresa", []string{"calabresa"}},
	{"Margherita", []string{"margherita"}},
	{"Portuguesa", []string{"portuguesa"}},
	{"Quatro Queijos", []string{"quatro queijos", "4 queijos"}},
	{"Frango", []string{"frango", "catupiry"}},
	{"Pepperoni", []string{"pepperoni"}},
	{"Coca-Cola", []string{"coca"}},
	{"Guaraná", []string{"guaraná"}},
	{"Suco de Laranja", []string{"laranja"}},
	{"Suco de Uva", []string{"uva"}},
	{"Água", []string{"água"}},
	{"Brownie", []string{"brownie"}},
	{"Pudim", []string{"pudim"}},
	{"Tiramisù", []string{"tiramisù"}},
	{"Petit Gateau", []string{"petit", "gateau"}},
	{"Mousse", []string{"mousse"}},
}

// Resolve picks the item the utterance names, scanning in catalog order:
// full lowercased name first, then registered aliases. When nothing matches
// the first item of the list is the deterministic default; only an empty
// list resolves to nothing.
func Resolve(lower string, items []menu.Item) (menu.Item, bool) {
	for _, item := range items {
		if strings.Contains(lower, strings.ToLower(item.Name)) {
			return item, true
		}
		for _, entry := range itemAliases {
			if !strings.Contains(item.Name, entry.nameFragment) {
				continue
			}
			for _, alias := range entry.aliases {
				if strings.Contains(lower, alias) {
					return item, true
				}
			}
		}
	}
	if len(items) > 0 {
		return items[0], true
	}
	return menu.Item{}, false
}
