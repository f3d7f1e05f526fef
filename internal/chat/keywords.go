package chat

import (
	"strings"

	"github.com/pizzaria-ai/chat-backend/internal/menu"
)

// Keyword tables for the rule engine. Matching is plain case-folded
// substring containment, so entries like "sem" also hit inside longer words.

// negationWords suppress an order signal wherever they appear.
var negationWords = []string{
	"não", "nao", "nunca", "jamais", "recuso", "dispenso", "sem",
}

// rejectionNegationWords is the wider set used for rejection detection;
// "obrigado" counts as a polite close.
var rejectionNegationWords = []string{
	"não", "nao", "nunca", "jamais", "recuso", "dispenso", "sem", "obrigado",
}

var affirmativeWords = []string{
	"quero", "gostaria", "vou levar", "pode ser", "vou querer",
	"me dá", "aceito", "sim", "ok", "beleza", "fechado",
}

var greetingWords = []string{
	"oi", "olá", "bom dia", "boa tarde", "boa noite", "hello",
}

var rejectionIntentWords = []string{
	"não", "nao", "nunca", "obrigado", "dispenso",
}

var questionWords = []string{
	"que", "qual", "como", "quanto", "onde", "?", "tem", "têm",
}

var orderIntentWords = []string{
	"quero", "gostaria", "vou levar", "pode ser", "aceito", "sim",
}

var menuQuestionWords = []string{
	"que", "qual", "quais", "tem", "têm", "temos", "vocês têm",
	"sabores", "opções", "opcoes", "lista", "cardápio", "menu",
	"disponível", "disponivel",
}

var pizzaTopicWords = []string{"pizza", "sabor", "sabores", "massa"}

var drinkTopicWords = []string{
	"bebida", "bebidas", "suco", "sucos", "refrigerante", "beber", "tomar",
}

var dessertTopicWords = []string{
	"sobremesa", "sobremesas", "doce", "doces", "açucar",
}

var wholeMenuWords = []string{
	"todas", "todos", "tudo", "completo", "completa", "tudo que",
}

// categoryWords name a category generically in an order.
var categoryWords = map[menu.Category][]string{
	menu.CategoryPizza:   {"pizza"},
	menu.CategoryDrink:   {"coca", "guaraná", "suco", "água", "bebida", "refrigerante"},
	menu.CategoryDessert: {"brownie", "pudim", "mousse", "sobremesa", "doce", "tiramisù", "petit"},
}

// rejectionCategoryWords name a category in a refusal.
var rejectionCategoryWords = map[menu.Category][]string{
	menu.CategoryPizza:   {"pizza"},
	menu.CategoryDrink:   {"bebida", "suco", "refrigerante", "coca", "guaraná", "água"},
	menu.CategoryDessert: {"sobremesa", "doce", "brownie", "pudim", "mousse"},
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
