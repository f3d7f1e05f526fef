package chat

// MenuTopic is the sub-classification of a menu question.
type MenuTopic string

const (
	MenuTopicNone     MenuTopic = ""
	MenuTopicPizzas   MenuTopic = "pizzas"
	MenuTopicDrinks   MenuTopic = "drinks"
	MenuTopicDesserts MenuTopic = "desserts"
	MenuTopicAll      MenuTopic = "all"
)

// intentRule pairs a predicate with the intent it yields.
type intentRule struct {
	intent Intent
	match  func(lower string) bool
}

// intentRules is evaluated in order; the first match wins, so precedence is
// explicit: greeting beats rejection beats menu question beats a generic
// question beats an order signal.
var intentRules = []intentRule{
	{IntentGreeting, matchAny(greetingWords)},
	{IntentRejecting, matchAny(rejectionIntentWords)},
	{IntentMenuQuestion, func(lower string) bool { return DetectMenuTopic(lower) != MenuTopicNone }},
	{IntentAsking, matchAny(questionWords)},
	{IntentOrdering, matchAny(orderIntentWords)},
}

// ClassifyIntent maps a lowercased utterance to an intent tag. Pure.
func ClassifyIntent(lower string) Intent {
	for _, rule := range intentRules {
		if rule.match(lower) {
			return rule.intent
		}
	}
	return IntentUnknown
}

// DetectMenuTopic reports which part of the menu a question is about.
// A question that names no category defaults to pizzas, the house specialty.
func DetectMenuTopic(lower string) MenuTopic {
	if !containsAny(lower, menuQuestionWords) {
		return MenuTopicNone
	}
	switch {
	case containsAny(lower, pizzaTopicWords):
		return MenuTopicPizzas
	case containsAny(lower, drinkTopicWords):
		return MenuTopicDrinks
	case containsAny(lower, dessertTopicWords):
		return MenuTopicDesserts
	case containsAny(lower, wholeMenuWords):
		return MenuTopicAll
	}
	return MenuTopicPizzas
}

func matchAny(words []string) func(string) bool {
	return func(lower string) bool { return containsAny(lower, words) }
}
