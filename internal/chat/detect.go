package chat

import (
	"strings"

	"github.com/pizzaria-ai/chat-backend/internal/menu"
)

// DetectsOrder reports whether the utterance affirmatively selects something
// from the category. Any negation word suppresses the signal outright:
// rejection beats acceptance within the same utterance.
func DetectsOrder(lower string, category menu.Category, items []menu.Item) bool {
	if containsAny(lower, negationWords) {
		return false
	}
	if !containsAny(lower, affirmativeWords) {
		return false
	}
	if containsAny(lower, categoryWords[category]) {
		return true
	}
	for _, item := range items {
		if strings.Contains(lower, strings.ToLower(item.Name)) {
			return true
		}
	}
	return false
}

// DetectsRejection reports whether the utterance turns the category down.
// "obrigado" counts both as negation and as target, so a bare thanks
// rejects whichever category is being tested.
func DetectsRejection(lower string, category menu.Category) bool {
	if !containsAny(lower, rejectionNegationWords) {
		return false
	}
	return containsAny(lower, rejectionCategoryWords[category]) ||
		strings.Contains(lower, "obrigado")
}
