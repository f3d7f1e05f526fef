package chat

// maxLastMessages bounds the raw history kept for prompt context.
const maxLastMessages = 5

type SelectedItems struct {
	Pizza   string `json:"pizza,omitempty"`
	Drink   string `json:"drink,omitempty"`
	Dessert string `json:"dessert,omitempty"`
}

// Context is the per-session record of ordering progress. Ordered and
// rejected flags only ever flip false to true; the phase only moves forward;
// the total only grows.
type Context struct {
	OrderedPizza    bool          `json:"orderedPizza"`
	OrderedDrink    bool          `json:"orderedDrink"`
	OrderedDessert  bool          `json:"orderedDessert"`
	RejectedDrink   bool          `json:"rejectedDrink"`
	RejectedDessert bool          `json:"rejectedDessert"`
	LastMessages    []string      `json:"lastMessages"`
	CustomerIntent  Intent        `json:"customerIntent"`
	SelectedItems   SelectedItems `json:"selectedItems"`
	OrderPhase      Phase         `json:"orderPhase"`
	OrderTotal      float64       `json:"orderTotal"`
	NeedsAddress    bool          `json:"needsAddress"`
}

func NewContext() *Context {
	return &Context{
		LastMessages:   []string{},
		CustomerIntent: IntentUnknown,
		OrderPhase:     PhasePizza,
	}
}

// PushMessage appends a raw utterance, dropping the oldest beyond the bound.
func (c *Context) PushMessage(message string) {
	c.LastMessages = append(c.LastMessages, message)
	if len(c.LastMessages) > maxLastMessages {
		c.LastMessages = c.LastMessages[len(c.LastMessages)-maxLastMessages:]
	}
}

func (c *Context) Clone() *Context {
	cp := *c
	cp.LastMessages = append([]string(nil), c.LastMessages...)
	return &cp
}
