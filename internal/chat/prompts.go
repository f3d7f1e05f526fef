package chat

import (
	"fmt"
	"strings"

	"github.com/pizzaria-ai/chat-backend/internal/menu"
)

const systemPrompt = `
VOCÊ É UM ATENDENTE VIRTUAL DA PIZZARIA "PIZZARIA AI" - SIGA ESTAS REGRAS RIGOROSAMENTE:

🧠 COMPREENSÃO ANTES DE VENDA:
1. ESCUTE E ENTENDA primeiro o que o cliente está dizendo
2. ANALISE se o cliente está pedindo algo, rejeitando algo, fazendo pergunta ou apenas conversando
3. RESPEITE a intenção do cliente:
   - Se ele QUER algo, ajude com esse item
   - Se ele NÃO QUER algo, respeite e ofereça alternativa diferente
   - Se rejeitou bebida, não insista em bebida, passe para sobremesa ou confirme pedido

🍕 REGRAS DE NEGÓCIO E FLUXO:

1. FLUXO OBRIGATÓRIO: Pizza, depois Bebida, depois Sobremesa, depois Finalização
   - NUNCA volte para uma etapa já concluída
   - SEMPRE respeite a ordem sequencial
   - Quando um item é escolhido, PASSE para o próximo tipo

2. FOCO NO CARDÁPIO:
   - APENAS fale sobre itens do nosso cardápio
   - NÃO responda perguntas sobre outros assuntos
   - Redirecione educadamente para nossos produtos

3. VENDA INTELIGENTE (não agressiva):
   - Seja prestativo primeiro, vendedor depois
   - Se cliente rejeitar uma categoria, pule para a próxima
   - NUNCA insista no que o cliente recusou
   - NUNCA volte para categoria já escolhida

4. FINALIZAÇÃO DO PEDIDO:
   - Após pizza + bebida + (sobremesa OU rejeição de sobremesa):
   - Calcular valor total
   - Informar resumo do pedido
   - Perguntar endereço de entrega
   - Informar tempo estimado de 35-45 minutos

5. PROIBIÇÕES:
   - NUNCA ofereça descontos, promoções ou cupons
   - NUNCA negocie preços
   - NUNCA insista no que foi recusado

6. PERSONALIDADE:
   - Atencioso e compreensivo
   - Respeitoso às escolhas do cliente
   - Prestativo sem ser insistente

SEMPRE RESPONDA EM PORTUGUÊS BRASILEIRO e priorize a satisfação do cliente!
`

// ComposePrompt builds the single text block sent to the model: policy,
// live catalog, context summary, strategy section and the raw message.
func ComposePrompt(cc *Context, catalog menu.Catalog, hint StrategyHint, topic MenuTopic, message string) string {
	var b strings.Builder
	b.WriteString(systemPrompt)

	b.WriteString("\n\nCARDÁPIO DISPONÍVEL:")
	writeMenuSection(&b, "🍕 PIZZAS:", catalog.Pizzas)
	writeMenuSection(&b, "🥤 BEBIDAS:", catalog.Drinks)
	writeMenuSection(&b, "🍰 SOBREMESAS:", catalog.Desserts)

	b.WriteString("\n\nCONTEXTO DA CONVERSA:")
	fmt.Fprintf(&b, "\n- Cliente já pediu pizza: %s", simNao(cc.OrderedPizza))
	fmt.Fprintf(&b, "\n- Cliente já pediu bebida: %s", simNao(cc.OrderedDrink))
	fmt.Fprintf(&b, "\n- Cliente já pediu sobremesa: %s", simNao(cc.OrderedDessert))
	if cc.RejectedDrink {
		b.WriteString("\n- Cliente REJEITOU bebida: SIM (NÃO ofereça mais bebidas!)")
	} else {
		b.WriteString("\n- Cliente REJEITOU bebida: NÃO")
	}
	if cc.RejectedDessert {
		b.WriteString("\n- Cliente REJEITOU sobremesa: SIM (NÃO ofereça mais sobremesas!)")
	} else {
		b.WriteString("\n- Cliente REJEITOU sobremesa: NÃO")
	}
	fmt.Fprintf(&b, "\n- Intenção atual do cliente: %s", strings.ToUpper(string(cc.CustomerIntent)))

	if len(cc.LastMessages) > 1 {
		b.WriteString("\n\nMENSAGENS ANTERIORES:")
		recent := cc.LastMessages
		if len(recent) > 3 {
			recent = recent[len(recent)-3:]
		}
		for i, msg := range recent {
			fmt.Fprintf(&b, "\n%d. %s", i+1, msg)
		}
	}

	fmt.Fprintf(&b, "\n- Fase atual do pedido: %s", strings.ToUpper(string(cc.OrderPhase)))
	if cc.SelectedItems.Pizza != "" {
		fmt.Fprintf(&b, "\n- Pizza escolhida: %s", cc.SelectedItems.Pizza)
	}
	if cc.SelectedItems.Drink != "" {
		fmt.Fprintf(&b, "\n- Bebida escolhida: %s", cc.SelectedItems.Drink)
	}
	if cc.SelectedItems.Dessert != "" {
		fmt.Fprintf(&b, "\n- Sobremesa escolhida: %s", cc.SelectedItems.Dessert)
	}
	fmt.Fprintf(&b, "\n- Total atual: R$ %.2f", cc.OrderTotal)

	b.WriteString("\n\nESTRATÉGIA DE RESPOSTA:")
	writeStrategy(&b, cc, hint, topic)

	fmt.Fprintf(&b, "\n\nMENSAGEM DO CLIENTE: %q", message)
	b.WriteString("\n\nRESPONDA seguindo as regras e estratégia acima:")

	return b.String()
}

func writeStrategy(b *strings.Builder, cc *Context, hint StrategyHint, topic MenuTopic) {
	// Menu questions preempt the sales strategy: answer with the list first.
	if cc.CustomerIntent == IntentMenuQuestion && topic != MenuTopicNone {
		fmt.Fprintf(b, "\n\n🚨 ATENÇÃO ESPECIAL: Cliente está perguntando sobre %s!", strings.ToUpper(string(topic)))
		b.WriteString("\n- RESPONDA IMEDIATAMENTE com uma LISTA FORMATADA e ORGANIZADA")
		b.WriteString("\n- Inclua nome e preço de cada item")
		b.WriteString("\n- NÃO faça perguntas adicionais, apenas apresente a lista solicitada")
		switch topic {
		case MenuTopicPizzas:
			b.WriteString("\n- RESPONDA com a lista completa de PIZZAS")
		case MenuTopicDrinks:
			b.WriteString("\n- RESPONDA com a lista completa de BEBIDAS")
		case MenuTopicDesserts:
			b.WriteString("\n- RESPONDA com a lista completa de SOBREMESAS")
		case MenuTopicAll:
			b.WriteString("\n- RESPONDA com o cardápio COMPLETO organizado por categorias")
		}
		b.WriteString("\n- Após a lista, pergunte qual item desperta mais interesse")
		return
	}

	switch hint {
	case HintRespectRejection:
		b.WriteString("\n- ATENÇÃO: Cliente está REJEITANDO algo. Seja respeitoso e mude de categoria!")
	case HintSellPizza:
		b.WriteString("\n- PRIORIDADE: Vender pizza (foque nas mais populares: Calabresa, Margherita, Frango c/ Catupiry)")
	case HintOfferDrink:
		b.WriteString("\n- PRIORIDADE: Oferecer bebida para acompanhar a pizza")
		b.WriteString("\n- NUNCA volte para oferecer pizza novamente")
	case HintOfferDessert:
		b.WriteString("\n- PRIORIDADE: Oferecer sobremesa para finalizar")
		b.WriteString("\n- NUNCA volte para pizza ou bebida")
	case HintFinalizeOrder:
		b.WriteString("\n- PRIORIDADE: FINALIZAR O PEDIDO")
		b.WriteString("\n- Informar resumo do pedido com total")
		b.WriteString("\n- Perguntar endereço de entrega")
		b.WriteString("\n- Informar tempo estimado de 35-45 minutos")
		b.WriteString("\n- NUNCA ofereça mais itens, apenas finalize")
	case HintPostCompletion:
		b.WriteString("\n- Pedido finalizado. Agradecer e confirmar entrega")
	}
}

func writeMenuSection(b *strings.Builder, title string, items []menu.Item) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n" + title)
	for _, item := range items {
		fmt.Fprintf(b, "\n- %s - R$ %s", item.Name, formatPrice(item.Price))
	}
}

func formatPrice(price float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", price), ".", ",", 1)
}

func simNao(v bool) string {
	if v {
		return "SIM"
	}
	return "NÃO"
}
