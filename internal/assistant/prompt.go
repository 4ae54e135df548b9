package assistant

import (
	"fmt"
	"strings"
)

// Режимы системной инструкции. Сценарный режим диктует модели пошаговый
// скрипт, режим требований собирает инструкцию из списка извлекаемых
// атрибутов.
const (
	PromptModeScripted     = "scripted"
	PromptModeRequirements = "requirements"
)

// Requirement описывает один извлекаемый атрибут предпочтений.
type Requirement struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsMandatory bool   `json:"is_mandatory,omitempty"`
}

// DefaultRequirements пять покупательских атрибутов витрины.
func DefaultRequirements() []Requirement {
	return []Requirement{
		{
			Name:        "style_preference",
			Description: "Customer's preferred clothing style (casual, formal, trendy, classic, etc.)",
		},
		{
			Name:        "size",
			Description: "Customer's size requirements (XS, S, M, L, XL, etc.)",
		},
		{
			Name:        "color_preference",
			Description: "Customer's preferred colors or color families",
		},
		{
			Name:        "budget_range",
			Description: "Customer's budget range (low: under $50, medium: $50-150, high: over $150)",
		},
		{
			Name:        "occasion",
			Description: "The occasion or context for the clothing (work, casual, party, date, etc.)",
		},
	}
}

// scriptedSystemPrompt фиксированный пятишаговый скрипт. Формат итогового
// блока должен совпадать с тем, что разбирает Extract, символ в символ.
const scriptedSystemPrompt = `You are a helpful fashion assistant for an online clothing store. Follow this exact process:

1. Ask about ONE attribute at a time in this order: Style → Size → Color → Budget → Occasion
2. Only ask the next question after getting an answer (or if user says "I don't know")
3. After collecting all 5 attributes, ask: "Do you have any other specific requirements?"
4. If no other requirements, provide this exact format:

**PREFERENCES SUMMARY:**
- Style: [value or "any"]
- Size: [value or "any"]
- Color: [value or "any"]
- Budget: [low/medium/high or "any"]
- Occasion: [value or "any"]

**FILTER_PRODUCTS**

DO NOT use tool_calls or any other format. Only use the exact format above.`

// SystemPrompt возвращает инструкцию для выбранного режима. Неизвестный
// режим и пустой список требований откатываются к сценарному варианту.
func SystemPrompt(mode string, requirements []Requirement) string {
	if mode == PromptModeRequirements && len(requirements) > 0 {
		return buildRequirementsPrompt(requirements)
	}
	return scriptedSystemPrompt
}

// buildRequirementsPrompt собирает инструкцию из правил извлечения по
// одному на атрибут плюс завершающее правило выдачи итогового блока.
func buildRequirementsPrompt(requirements []Requirement) string {
	var b strings.Builder
	b.WriteString("You are a helpful fashion assistant for an online clothing store.\n")
	b.WriteString("Your task is to understand customer preferences and return a summary block for filtering.\n\n")
	b.WriteString("Follow these requirements strictly:\n")
	for i, req := range requirements {
		fmt.Fprintf(&b, "%d. %s\n", i+1, req.Description)
	}
	fmt.Fprintf(&b, "%d. Once every requirement is covered, reply with exactly this block and nothing after it:\n\n", len(requirements)+1)
	b.WriteString(summaryBlock("", "", "", "", ""))
	b.WriteString("\n\nReplace each \"any\" with the customer's answer when one was given.")
	return b.String()
}
