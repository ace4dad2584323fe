package assistant

import (
	"fmt"
	"strings"

	"codeberg.org/voltshop/server/internal/retriever"
)

// BuildProductContext formats retrieved products into the context block
// embedded in the system prompt. Each product renders as a name/price
// line, a details line, and an inline markdown image reference; blocks
// are separated by a blank line and keep the input order. Zero products
// produce an empty string.
func BuildProductContext(products []retriever.ProductResult) string {
	blocks := make([]string, 0, len(products))

	for _, p := range products {
		blocks = append(blocks, fmt.Sprintf(
			"Product: %s ($%s)\nDetails: %s\n![%s](%s)",
			p.Name, p.Price, p.Description, p.Name, p.ImageURL,
		))
	}

	return strings.Join(blocks, "\n\n")
}

// assembles the system instruction for one chat turn
func buildSystemPrompt(productContext string) string {
	var builder strings.Builder

	builder.WriteString(`You are a helpful shopping assistant.
Use the following product information to answer the user's question.
If there are no products do NOT generate any products.

INSTRUCTION: Format your response using Markdown.
- Use **bold** for product names and prices.
- Use lists for features.
- When showing a product, include its image exactly as provided in the context using Markdown syntax: ![Product Name](URL).

CONTEXT:
`)
	builder.WriteString(productContext)

	return builder.String()
}
