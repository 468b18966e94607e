package tui

import "github.com/charmbracelet/glamour"

// NewMarkdownRenderer returns a function that renders the account tab's
// static content (FAQ, About) as styled terminal markdown.
func NewMarkdownRenderer(width int) func(string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		// Fall back to raw markdown when the renderer cannot initialize.
		return func(md string) string { return md }
	}
	return func(md string) string {
		out, err := r.Render(md)
		if err != nil {
			return md
		}
		return out
	}
}

// FaqMarkdown is the FAQ pane content.
const FaqMarkdown = `# faq

**How do I pay?**
Checkout supports paying right here over SSH with a card, or finishing in
your browser.

**Where do you ship?**
Everywhere the current region covers. Orders over the region threshold ship
free.

**How is my identity stored?**
Only a fingerprint of your SSH public key. No account, no password.
`

// AboutMarkdown is the About pane content.
const AboutMarkdown = `# about

roastline is a coffee storefront that lives in your terminal. Browse the
catalog, fill a cart and check out without leaving your shell.
`
