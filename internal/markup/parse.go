// Package markup maps between the fixed form markup convention and the
// canonical question model. The convention is a single <form> root holding
// div.question containers, each with one <p> title and a run of
// <label><input/></label> option rows.
package markup

import (
	"strings"

	"golang.org/x/net/html"

	"formedit/internal/form"
)

// Parse converts a markup document into an ordered sequence of structural
// questions. Logic and quotas are never present in markup, so the result
// carries none. Malformed markup and markup without a <form> root both yield
// an empty sequence; the two are not distinguishable at this layer.
func Parse(text string) []form.Question {
	root, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil
	}
	formNode := findElement(root, "form")
	if formNode == nil {
		return nil
	}

	var questions []form.Question
	for _, container := range findQuestionContainers(formNode) {
		questions = append(questions, parseQuestion(container))
	}
	return questions
}

func parseQuestion(container *html.Node) form.Question {
	question := form.Question{Text: form.PlaceholderText, Kind: form.SingleSelect}
	if title := findElement(container, "p"); title != nil {
		if text := strings.TrimSpace(textContent(title)); text != "" {
			question.Text = text
		}
	}
	for _, label := range findElements(container, "label") {
		question.Options = append(question.Options, optionValue(label))
	}
	if input := firstChoiceInput(container); input != nil {
		question.Kind = form.KindFromWire(attr(input, "type"))
	}
	return question
}

// optionValue prefers the input's explicit value attribute and falls back to
// the label's own text content.
func optionValue(label *html.Node) string {
	if input := findElement(label, "input"); input != nil {
		if value, ok := lookupAttr(input, "value"); ok {
			return value
		}
	}
	var text strings.Builder
	for child := label.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode {
			text.WriteString(child.Data)
		}
	}
	return strings.TrimSpace(text.String())
}

// firstChoiceInput returns the first radio or checkbox input in the
// container. Its declared type decides the kind for the whole question even
// when later inputs disagree.
func firstChoiceInput(container *html.Node) *html.Node {
	for _, input := range findElements(container, "input") {
		switch attr(input, "type") {
		case "radio", "checkbox":
			return input
		}
	}
	return nil
}

func findQuestionContainers(root *html.Node) []*html.Node {
	var containers []*html.Node
	walk(root, func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "div" && hasClass(node, "question") {
			containers = append(containers, node)
		}
	})
	return containers
}

func findElement(root *html.Node, tag string) *html.Node {
	elements := findElements(root, tag)
	if len(elements) == 0 {
		return nil
	}
	return elements[0]
}

func findElements(root *html.Node, tag string) []*html.Node {
	var elements []*html.Node
	walk(root, func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == tag {
			elements = append(elements, node)
		}
	})
	return elements
}

func walk(root *html.Node, visit func(*html.Node)) {
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		visit(child)
		walk(child, visit)
	}
}

func textContent(node *html.Node) string {
	var text strings.Builder
	walk(node, func(child *html.Node) {
		if child.Type == html.TextNode {
			text.WriteString(child.Data)
		}
	})
	return text.String()
}

func hasClass(node *html.Node, class string) bool {
	for _, field := range strings.Fields(attr(node, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

func attr(node *html.Node, key string) string {
	value, _ := lookupAttr(node, key)
	return value
}

func lookupAttr(node *html.Node, key string) (string, bool) {
	for _, attribute := range node.Attr {
		if attribute.Key == key {
			return attribute.Val, true
		}
	}
	return "", false
}
