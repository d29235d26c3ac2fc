package markup

import (
	"fmt"
	"strings"

	"formedit/internal/form"
)

// Render regenerates canonical markup from the question model: fixed
// two-space indentation, one div.question per question, and input names
// derived from the question index (q0 for single-select rows, q0[] for
// multi-select). Same questions in, byte-identical markup out.
func Render(questions []form.Question) string {
	var out strings.Builder
	out.WriteString("<form>\n")
	for qi, question := range questions {
		out.WriteString("  <div class=\"question\">\n")
		fmt.Fprintf(&out, "    <p>%s</p>\n", escape(question.Text))
		for _, option := range question.Options {
			value := escape(option)
			fmt.Fprintf(&out, "    <label><input type=%q name=%q value=\"%s\" /> %s</label>\n",
				question.Kind.Wire(), inputName(qi, question.Kind), value, value)
		}
		out.WriteString("  </div>\n")
	}
	out.WriteString("</form>")
	return out.String()
}

func inputName(index int, kind form.Kind) string {
	if kind == form.MultiSelect {
		return fmt.Sprintf("q%d[]", index)
	}
	return fmt.Sprintf("q%d", index)
}

func escape(value string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return replacer.Replace(value)
}
