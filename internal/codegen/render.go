package codegen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"formedit/internal/form"
	"formedit/internal/markup"
	"formedit/internal/payload"
)

// SubmitURL is the endpoint baked into every generated code sample.
const SubmitURL = "http://localhost:5000/api/forms/submit"

// Render produces the textual view of the question model for the given
// target. The markup target returns the canonical markup (regenerated when
// the caller has none); the code targets wrap a pretty-printed payload
// document in fixed request boilerplate. Output is byte-deterministic for a
// given model.
func Render(target Target, questions []form.Question, canonicalMarkup string) (string, error) {
	if target == TargetMarkup {
		if canonicalMarkup != "" {
			return canonicalMarkup, nil
		}
		return markup.Render(questions), nil
	}

	block, err := FormatDocument(payload.Encode(questions))
	if err != nil {
		return "", err
	}
	switch target {
	case TargetPython:
		return renderPython(block), nil
	case TargetVBScript:
		return renderVBScript(block), nil
	case TargetJavaScript:
		return renderJavaScript(block), nil
	default:
		return "", fmt.Errorf("unknown target %q", target)
	}
}

// FormatDocument pretty-prints a payload document with two-space indentation
// and the fixed key order of the wire structs.
func FormatDocument(doc payload.Document) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func renderPython(block string) string {
	return strings.Join([]string{
		"# Python requests example",
		"import requests",
		"",
		fmt.Sprintf("url = %q", SubmitURL),
		TargetPython.Anchor() + block,
		"",
		"resp = requests.post(url, json=payload)",
		"print(resp.status_code)",
		"print(resp.text)",
		"",
	}, "\n")
}

func renderVBScript(block string) string {
	return strings.Join([]string{
		"' VBScript HTTP request example (payload shown as JSON block)",
		`Set objHTTP = CreateObject("WinHttp.WinHttpRequest.5.1")`,
		fmt.Sprintf("url = %q", SubmitURL),
		TargetVBScript.Anchor() + block,
		`objHTTP.Open "POST", url, False`,
		`objHTTP.SetRequestHeader "Content-Type", "application/json"`,
		"objHTTP.Send payload",
		`WScript.Echo objHTTP.Status & " " & objHTTP.ResponseText`,
		"",
	}, "\n")
}

func renderJavaScript(block string) string {
	return strings.Join([]string{
		"// JavaScript (Node.js) fetch example",
		"import fetch from 'node-fetch';",
		"",
		fmt.Sprintf("const url = %q;", SubmitURL),
		TargetJavaScript.Anchor() + block + ";",
		"",
		"async function submitForm() {",
		"  try {",
		"    const resp = await fetch(url, {",
		"      method: 'POST',",
		"      headers: { 'Content-Type': 'application/json' },",
		"      body: JSON.stringify(payload)",
		"    });",
		"    console.log(resp.status);",
		"    console.log(await resp.text());",
		"  } catch (err) {",
		"    console.error('Error:', err);",
		"  }",
		"}",
		"",
		"submitForm();",
		"",
	}, "\n")
}
