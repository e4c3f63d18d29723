package handlers

import (
	"html"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rohanthewiz/element"
)

const pageCSS = `
	body {
		font-family: sans-serif;
		padding: 50px;
		text-align: center;
	}
	.code-box {
		background: #f0f0f0;
		padding: 20px;
		margin: 20px;
		border-radius: 10px;
		word-break: break-all;
	}
	.code {
		font-family: monospace;
		font-size: 18px;
	}
`

// RenderCallback renders the page shown when the OAuth provider redirects back.
// An error takes precedence over a code; with neither the page waits.
// Values are HTML-escaped before they are placed in the page.
func RenderCallback(params url.Values) string {
	switch CallbackOutcome(params) {
	case outcomeError:
		return renderCallbackError(params.Get("error"), params.Get("error_description"))
	case outcomeCode:
		return renderCallbackSuccess(params.Get("code"))
	default:
		return renderCallbackWaiting()
	}
}

const (
	outcomeError   = "error"
	outcomeCode    = "code"
	outcomeWaiting = "waiting"
)

// CallbackOutcome classifies callback parameters. The code itself is never part of the result.
func CallbackOutcome(params url.Values) string {
	switch {
	case params.Get("error") != "":
		return outcomeError
	case params.Get("code") != "":
		return outcomeCode
	}
	return outcomeWaiting
}

func renderCallbackError(errCode, description string) string {
	b := element.NewBuilder()

	b.Html().R(
		pageHead(b, "Error"),
		b.Body().R(
			b.H1().T("Authorization Error"),
			b.P().T("Error: "+html.EscapeString(errCode)),
			b.P().T(html.EscapeString(description)),
		),
	)

	return b.String()
}

func renderCallbackSuccess(code string) string {
	b := element.NewBuilder()

	b.Html().R(
		pageHead(b, "Success"),
		b.Body().R(
			b.H1().T("Authorization Successful!"),
			b.P().T("Your authorization code is:"),
			b.Div("class", "code-box").R(
				b.Span("class", "code").T(html.EscapeString(code)),
			),
			b.P().T("Copy this code and send it to complete the setup."),
		),
	)

	return b.String()
}

func renderCallbackWaiting() string {
	b := element.NewBuilder()

	b.Html().R(
		pageHead(b, "Callback"),
		b.Body().R(
			b.H1().T("OAuth Callback"),
			b.P().T("Waiting for authorization..."),
		),
	)

	return b.String()
}

// RenderStatusPage renders a small error page for a status code
func RenderStatusPage(status int, message string) string {
	b := element.NewBuilder()
	heading := strconv.Itoa(status) + " " + http.StatusText(status)

	b.Html().R(
		pageHead(b, heading),
		b.Body().R(
			b.H1().T(heading),
			b.P().T(html.EscapeString(message)),
		),
	)

	return b.String()
}

func pageHead(b *element.Builder, title string) any {
	return b.Head().R(
		b.Title().T(title),
		b.Meta("charset", "UTF-8"),
		b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
		b.Style().T(pageCSS),
	)
}
