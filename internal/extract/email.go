package extract

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jhillyerd/enmime"

	"riskmai/internal/model"
)

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

func extractEmail(blob []byte, mode EmailBodyMode) (string, *model.EmailMeta, error) {
	if len(bytes.TrimSpace(blob)) == 0 {
		return "", nil, extractionErrorf("empty email")
	}

	env, err := enmime.ReadEnvelope(bytes.NewReader(blob))
	if err != nil {
		return "", nil, extractionErrorf("failed to parse email: %v", err)
	}

	meta := &model.EmailMeta{
		Subject: env.GetHeader("Subject"),
		From:    env.GetHeader("From"),
		To:      env.GetHeader("To"),
		Date:    env.GetHeader("Date"),
	}

	var plain, html []string
	walkParts(env.Root, func(p *enmime.Part) {
		if strings.EqualFold(p.Disposition, "attachment") || p.FileName != "" {
			return
		}
		switch strings.ToLower(p.ContentType) {
		case "text/plain":
			plain = append(plain, string(p.Content))
		case "text/html":
			if stripped := StripHTML(string(p.Content)); stripped != "" {
				html = append(html, stripped)
			}
		}
	})

	var body string
	switch {
	case mode == BodyPreferPlain && len(plain) > 0:
		body = joinParts(plain)
	case mode == BodyPreferPlain:
		body = joinParts(html)
	default:
		body = strings.Join(plain, "") + strings.Join(html, "")
	}

	return FullContent(meta, body), meta, nil
}

// joinParts puts each trimmed part on its own line.
func joinParts(parts []string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n")
}

// walkParts visits the MIME tree depth first in document order.
func walkParts(p *enmime.Part, visit func(*enmime.Part)) {
	for ; p != nil; p = p.NextSibling {
		visit(p)
		walkParts(p.FirstChild, visit)
	}
}

// StripHTML removes tags and collapses runs of whitespace.
func StripHTML(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// FullContent renders the canonical text of an email: its four headers, a blank line, then the body.
func FullContent(meta *model.EmailMeta, body string) string {
	return fmt.Sprintf("Subject: %s\nFrom: %s\nTo: %s\nDate: %s\n\n%s",
		meta.Subject, meta.From, meta.To, meta.Date, body)
}
