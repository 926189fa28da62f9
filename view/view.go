// Package view renders a published article as a standalone HTML page.
package view

import (
	"bufio"
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/icza/gox/timex"
	"github.com/wansing/chronicle/core"
	"gitlab.com/golang-commonmark/markdown"
	"golang.org/x/text/language"
)

var markdownParser = markdown.New(markdown.HTML(true), markdown.Linkify(true), markdown.Typographer(true), markdown.MaxNesting(10))

var langMatcher = language.NewMatcher([]language.Tag{
	language.AmericanEnglish, // default
	language.Japanese,
})

var pageTmpl = template.Must(template.New("article").Parse(`<!DOCTYPE html>
<html>
	<head>
		<meta charset="utf-8">
		<meta name="viewport" content="width=device-width, initial-scale=1">
		<title>{{ .Title }}</title>
	</head>
	<body>
		<article>
			<header>
				{{ with .Icon }}<div class="article-icon">{{ . }}</div>{{ end }}
				<h1 id="article-title">{{ .Title }}</h1>
				<div class="article-meta">
					{{ .Author }}
					{{ with .Date }} &middot; {{ . }}{{ end }}
					{{ with .Age }} &middot; {{ . }}{{ end }}
					{{ if .Draft }} &middot; draft{{ end }}
				</div>
			</header>
			{{ .Body }}
		</article>
	</body>
</html>`))

type pageData struct {
	Title  string
	Icon   string
	Author string
	Date   string // empty for drafts
	Age    string // empty for drafts
	Draft  bool
	Body   template.HTML
}

// Render writes the article as an HTML page. The publish date is formatted
// according to the Accept-Language header, drafts carry a draft marker instead.
func Render(w io.Writer, article *core.Article, authorName string, acceptLanguage string) error {

	var body = renderMarkdown(strings.NewReader(article.Content))

	var title = article.Title
	if title == "" {
		title = Heading(strings.NewReader(body))
	}
	if title == "" {
		title = fmt.Sprintf("article %d", article.ID)
	}

	var data = &pageData{
		Title:  title,
		Icon:   article.Icon,
		Author: authorName,
		Draft:  !article.IsPublished(),
		Body:   template.HTML(body),
	}

	if article.IsPublished() {
		var published = time.Unix(*article.Published, 0)
		data.Date = formatDateTime(published, acceptLanguage)
		data.Age = relativeAge(published)
	}

	return pageTmpl.Execute(w, data)
}

func formatDateTime(t time.Time, acceptLanguage string) string {
	tag, _ := language.MatchStrings(langMatcher, acceptLanguage)
	base, _ := tag.Base()
	switch base.String() {
	case "ja":
		return t.Format("2006年1月2日 15:04")
	default:
		return t.Format("January 2, 2006 3:04 PM")
	}
}

// relativeAge renders the largest unit of the time passed since t.
func relativeAge(t time.Time) string {

	year, month, day, hour, min, _ := timex.Diff(time.Now(), t)

	switch {
	case year > 0:
		return plural(year, "year")
	case month > 0:
		return plural(month, "month")
	case day > 0:
		return plural(day, "day")
	case hour > 0:
		return plural(hour, "hour")
	case min > 0:
		return plural(min, "minute")
	default:
		return "published just now"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("published 1 %s ago", unit)
	}
	return fmt.Sprintf("published %d %ss ago", n, unit)
}

func renderMarkdown(input io.Reader) string {

	// remove all tabs from the beginning of each line

	var unindentedContent = &bytes.Buffer{}

	lineScanner := bufio.NewScanner(input)
	for lineScanner.Scan() {
		line := lineScanner.Text()
		for len(line) > 0 && line[0] == '\t' {
			line = line[1:]
		}
		unindentedContent.WriteString(line)
		unindentedContent.WriteString("\n")
	}

	return markdownParser.RenderToString(unindentedContent.Bytes())
}
