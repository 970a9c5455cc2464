// Package navigation resolves the fixed set of application pages.
package navigation

import (
	"net/url"
	"strings"
)

type Page string

const (
	PageLanding        Page = "landing"
	PageWizard         Page = "wizard"
	PageKnowledgeBases Page = "knowledge_bases"
	PageChat           Page = "chat"
	PageDatasets       Page = "datasets"
	PageNotFound       Page = "not_found"
)

const (
	LandingPath        = "/"
	WizardPath         = "/app"
	KnowledgeBasesPath = "/knowledge-bases"
	DatasetsPath       = "/datasets"
	chatPrefix         = "/chat/"
)

var staticPages = map[string]Page{
	LandingPath:        PageLanding,
	WizardPath:         PageWizard,
	KnowledgeBasesPath: PageKnowledgeBases,
	DatasetsPath:       PageDatasets,
}

// Route is a resolved page. KnowledgeBaseID is set for the chat page only.
type Route struct {
	Page            Page   `json:"page"`
	Path            string `json:"path"`
	KnowledgeBaseID string `json:"knowledge_base_id,omitempty"`
}

// ChatPath is the chat page of a knowledge base.
func ChatPath(kbID string) string {
	return chatPrefix + url.PathEscape(kbID)
}

// Resolve maps path to its page. The query string and a trailing slash are
// ignored; anything unmatched is not_found.
func Resolve(path string) Route {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	if page, ok := staticPages[path]; ok {
		return Route{Page: page, Path: path}
	}

	if rest, ok := strings.CutPrefix(path, chatPrefix); ok && rest != "" && !strings.Contains(rest, "/") {
		id, err := url.PathUnescape(rest)
		if err == nil {
			return Route{Page: PageChat, Path: path, KnowledgeBaseID: id}
		}
	}

	return Route{Page: PageNotFound, Path: path}
}
