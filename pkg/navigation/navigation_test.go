package navigation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		path string
		want Route
	}{
		{"/", Route{Page: PageLanding, Path: "/"}},
		{"/app", Route{Page: PageWizard, Path: "/app"}},
		{"/app/", Route{Page: PageWizard, Path: "/app"}},
		{"/knowledge-bases?search=it", Route{Page: PageKnowledgeBases, Path: "/knowledge-bases"}},
		{"/datasets", Route{Page: PageDatasets, Path: "/datasets"}},
		{"/chat/kb-1", Route{Page: PageChat, Path: "/chat/kb-1", KnowledgeBaseID: "kb-1"}},
		{"/chat/", Route{Page: PageNotFound, Path: "/chat"}},
		{"/chat/kb-1/extra", Route{Page: PageNotFound, Path: "/chat/kb-1/extra"}},
		{"/settings", Route{Page: PageNotFound, Path: "/settings"}},
		{"", Route{Page: PageNotFound, Path: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Resolve(tt.path)); diff != "" {
				t.Errorf("Resolve(%q) mismatch (-want +got):\n%s", tt.path, diff)
			}
		})
	}
}

func TestChatPathRoundTrip(t *testing.T) {
	path := ChatPath("kb 2")
	if path != "/chat/kb%202" {
		t.Fatalf("ChatPath = %q", path)
	}
	if got := Resolve(path).KnowledgeBaseID; got != "kb 2" {
		t.Errorf("KnowledgeBaseID = %q", got)
	}
}
