// Package siteroute maps public site paths to pages and keeps a
// navigation history.
package siteroute

import (
	"regexp"
	"strings"
)

// Page names a screen of the site.
type Page string

const (
	PageHome            Page = "home"
	PageLogin           Page = "login"
	PageAdmin           Page = "admin"
	PageChurchIntro     Page = "church-intro"
	PageDirections      Page = "directions"
	PageBulletinDetail  Page = "bulletin-detail"
	PageBulletins       Page = "bulletin"
	PageWorshipGuide    Page = "worship-guide"
	PageNewFamilyVisit  Page = "new-family-visit"
	PageSermonDetail    Page = "sermon-detail"
	PageGalleryDetail   Page = "gallery-detail"
	PageGallery         Page = "gallery"
	PageEvents          Page = "events"
	PageComingSoon      Page = "coming-soon"
	PageDonationReceipt Page = "donation-receipt"
	PagePastorSchedule  Page = "pastor-schedule"
)

// Rule matches a path either exactly or by pattern. Pattern submatches
// are exposed as params under the names in Params.
type Rule struct {
	Page      Page
	Path      string
	Pattern   *regexp.Regexp
	Params    []string
	Protected bool
}

func (r Rule) match(path string) (map[string]string, bool) {
	if r.Pattern == nil {
		return nil, path == r.Path
	}
	m := r.Pattern.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}
	params := make(map[string]string, len(r.Params))
	for i, name := range r.Params {
		if i+1 < len(m) {
			params[name] = m[i+1]
		}
	}
	return params, true
}

// Rules is the ordered route table. The first matching rule wins, so
// detail patterns come before their list paths.
var Rules = []Rule{
	{Page: PageLogin, Path: "/login"},
	{Page: PageAdmin, Path: "/admin", Protected: true},
	{Page: PageChurchIntro, Path: "/church-intro"},
	{Page: PageDirections, Path: "/directions"},
	{Page: PageBulletinDetail, Pattern: regexp.MustCompile(`^/bulletin/(.+)$`), Params: []string{"id"}},
	{Page: PageBulletins, Path: "/bulletin"},
	{Page: PageWorshipGuide, Path: "/worship-guide"},
	{Page: PageNewFamilyVisit, Path: "/new-family-visit"},
	{Page: PageSermonDetail, Pattern: regexp.MustCompile(`^/sermon/(.+)$`), Params: []string{"id"}},
	{Page: PageGalleryDetail, Pattern: regexp.MustCompile(`^/gallery/(.+)$`), Params: []string{"id"}},
	{Page: PageGallery, Path: "/gallery"},
	{Page: PageEvents, Path: "/events"},
	{Page: PageComingSoon, Path: "/coming-soon"},
	{Page: PageDonationReceipt, Path: "/donation-receipt"},
	{Page: PagePastorSchedule, Path: "/pastor-schedule"},
}

// Match is the result of matching a path.
type Match struct {
	Page      Page
	Params    map[string]string
	Protected bool
}

// MatchPath returns the page for path. Query strings and fragments are
// ignored; an unmatched path is the home page.
func MatchPath(path string) Match {
	path = Clean(path)
	for _, r := range Rules {
		if params, ok := r.match(path); ok {
			return Match{Page: r.Page, Params: params, Protected: r.Protected}
		}
	}
	return Match{Page: PageHome}
}

// Clean strips the query and fragment and makes the path absolute.
func Clean(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}
