package main

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	url2 "net/url"
	"os"
	"strings"
	"testing"
)

func Test_application_home(t *testing.T) {
	ts := startTestServer(t, os.Stdout, testLookupEnv)

	doc := ts.GetDoc(t, "/")
	require.Equal(t, 1, doc.Find("form[action='/begin']").Length())
	assert.Greater(t, doc.Find("section.opening p").Length(), 1)

	// Without a session in progress, the chambers bounce back to the front page.
	resp := ts.Get(t, "/chambers")
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/", resp.Request.URL.Path)
}

func Test_application_playthrough(t *testing.T) {
	ts := startTestServer(t, os.Stdout, testLookupEnv)

	doc := ts.GetDoc(t, "/")

	// Beginning a playthrough lands on the chambers menu.
	doc = ts.SubmitForm(t, doc, "/begin", nil)
	require.Equal(t, 6, doc.Find("ul.chambers a").Length())

	// The morning court holds only faint evidence, which is visible for every culprit, so the
	// run below stays deterministic: three faint memories never reach the proceed threshold.
	doc = ts.GetDoc(t, "/chambers/dawn-court")
	require.Equal(t, 3, doc.Find("ul.evidence form").Length())

	doc = ts.SubmitForm(t, doc, "/chambers/dawn-court/crystallise", url2.Values{"item": {"letter-of-fear"}})
	doc = ts.SubmitForm(t, doc, "/chambers/dawn-court/crystallise", url2.Values{"item": {"prideful-note"}})
	require.Equal(t, 2, doc.Find("aside.satchel ul li").Length())

	// Crystallising the same memory twice leaves the satchel unchanged.
	fragment := ts.crystalliseOverHtmx(t, doc, "/chambers/dawn-court/crystallise", "prideful-note")
	assert.Contains(t, fragment.Text(), "already in the satchel")
	assert.Equal(t, 2, fragment.Find("ul li").Length())

	doc = ts.SubmitForm(t, doc, "/chambers/dawn-court/crystallise", url2.Values{"item": {"cracked-totem"}})
	require.Equal(t, 3, doc.Find("aside.satchel ul li").Length())
	assert.Contains(t, doc.Find("aside.satchel").Text(), "Total weight 3")

	// A fourth memory does not fit.
	doc = ts.GetDoc(t, "/chambers/inner-courtyard")
	fragment = ts.crystalliseOverHtmx(t, doc, "/chambers/inner-courtyard/crystallise", "kitchen-token")
	assert.Contains(t, fragment.Text(), "three crystallised memories")
	assert.Equal(t, 3, fragment.Find("ul li").Length())

	// The accusation page warns that the ritual cannot be bound with this little evidence.
	doc = ts.GetDoc(t, "/accuse")
	require.Equal(t, 3, doc.Find("ul.suspects form").Length())
	assert.Contains(t, doc.Text(), "Below twelve")

	// Whoever is named, three faint memories collapse the ritual.
	doc = ts.SubmitForm(t, doc, "/accuse", url2.Values{"suspect": {"queen-elira"}})
	assert.Equal(t, "Truth Unclaimed", doc.Find("main h1").Text())
	assert.Contains(t, doc.Find("section.tally").Text(), "Truth Unclaimed: 1")

	// The epilogue is stable across refreshes and does not count the verdict twice.
	doc = ts.GetDoc(t, "/epilogue")
	assert.Equal(t, "Truth Unclaimed", doc.Find("main h1").Text())
	assert.Contains(t, doc.Find("section.tally").Text(), "Truth Unclaimed: 1")

	// Beginning again resets the satchel.
	doc = ts.SubmitForm(t, doc, "/begin", nil)
	require.Equal(t, 6, doc.Find("ul.chambers a").Length())
	doc = ts.GetDoc(t, "/chambers/dawn-court")
	assert.Equal(t, 3, doc.Find("ul.evidence form").Length())
}

// crystalliseOverHtmx posts a crystallise request the way the htmx-enhanced form does and
// returns the satchel fragment from the response.
func (s *testServer) crystalliseOverHtmx(
	t *testing.T,
	doc *goquery.Document,
	actionURLPath string,
	itemID string,
) *goquery.Document {
	t.Helper()
	csrfToken, ok := doc.Find("input[name=csrf_token]").First().Attr("value")
	require.True(t, ok, "csrf_token not found in document")

	formData := url2.Values{}
	formData.Add("csrf_token", csrfToken)
	formData.Add("item", itemID)
	req := s.NewRequest(t, http.MethodPost, actionURLPath, strings.NewReader(formData.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")

	resp, err := s.client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer func() {
		require.NoError(t, resp.Body.Close())
	}()
	fragment, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return fragment
}
