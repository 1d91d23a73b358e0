package serviceImp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growsphere/pkg/research"
	"growsphere/pkg/research/service"
	"growsphere/pkg/sim"
)

func newResearcher(t *testing.T, l sim.Latency) service.Researcher {
	t.Helper()
	table, err := research.LoadTable()
	require.NoError(t, err)
	return NewMockResearcher(table, NewMockImageSearch(l), l)
}

func TestLookup_KnownAndGeneric(t *testing.T) {
	r := newResearcher(t, sim.Latency{})

	f, err := r.Lookup(context.Background(), "Corn")
	require.NoError(t, err)
	assert.Equal(t, "Corn (Maize)", f.Name)
	assert.Equal(t, 0.95, f.Confidence)
	assert.Equal(t, research.ImageFor("Corn"), f.Image)

	f, err = r.Lookup(context.Background(), "Basil")
	require.NoError(t, err)
	assert.Equal(t, "Basil", f.Name)
	assert.Equal(t, research.GenericConfidence, f.Confidence)
	assert.Equal(t, research.ImageFor("Basil"), f.Image)

	d := f.Draft()
	assert.Equal(t, 3, d.GrowthPeriod)
	assert.Equal(t, f.Image, d.Image)
}

func TestLookup_EmptyName(t *testing.T) {
	_, err := newResearcher(t, sim.Latency{}).Lookup(context.Background(), "  ")
	assert.ErrorIs(t, err, research.ErrEmptyName)
}

func TestLookup_Cancelled(t *testing.T) {
	r := newResearcher(t, sim.Latency{Base: time.Hour, Scale: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Lookup(ctx, "Tomato")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchLink_HistoryDedupAndCap(t *testing.T) {
	s := NewResearchService(newResearcher(t, sim.Latency{}))

	l, err := s.SearchLink(" tomato growing guide ")
	require.NoError(t, err)
	assert.Equal(t, "https://www.google.com/search?q=tomato%20growing%20guide%20plant%20growing%20guide%20farming", l.URL)

	for _, q := range []string{"a", "b", "c", "d", "e", "a"} {
		_, err := s.SearchLink(q)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"a", "e", "d", "c", "b"}, s.SearchHistory())

	_, err = s.SearchLink("")
	assert.ErrorIs(t, err, research.ErrEmptyName)
}

const careSheet = `<html><head><title>Basil care</title></head><body>
<h1>Sweet Basil</h1>
<p>A fragrant herb, <em>Ocimum basilicum</em>.</p>
<img src="/img/basil.jpg">
<h2>Climate</h2><p>Warm, 21-27°C.</p><p>Full sun.</p>
<h2>Soil</h2><p>Moist,   well-drained soil.</p>
<dl><dt>Fertilizer</dt><dd>Balanced liquid feed monthly</dd></dl>
<h3>Growth period</h3><p>About 2 months to first harvest.</p>
<h3>Planting seasons</h3><p>Spring, Summer</p>
<h3>Common diseases</h3><ul><li>Downy mildew</li><li>Fusarium wilt</li></ul>
<h3>Tips</h3><ul><li>Pinch flowers</li></ul>
</body></html>`

func TestImport(t *testing.T) {
	s := NewResearchService(newResearcher(t, sim.Latency{}))
	f, err := s.Import(strings.NewReader(careSheet), "")
	require.NoError(t, err)

	assert.Equal(t, "Sweet Basil", f.Name)
	assert.Equal(t, "Ocimum basilicum", f.ScientificName)
	assert.Equal(t, "Warm, 21-27°C. Full sun.", f.Climate)
	assert.Equal(t, "Moist, well-drained soil.", f.Soil)
	assert.Equal(t, "Balanced liquid feed monthly", f.Fertilizer)
	assert.Equal(t, 2, f.GrowthPeriod)
	assert.Equal(t, []string{"Spring", "Summer"}, f.PlantingSeasons)
	assert.Equal(t, []string{"Downy mildew", "Fusarium wilt"}, f.CommonDiseases)
	assert.Equal(t, []string{"Pinch flowers"}, f.Tips)
	assert.Equal(t, "/img/basil.jpg", f.Image)
	assert.Equal(t, ImportedConfidence, f.Confidence)

	f, err = s.Import(strings.NewReader(careSheet), "Basil")
	require.NoError(t, err)
	assert.Equal(t, "Basil", f.Name)

	_, err = s.Import(strings.NewReader("<html><body><p>nothing</p></body></html>"), "")
	assert.Error(t, err)
}

func TestImportURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/basil" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(careSheet))
	}))
	defer srv.Close()

	s := NewResearchService(newResearcher(t, sim.Latency{}))
	f, err := s.ImportURL(context.Background(), srv.URL+"/basil", "")
	require.NoError(t, err)
	assert.Equal(t, "Sweet Basil", f.Name)

	_, err = s.ImportURL(context.Background(), srv.URL+"/missing", "")
	assert.Error(t, err)
}
