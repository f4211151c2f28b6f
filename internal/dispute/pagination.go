package dispute

import (
	"net/url"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
)

const (
	PageSize  = 20
	PageParam = "page"
)

// ParsePage reads the page query parameter. Absent, malformed and
// non-positive values all mean page 1.
func ParsePage(query url.Values) int {
	raw := query.Get(PageParam)
	if raw == "" {
		return 1
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Page is a window over the factory's game list, newest first.
type Page struct {
	Current int
	Size    int
	Total   uint64
}

func NewPage(current int, total uint64) Page {
	return Page{
		Current: max(1, current),
		Size:    PageSize,
		Total:   total,
	}
}

func (p Page) Offset() uint64 {
	return uint64(p.Current-1) * uint64(p.Size)
}

func (p Page) TotalPages() uint64 {
	size := uint64(p.Size)
	return (p.Total + size - 1) / size
}

// DisplayTotalPages never reports fewer than one page.
func (p Page) DisplayTotalPages() uint64 {
	return max(1, p.TotalPages())
}

// Window returns the logical index of the newest game on the page and the
// number of games to read walking backwards from it. ok is false when the
// page lies past the end of the list.
func (p Page) Window() (start, count uint64, ok bool) {
	offset := p.Offset()
	if offset >= p.Total {
		return 0, 0, false
	}
	return p.Total - 1 - offset, min(uint64(p.Size), p.Total-offset), true
}

func (p Page) HasPrev() bool {
	return p.Current > 1
}

func (p Page) HasNext() bool {
	return uint64(p.Current) < p.TotalPages()
}

// PrevPage returns query pointing at the previous page. Page 1 is expressed by
// dropping the parameter. ok is false, and query is returned untouched, when
// there is no previous page.
func (p Page) PrevPage(query url.Values) (url.Values, bool) {
	if !p.HasPrev() {
		return query, false
	}
	return withPage(query, p.Current-1), true
}

func (p Page) NextPage(query url.Values) (url.Values, bool) {
	if !p.HasNext() {
		return query, false
	}
	return withPage(query, p.Current+1), true
}

func withPage(query url.Values, page int) url.Values {
	out := make(url.Values, len(query))
	for k, v := range query {
		out[k] = append([]string(nil), v...)
	}

	if page <= 1 {
		out.Del(PageParam)
	} else {
		out.Set(PageParam, strconv.Itoa(page))
	}
	return out
}

// GameList is the derived state of a game list view. It belongs to a single
// factory; pointing it at another factory discards everything derived from
// the previous one.
type GameList struct {
	Factory common.Address
	Page    Page
	Games   []GameSummary
}

// SetFactory switches the list to factory and reports whether state was reset.
func (l *GameList) SetFactory(factory common.Address) bool {
	if l.Factory == factory {
		return false
	}
	*l = GameList{Factory: factory}
	return true
}

// Update replaces the page and its games with freshly read values.
func (l *GameList) Update(page Page, games []GameSummary) {
	l.Page = page
	l.Games = games
}
