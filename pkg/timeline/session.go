package timeline

import (
	"fmt"

	"github.com/tlview/tlview/pkg/logger"
)

// SessionOptions configures a Session.
type SessionOptions struct {
	// PageSize is the page width in nanoseconds. Zero means DefaultPageSize.
	PageSize int64
	// Align starts page 0 at the earliest event start instead of zero.
	Align bool
	// Logger receives load and reorder notices. Nil discards them.
	Logger logger.Logger
}

// Session owns one loaded dataset, its producer order and the page state.
type Session struct {
	l     logger.Logger
	align bool
	pager Paginator

	ds    *Dataset
	order []string
	page  int
	last  int
}

// NewSession creates a session with no dataset loaded.
func NewSession(opts SessionOptions) (*Session, error) {
	size := opts.PageSize
	if size == 0 {
		size = DefaultPageSize
	}
	if size < 0 {
		return nil, ErrInvalidPageSize
	}
	l := opts.Logger
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Session{
		l:     l,
		align: opts.Align,
		pager: Paginator{Size: size},
	}, nil
}

// Load replaces the dataset, the order and the page state in one step and
// moves to page 0.
func (s *Session) Load(ds *Dataset) error {
	if ds == nil {
		return ErrNoDataset
	}
	s.ds = ds
	s.order = append([]string(nil), ds.Order...)
	s.page = 0
	s.pager.Origin = 0
	if s.align {
		s.pager.Origin = ds.MinStart
	}
	s.last = s.pager.LastPage(ds.MaxEnd)
	s.l.Info("loaded dataset %s: %d events, %d producers, pages 0..%d", ds.ID, ds.Len(), len(s.order), s.last)
	return nil
}

// Loaded reports whether a dataset is active.
func (s *Session) Loaded() bool { return s.ds != nil }

// Dataset returns the active dataset or nil.
func (s *Session) Dataset() *Dataset { return s.ds }

// Order returns a copy of the current producer order.
func (s *Session) Order() []string { return append([]string(nil), s.order...) }

// Page returns the current page index.
func (s *Session) Page() int { return s.page }

// TotalPages returns the index of the last reachable page.
func (s *Session) TotalPages() int { return s.last }

// PageSize returns the page width in nanoseconds.
func (s *Session) PageSize() int64 { return s.pager.Size }

// Paginator returns the current paging geometry.
func (s *Session) Paginator() Paginator { return s.pager }

// PageLeft moves one page back. It reports whether the page changed.
func (s *Session) PageLeft() bool {
	if s.ds == nil || s.page <= 0 {
		return false
	}
	s.page--
	return true
}

// PageRight moves one page forward. It reports whether the page changed.
func (s *Session) PageRight() bool {
	if s.ds == nil || s.page >= s.last {
		return false
	}
	s.page++
	return true
}

// GoTo moves to page p, clamped to [0, TotalPages]. It reports whether the
// page changed.
func (s *Session) GoTo(p int) bool {
	if s.ds == nil {
		return false
	}
	if p < 0 {
		p = 0
	}
	if p > s.last {
		p = s.last
	}
	if p == s.page {
		return false
	}
	s.page = p
	return true
}

// Reorder replaces the producer order. names must be a permutation of the
// current order.
func (s *Session) Reorder(names []string) error {
	if s.ds == nil {
		return ErrNoDataset
	}
	if err := ValidateOrder(s.order, names); err != nil {
		return err
	}
	s.order = append([]string(nil), names...)
	s.l.Info("reordered %d producers", len(names))
	return nil
}

// ResetOrder restores the baseline order of the active dataset.
func (s *Session) ResetOrder() {
	if s.ds == nil {
		return
	}
	s.order = append([]string(nil), s.ds.Order...)
}

// SetPageSize changes the page width and recomputes the page count. The new
// current page is the one holding the start of the old page.
func (s *Session) SetPageSize(size int64) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, size)
	}
	if s.ds == nil {
		s.pager.Size = size
		return nil
	}
	oldStart, _ := s.pager.Window(s.page)
	s.pager.Size = size
	s.last = s.pager.LastPage(s.ds.MaxEnd)
	s.page = s.pager.PageOf(oldStart)
	if s.page > s.last {
		s.page = s.last
	}
	s.l.Debug("page size set to %d ns, pages 0..%d", size, s.last)
	return nil
}

// View computes the current page.
func (s *Session) View() (PageView, error) {
	return s.ViewPage(s.page)
}

// ViewPage computes page p without moving the session. p is clamped to
// [0, TotalPages].
func (s *Session) ViewPage(p int) (PageView, error) {
	if s.ds == nil {
		return PageView{}, ErrNoDataset
	}
	if p < 0 {
		p = 0
	}
	if p > s.last {
		p = s.last
	}
	start, end := s.pager.Window(p)
	ivs := s.pager.Slice(s.ds.Events, p)
	return PageView{
		DatasetID:  s.ds.ID,
		Page:       p,
		TotalPages: s.last,
		PageSize:   s.pager.Size,
		Start:      start,
		End:        end,
		Intervals:  ivs,
		Order:      LocalOrder(s.order, ivs),
		Empty:      len(ivs) == 0,
	}, nil
}

// OccupiedPages returns the pages holding at least one event, up to limit
// pages when limit is positive.
func (s *Session) OccupiedPages(limit int) []int {
	if s.ds == nil {
		return nil
	}
	return s.pager.Occupied(s.ds.Events, limit)
}

// Stats summarises the active dataset following the current order.
func (s *Session) Stats() []ProducerStats {
	return Stats(s.ds, s.order)
}
