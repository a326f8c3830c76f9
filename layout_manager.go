package willowui

import (
	"math"
	"sort"
)

// DefaultMaxLayoutPasses bounds how many measure/arrange rounds UpdateLayout
// runs while elements keep invalidating each other.
const DefaultMaxLayoutPasses = 8

// LayoutManager drives layout for one root element. It owns the queue of
// elements whose arrangement went stale without a size change and the
// needs-layout and needs-render flags raised by invalidation.
type LayoutManager struct {
	root *Element

	// MaxPasses caps the number of rounds per UpdateLayout. Values < 1 use
	// DefaultMaxLayoutPasses.
	MaxPasses int

	arrangeQueue []*Element
	arrangeSet   map[*Element]struct{}

	needsLayout bool
	needsRender bool

	last LayoutStats
}

// LayoutStats describes the most recent UpdateLayout call.
type LayoutStats struct {
	Passes   int
	Measures int
	Arranges int
	// Capped is true when MaxPasses was reached with work still pending.
	Capped bool
}

// NewLayoutManager creates a manager for root.
func NewLayoutManager(root Visual) *LayoutManager {
	m := &LayoutManager{
		MaxPasses:  DefaultMaxLayoutPasses,
		arrangeSet: make(map[*Element]struct{}),
	}
	m.SetRoot(root)
	return m
}

// Root returns the managed root element.
func (m *LayoutManager) Root() *Element {
	return m.root
}

// SetRoot replaces the managed root. The previous root is released.
func (m *LayoutManager) SetRoot(root Visual) {
	if m.root != nil {
		m.root.manager = nil
	}
	m.root = nil
	m.clearQueue()
	if root == nil {
		return
	}
	r := childBase(root)
	if r.visualParent != nil {
		panic("willowui: layout root must not have a visual parent")
	}
	r.manager = m
	m.root = r
	m.needsLayout = true
	m.needsRender = true
}

// NeedsLayout reports whether UpdateLayout has work to do.
func (m *LayoutManager) NeedsLayout() bool {
	return m.root != nil && (m.needsLayout || m.root.measureDirty || m.root.arrangeDirty || len(m.arrangeQueue) > 0)
}

// NeedsRender reports whether anything changed visually since the last
// MarkRendered call.
func (m *LayoutManager) NeedsRender() bool {
	return m.needsRender
}

// MarkRendered clears the needs-render flag after the host has drawn.
func (m *LayoutManager) MarkRendered() {
	m.needsRender = false
}

// Stats returns counters from the most recent UpdateLayout.
func (m *LayoutManager) Stats() LayoutStats {
	return m.last
}

func (m *LayoutManager) queueArrange(e *Element) {
	if _, ok := m.arrangeSet[e]; ok {
		return
	}
	m.arrangeSet[e] = struct{}{}
	m.arrangeQueue = append(m.arrangeQueue, e)
}

func (m *LayoutManager) clearQueue() {
	for i := range m.arrangeQueue {
		m.arrangeQueue[i] = nil
	}
	m.arrangeQueue = m.arrangeQueue[:0]
	clear(m.arrangeSet)
}

// UpdateLayout measures the root against available and arranges it at the
// origin. An infinite axis of available arranges the root at its desired size
// on that axis. Queued arrange invalidations are then flushed parents first.
// Rounds repeat while new measure invalidations appear, up to MaxPasses.
func (m *LayoutManager) UpdateLayout(available Size) {
	m.last = LayoutStats{}
	if m.root == nil {
		return
	}
	maxPasses := m.MaxPasses
	if maxPasses < 1 {
		maxPasses = DefaultMaxLayoutPasses
	}
	layoutCounters.reset()

	for pass := 0; pass < maxPasses; pass++ {
		m.last.Passes++
		m.needsLayout = false

		desired := m.root.Measure(available)
		final := Rect{Width: available.Width, Height: available.Height}
		if math.IsInf(final.Width, 1) {
			final.Width = desired.Width
		}
		if math.IsInf(final.Height, 1) {
			final.Height = desired.Height
		}
		m.root.Arrange(final)
		m.flushArrange()

		if !m.root.measureDirty && len(m.arrangeQueue) == 0 {
			break
		}
	}

	m.last.Measures = layoutCounters.measures
	m.last.Arranges = layoutCounters.arranges
	if m.root.measureDirty || len(m.arrangeQueue) > 0 {
		m.last.Capped = true
		logger.Warn("layout pass limit reached", "root", m.root.Name, "passes", maxPasses)
		m.clearQueue()
	}
}

// flushArrange re-arranges queued elements in their existing slots, shallowest
// first. Stops early if a measure invalidation appeared; the next round will
// re-measure from the root.
func (m *LayoutManager) flushArrange() {
	if len(m.arrangeQueue) == 0 {
		return
	}
	queue := make([]*Element, len(m.arrangeQueue))
	copy(queue, m.arrangeQueue)
	m.clearQueue()

	depth := make(map[*Element]int, len(queue))
	for _, e := range queue {
		depth[e] = m.depthOf(e)
	}
	sort.SliceStable(queue, func(i, j int) bool { return depth[queue[i]] < depth[queue[j]] })

	for _, e := range queue {
		if m.root.measureDirty {
			for _, rest := range queue {
				if rest.arrangeDirty {
					m.queueArrange(rest)
				}
			}
			return
		}
		if depth[e] < 0 || !e.arrangeDirty || !e.arranged {
			continue
		}
		e.Arrange(e.slot)
	}
}

// depthOf returns e's distance from the root, or -1 when e is not under it.
func (m *LayoutManager) depthOf(e *Element) int {
	d := 0
	for p := e; p != nil; p = p.visualParent {
		if p == m.root {
			return d
		}
		d++
	}
	return -1
}
