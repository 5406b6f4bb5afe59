package navigation

import (
	"sync"
	"time"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/metrics"
)

// Controller is one session's navigation and overlay state. All state
// moves through the mutex; a delayed transition commits on a timer
// goroutine and re-checks its generation under the same lock, so a
// navigation that lands first wins and the stale commit is dropped.
type Controller struct {
	mu sync.Mutex

	page              Page
	selectedProduct   *uint
	activeCategory    string
	activeSubcategory string
	overlays          map[OverlayKind]bool

	// generation increments on every committed or requested navigation;
	// a pending delayed transition only commits if its generation is
	// still current.
	generation    uint64
	transitioning bool

	// onCommit observes every committed page change (last-page tracking,
	// overlay reset on close is separate). It may do I/O or re-enter the
	// controller, so it always runs outside the lock.
	onCommit func(Page)
}

// Snapshot is the controller state returned to the client.
type Snapshot struct {
	Page              Page                 `json:"page"`
	SelectedProduct   *uint                `json:"selectedProduct,omitempty"`
	ActiveCategory    string               `json:"activeCategory,omitempty"`
	ActiveSubcategory string               `json:"activeSubcategory,omitempty"`
	Overlays          map[OverlayKind]bool `json:"overlays"`
	Transitioning     bool                 `json:"transitioning"`
}

func newController(onCommit func(Page)) *Controller {
	return &Controller{
		page:     Splash,
		overlays: make(map[OverlayKind]bool),
		onCommit: onCommit,
	}
}

// State returns a copy of the current state.
func (ctl *Controller) State() Snapshot {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	return ctl.snapshotLocked()
}

func (ctl *Controller) snapshotLocked() Snapshot {
	overlays := make(map[OverlayKind]bool, len(ctl.overlays))
	for k, v := range ctl.overlays {
		overlays[k] = v
	}
	var selected *uint
	if ctl.selectedProduct != nil {
		id := *ctl.selectedProduct
		selected = &id
	}
	return Snapshot{
		Page:              ctl.page,
		SelectedProduct:   selected,
		ActiveCategory:    ctl.activeCategory,
		ActiveSubcategory: ctl.activeSubcategory,
		Overlays:          overlays,
		Transitioning:     ctl.transitioning,
	}
}

// NavigateTo commits a page change immediately. Any pending delayed
// transition is cancelled.
func (ctl *Controller) NavigateTo(page Page) Snapshot {
	ctl.mu.Lock()
	ctl.commitLocked(page)
	snap := ctl.snapshotLocked()
	ctl.mu.Unlock()

	ctl.notifyCommit(page)
	return snap
}

// commitLocked performs the actual page change and upholds the selected
// product invariant: it survives only on product-detail or while the
// hint overlay is open.
func (ctl *Controller) commitLocked(page Page) {
	ctl.generation++
	ctl.transitioning = false
	ctl.page = page

	switch page.Kind {
	case PageCategory:
		ctl.activeCategory = page.Name
	case PageSubcategory:
		ctl.activeSubcategory = page.Name
	}
	if page.Kind != PageProductDetail && !ctl.overlays[OverlayHint] {
		ctl.selectedProduct = nil
	}

	metrics.PageTransitions.Inc()
}

// notifyCommit runs the commit observer. Callers invoke it after
// releasing the lock.
func (ctl *Controller) notifyCommit(page Page) {
	if ctl.onCommit != nil {
		ctl.onCommit(page)
	}
}

// GoBack resolves the fixed back table against the current page.
func (ctl *Controller) GoBack() Snapshot {
	ctl.mu.Lock()
	target := backTarget(ctl.page)
	if ctl.page.Kind == PageProductDetail {
		ctl.selectedProduct = nil
	}
	ctl.commitLocked(target)
	snap := ctl.snapshotLocked()
	ctl.mu.Unlock()

	ctl.notifyCommit(target)
	return snap
}

// SelectProductAndNavigate records the product and lands on its detail
// page in one step.
func (ctl *Controller) SelectProductAndNavigate(productID uint) Snapshot {
	ctl.mu.Lock()
	id := productID
	ctl.selectedProduct = &id
	page := Page{Kind: PageProductDetail}
	ctl.commitLocked(page)
	snap := ctl.snapshotLocked()
	ctl.mu.Unlock()

	ctl.notifyCommit(page)
	return snap
}

// TransitionThenNavigate schedules a page change after the delay. Any
// navigation in the meantime wins and the scheduled commit is dropped.
func (ctl *Controller) TransitionThenNavigate(page Page, delay time.Duration) Snapshot {
	ctl.mu.Lock()
	ctl.generation++
	gen := ctl.generation
	ctl.transitioning = true
	snap := ctl.snapshotLocked()
	ctl.mu.Unlock()

	time.AfterFunc(delay, func() {
		ctl.mu.Lock()
		if ctl.generation != gen {
			ctl.mu.Unlock()
			return
		}
		ctl.commitLocked(page)
		ctl.mu.Unlock()

		ctl.notifyCommit(page)
	})
	return snap
}

// OpenOverlay shows an overlay; the page does not change.
func (ctl *Controller) OpenOverlay(kind OverlayKind) Snapshot {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.overlays[kind] = true
	return ctl.snapshotLocked()
}

// CloseOverlay hides an overlay. The second return reports whether it
// was actually open, so reset hooks fire only on an observed close.
func (ctl *Controller) CloseOverlay(kind OverlayKind) (Snapshot, bool) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()

	wasOpen := ctl.overlays[kind]
	ctl.overlays[kind] = false
	if kind == OverlayHint && ctl.page.Kind != PageProductDetail {
		ctl.selectedProduct = nil
	}
	return ctl.snapshotLocked(), wasOpen
}

// SelectedProduct returns the current selection, if any.
func (ctl *Controller) SelectedProduct() *uint {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if ctl.selectedProduct == nil {
		return nil
	}
	id := *ctl.selectedProduct
	return &id
}
