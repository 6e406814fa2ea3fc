package booking

import "habi/models"

// Selection tracks which laundry sub-services are currently chosen.
// Toggling an already-selected id removes it; first-selection order is
// preserved. The zero value is an empty selection.
type Selection struct {
	ids []string
}

// NewSelection builds a selection from the given ids, dropping duplicates
// while keeping first-occurrence order.
func NewSelection(ids ...string) *Selection {
	s := &Selection{}
	for _, id := range ids {
		if !s.Has(id) {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

// Has reports whether id is currently selected.
func (s *Selection) Has(id string) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Toggle selects id, or deselects it if already selected.
func (s *Selection) Toggle(id string) {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
	s.ids = append(s.ids, id)
}

// IDs returns the selected ids in selection order.
func (s *Selection) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of selected sub-services.
func (s *Selection) Len() int {
	return len(s.ids)
}

// Total prices the current selection against the menu.
func (s *Selection) Total(menu []models.LaundryService) float64 {
	return CalculateLaundryEstimate(menu, s.ids)
}
