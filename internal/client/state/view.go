package state

import (
	"strconv"
	"strings"

	"github.com/srosales/sigboard/internal/models"
)

// DefaultPageSize is the fixed number of signature cards per page.
const DefaultPageSize = 6

// pagerWindow is the maximum number of page links shown at once.
const pagerWindow = 5

// SignatureView is a filtered, paginated projection of the local snapshot,
// recomputed on demand. It is a disposable value: nothing holds one past the
// current render cycle.
type SignatureView struct {
	Items       []models.SignatureDB
	Page        int
	TotalPages  int
	TotalItems  int
	PageNumbers []int
	HasPrev     bool
	HasNext     bool
	Empty       bool
}

// filterSignatures returns the snapshot entries matching the search term:
// case-insensitive substring of the name, or substring of the decimal id.
// An empty or blank term matches everything. Snapshot order is preserved.
func filterSignatures(snapshot []models.SignatureDB, term string) []models.SignatureDB {
	term = strings.TrimSpace(term)
	if term == "" {
		return snapshot
	}

	lower := strings.ToLower(term)
	filtered := make([]models.SignatureDB, 0, len(snapshot))
	for _, sig := range snapshot {
		if strings.Contains(strings.ToLower(sig.Name), lower) ||
			strings.Contains(strconv.FormatInt(sig.ID, 10), term) {
			filtered = append(filtered, sig)
		}
	}
	return filtered
}

// buildView computes the visible page of the filtered set. A page beyond the
// last is clamped so a shrinking filter can never index out of range; page 1
// always renders, as an empty state when nothing matches.
func buildView(snapshot []models.SignatureDB, term string, page, pageSize int) SignatureView {
	filtered := filterSignatures(snapshot, term)
	totalPages := (len(filtered) + pageSize - 1) / pageSize

	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return SignatureView{
		Items:       filtered[start:end],
		Page:        page,
		TotalPages:  totalPages,
		TotalItems:  len(filtered),
		PageNumbers: pageNumbers(page, totalPages),
		HasPrev:     page > 1,
		HasNext:     page < totalPages,
		Empty:       len(filtered) == 0,
	}
}

// pageNumbers returns at most pagerWindow page links centered on the current
// page. A single page yields no links: the pager is hidden entirely.
func pageNumbers(page, totalPages int) []int {
	if totalPages <= 1 {
		return nil
	}

	start := page - pagerWindow/2
	if start < 1 {
		start = 1
	}
	end := start + pagerWindow - 1
	if end > totalPages {
		end = totalPages
		if start > end-pagerWindow+1 {
			start = end - pagerWindow + 1
			if start < 1 {
				start = 1
			}
		}
	}

	numbers := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		numbers = append(numbers, i)
	}
	return numbers
}
