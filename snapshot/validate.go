package snapshot

import "fmt"

func validateSnapshot(snap *Snapshot, limits Limits) error {
	if snap == nil {
		return fmt.Errorf("%w: snapshot is nil", ErrValidation)
	}
	l := snap.Layout
	if l == nil {
		return fmt.Errorf("%w: layout is nil", ErrValidation)
	}
	if l.PageGap < 0 {
		return fmt.Errorf("%w: negative page gap", ErrValidation)
	}
	if len(l.Pages) > limits.MaxPages {
		return fmt.Errorf("%w: too many pages", ErrLimitExceeded)
	}
	fragments := 0
	for i, page := range l.Pages {
		if page == nil {
			return fmt.Errorf("%w: page %d is nil", ErrValidation, i)
		}
		if page.Number != i+1 {
			return fmt.Errorf("%w: page at index %d numbered %d, pages must be dense and 1-indexed", ErrValidation, i, page.Number)
		}
		if page.Size.Width <= 0 || page.Size.Height <= 0 {
			return fmt.Errorf("%w: page %d has non-positive size", ErrValidation, page.Number)
		}
		for j, frag := range page.Fragments {
			if frag == nil {
				return fmt.Errorf("%w: page %d fragment %d is nil", ErrValidation, page.Number, j)
			}
		}
		fragments += len(page.Fragments)
	}
	if fragments > limits.MaxFragments {
		return fmt.Errorf("%w: too many fragments", ErrLimitExceeded)
	}
	for i, f := range l.Fields {
		if f.Page < 0 || f.Page > len(l.Pages) {
			return fmt.Errorf("%w: field %d references page %d of %d", ErrValidation, i, f.Page, len(l.Pages))
		}
	}
	return nil
}
