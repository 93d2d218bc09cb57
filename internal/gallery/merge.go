package gallery

import "sort"

// Merge combines the session ledger with a remote listing. Session images
// come first, so when an ID appears in both the ledger's copy is kept. The
// result is ordered newest first; equal dates keep insertion order.
func Merge(session, discovered []GalleryImage) []GalleryImage {
	seen := make(map[string]struct{}, len(session)+len(discovered))
	merged := make([]GalleryImage, 0, len(session)+len(discovered))

	for _, group := range [][]GalleryImage{session, discovered} {
		for _, img := range group {
			if _, dup := seen[img.ID]; dup {
				continue
			}
			seen[img.ID] = struct{}{}
			merged = append(merged, img)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].UploadDate.After(merged[j].UploadDate)
	})
	return merged
}
