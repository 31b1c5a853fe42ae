package video

// MP4 is the only container offered for download.
const MP4 = "mp4"

// Eligible reports whether the variant is an MP4 with an audio track.
func (v Variant) Eligible() bool {
	return v.Extension == MP4 && v.HasAudio
}

// Height returns the numeric quality, if any.
func (v Variant) Height() (int, bool) {
	return leadingInt(v.Quality)
}

// Select picks the download target. The first eligible variant in upstream
// order that meets min wins. Otherwise the highest eligible quality is used,
// the earliest one on ties. Variants with an unparseable quality never meet
// the threshold and never win the fallback.
func Select(variants []Variant, min Quality) (Variant, error) {
	var eligible []Variant
	for _, v := range variants {
		if v.Eligible() {
			eligible = append(eligible, v)
		}
	}

	if len(eligible) == 0 {
		return Variant{}, ErrNoEligibleVariant
	}

	chosen, found := firstAtLeast(eligible, int(min))
	if !found {
		chosen = best(eligible)
	}

	if chosen.URL == "" {
		return Variant{}, ErrNoDownloadURL
	}

	return chosen, nil
}

func firstAtLeast(variants []Variant, min int) (Variant, bool) {
	for _, v := range variants {
		if h, ok := v.Height(); ok && h >= min {
			return v, true
		}
	}
	return Variant{}, false
}

// best returns the variant with the strictly highest quality, keeping the
// earlier one on ties. When no quality parses, the first variant is returned.
func best(variants []Variant) Variant {
	acc, top, seen := variants[0], 0, false
	for _, v := range variants {
		h, ok := v.Height()
		if !ok {
			continue
		}
		if !seen || h > top {
			acc, top, seen = v, h, true
		}
	}
	return acc
}
