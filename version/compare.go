package version

import (
	"cmp"
	"fmt"
	"strings"
)

type semver [3]int

func parseSemver(s string) (semver, error) {
	var v semver
	if _, err := fmt.Sscanf(strings.TrimPrefix(s, "v"), "%d.%d.%d", &v[0], &v[1], &v[2]); err != nil {
		return v, fmt.Errorf("parse version %q: %w", s, err)
	}
	return v, nil
}

// Compare orders two "major.minor.patch" versions, with or without a "v" prefix.
// It returns 1 when a is newer, -1 when b is newer and 0 otherwise.
func Compare(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, err
	}

	bv, err := parseSemver(b)
	if err != nil {
		return 0, err
	}

	for i := range av {
		if c := cmp.Compare(av[i], bv[i]); c != 0 {
			return c, nil
		}
	}
	return 0, nil
}
