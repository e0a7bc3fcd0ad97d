package chains

import "fmt"

// Family selects the adapter implementation of a chain
type Family string

const (
	FamilyArbitrum  Family = "arbitrum"
	FamilyOptimism  Family = "optimism"
	FamilyPolygonZk Family = "polygonzk"
	FamilyGnosis    Family = "gnosis"
	FamilyZkSync    Family = "zksync"
	FamilyLinea     Family = "linea"
	FamilyPolygon   Family = "polygon"
	FamilyScroll    Family = "scroll"
)

var families = []Family{
	FamilyArbitrum, FamilyOptimism, FamilyPolygonZk, FamilyGnosis, FamilyZkSync, FamilyLinea, FamilyPolygon, FamilyScroll,
}

func (f Family) String() string {
	return string(f)
}

// ParseFamily returns the family named s
func ParseFamily(s string) (Family, error) {
	for _, f := range families {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown chain family %q", s)
}
