package model

import (
	"fmt"
	"strings"
)

// Package is one of the holiday packages the agency sells.
type Package string

const (
	PackageRedangIsland     Package = "REDANG_ISLAND"
	PackagePerhentianIsland Package = "PERHENTIAN_ISLAND"
	PackageHatyaiThailand   Package = "HATYAI_THAILAND"
	PackagePhuketThailand   Package = "PHUKET_THAILAND"
)

type packageInfo struct {
	displayName  string
	nightlyPrice int
}

// catalogue is ordered by menu choice: index 0 is choice 1.
var catalogue = []Package{
	PackageRedangIsland,
	PackagePerhentianIsland,
	PackageHatyaiThailand,
	PackagePhuketThailand,
}

var packageInfos = map[Package]packageInfo{
	PackageRedangIsland:     {displayName: "REDANG ISLAND", nightlyPrice: 250},
	PackagePerhentianIsland: {displayName: "PERHENTIAN ISLAND", nightlyPrice: 300},
	PackageHatyaiThailand:   {displayName: "HATYAI, THAILAND", nightlyPrice: 350},
	PackagePhuketThailand:   {displayName: "PHUKET, THAILAND", nightlyPrice: 450},
}

// Packages returns the catalogue in menu order.
func Packages() []Package {
	out := make([]Package, len(catalogue))
	copy(out, catalogue)

	return out
}

// PackageFromChoice maps a 1-based menu choice to its package.
func PackageFromChoice(choice int) (Package, error) {
	if choice < 1 || choice > len(catalogue) {
		return "", fmt.Errorf("choice %d: %w", choice, ErrUnknownPackage)
	}

	return catalogue[choice-1], nil
}

// ParsePackage accepts a package code, case-insensitively.
func ParsePackage(code string) (Package, error) {
	p := Package(strings.ToUpper(strings.TrimSpace(code)))
	if !p.Valid() {
		return "", fmt.Errorf("package %q: %w", code, ErrUnknownPackage)
	}

	return p, nil
}

func (p Package) Valid() bool {
	_, ok := packageInfos[p]

	return ok
}

// Choice returns the 1-based menu choice, or 0 for an unknown package.
func (p Package) Choice() int {
	for i, c := range catalogue {
		if c == p {
			return i + 1
		}
	}

	return 0
}

func (p Package) NightlyPrice() int {
	return packageInfos[p].nightlyPrice
}

func (p Package) DisplayName() string {
	return packageInfos[p].displayName
}
