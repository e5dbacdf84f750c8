package models

import "strings"

// Known material types accepted for pickup
const (
	MaterialPaper   = "paper"
	MaterialPlastic = "plastic"
	MaterialMetal   = "metal"
	MaterialGlass   = "glass"
	MaterialEWaste  = "ewaste"
)

// MaterialSet is a non-empty set of material types on a pickup. It is a
// first-class set in the domain; the comma-joined encoding exists only in
// the repository layer.
type MaterialSet []string

// ParseMaterialSet decodes the stored comma-joined representation.
func ParseMaterialSet(joined string) MaterialSet {
	if joined == "" {
		return MaterialSet{}
	}
	parts := strings.Split(joined, ",")
	set := make(MaterialSet, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			set = append(set, p)
		}
	}
	return set
}

// NewMaterialSet normalizes and deduplicates raw material names.
func NewMaterialSet(raw []string) MaterialSet {
	seen := make(map[string]bool, len(raw))
	set := make(MaterialSet, 0, len(raw))
	for _, m := range raw {
		m = strings.ToLower(strings.TrimSpace(m))
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		set = append(set, m)
	}
	return set
}

// Join encodes the set for storage.
func (s MaterialSet) Join() string {
	return strings.Join(s, ",")
}

// Contains reports whether the set includes the given material.
func (s MaterialSet) Contains(material string) bool {
	for _, m := range s {
		if m == material {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the set has no materials.
func (s MaterialSet) IsEmpty() bool {
	return len(s) == 0
}
