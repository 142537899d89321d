package material

import "fmt"

// BindingSource tells where a role binding came from.
type BindingSource string

const (
	// FromSuffix is a binding made by suffix matching.
	FromSuffix BindingSource = "suffix"
	// FromPacked is a binding made by the channel splitter.
	FromPacked BindingSource = "packed"
)

// Binding is the resolved texture of one role.
type Binding struct {
	Path   string        `json:"path"`
	Source BindingSource `json:"source"`
}

// Assignment maps each resolved role to its texture. Absent roles were not found.
type Assignment map[Role]Binding

// Has reports whether role is bound.
func (a Assignment) Has(role Role) bool {
	_, ok := a[role]
	return ok
}

// hasPath reports whether rel is already bound to any role.
func (a Assignment) hasPath(rel string) bool {
	for _, b := range a {
		if b.Path == rel {
			return true
		}
	}
	return false
}

// Paths returns the bound paths keyed by descriptor key.
func (a Assignment) Paths() map[string]string {
	out := make(map[string]string, len(a))
	for role, b := range a {
		out[string(role)] = b.Path
	}
	return out
}

// Classify binds files to roles in a single pass, in listing order.
// Bindings already present in a are never replaced. The returned notices
// report unmatched files and dropped duplicates.
func Classify(files []AssetFile, a Assignment) []Notice {
	var notices []Notice
	for _, f := range files {
		if a.hasPath(f.RelPath) {
			continue
		}

		role, ok := Resolve(f.Lower)
		if !ok {
			notices = append(notices, Notice{Kind: NoticeUnmatched, File: f.RelPath, Message: "no role fragment matched"})
			continue
		}

		if prev, taken := a[role]; taken {
			notices = append(notices, Notice{
				Kind:    NoticeCollision,
				File:    f.RelPath,
				Message: fmt.Sprintf("%s already bound to %s", role, prev.Path),
			})
			continue
		}

		a[role] = Binding{Path: f.RelPath, Source: FromSuffix}
	}

	return notices
}

// Resolve picks the single role a lowercase file name classifies as.
//
// A name matching both Color and AmbientOcclusion is AmbientOcclusion, since
// the Color fragment "_a" is a prefix of "_ao" and "_ambocc". Any other overlap
// goes to the role with the longest matching fragment, and only equal lengths
// fall back to declaration order. Plain declaration order would send
// "stone_a_normal.png" to Color through its one-letter "_a"; here it is Normal.
func Resolve(lower string) (Role, bool) {
	matches := RolesMatching(lower)
	if len(matches) == 0 {
		return "", false
	}

	var color, ao bool
	for _, m := range matches {
		switch m.Role {
		case RoleColor:
			color = true
		case RoleAmbientOcclusion:
			ao = true
		}
	}
	if color && ao {
		return RoleAmbientOcclusion, true
	}

	best := matches[0]
	for _, m := range matches[1:] {
		if len(m.Fragment) > len(best.Fragment) {
			best = m
		}
	}

	return best.Role, true
}
