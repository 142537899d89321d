package material

// Flags are the shader capability toggles derived from an Assignment.
type Flags struct {
	Specular         bool // F_SPECULAR
	SelfIllum        bool // F_SELF_ILLUM
	MetalnessTexture bool // F_METALNESS_TEXTURE
}

// DeriveFlags computes Flags from the resolved roles.
//
// Specular follows RoleSpecular, which SuffixTable never produces ("_specular"
// selects Roughness), so it is always false today. This is kept as is until a
// Specular role is added to the table.
func DeriveFlags(a Assignment) Flags {
	return Flags{
		Specular:         a.Has(RoleSpecular),
		SelfIllum:        a.Has(RoleSelfIllumMask),
		MetalnessTexture: a.Has(RoleMetalness),
	}
}

// Names returns the descriptor keys of the enabled flags in declaration order.
func (f Flags) Names() []string {
	var out []string
	if f.Specular {
		out = append(out, "F_SPECULAR")
	}
	if f.SelfIllum {
		out = append(out, "F_SELF_ILLUM")
	}
	if f.MetalnessTexture {
		out = append(out, "F_METALNESS_TEXTURE")
	}
	return out
}
