package material

// Options controls Build.
type Options struct {
	// SplitFormat is the extension of derived planes (png, tga, webp).
	// Empty keeps the packed texture's extension when it can be encoded.
	SplitFormat string
	// DisableSplit skips packed texture decomposition; "mra" files are classified by suffix.
	DisableSplit bool
}

// normalize normalizes the Options.
func (o *Options) normalize() Options {
	if o == nil {
		return Options{}
	}
	return *o
}

// Result is everything Build decided for one folder.
type Result struct {
	Folder     string
	Assignment Assignment
	Flags      Flags
	Descriptor *Descriptor
	Split      *Split   // nil when no packed texture was decomposed
	Notices    []Notice // listing notices first, then split, then classification
}

// Removed returns the packed source to delete, or nil.
func (r *Result) Removed() *AssetFile {
	if r.Split == nil {
		return nil
	}
	src := r.Split.Source
	return &src
}

// Build runs splitter, classifier, flag deriver and synthesizer over one listing.
// It is deterministic: the same listing always yields the same Result.
func Build(l *Listing, opt *Options) *Result {
	o := opt.normalize()
	res := &Result{
		Folder:     l.Folder,
		Assignment: make(Assignment, len(Roles)),
	}
	res.Notices = append(res.Notices, l.Notices...)

	files := l.Files
	if !o.DisableSplit {
		split, notices := SplitPacked(files, o.SplitFormat)
		res.Notices = append(res.Notices, notices...)
		if split != nil {
			res.Split = split
			for _, p := range split.Planes {
				res.Assignment[p.Role] = Binding{Path: p.RelPath, Source: FromPacked}
			}
			files = without(files, split.Source.RelPath)
		}
	}

	res.Notices = append(res.Notices, Classify(files, res.Assignment)...)
	res.Flags = DeriveFlags(res.Assignment)
	res.Descriptor = Synthesize(res.Flags, res.Assignment)

	return res
}

// without returns files minus the entry at rel, leaving the input untouched.
func without(files []AssetFile, rel string) []AssetFile {
	out := make([]AssetFile, 0, len(files))
	for _, f := range files {
		if f.RelPath != rel {
			out = append(out, f)
		}
	}
	return out
}
