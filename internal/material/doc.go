/*
Package material turns a snapshot of a texture folder into a material descriptor.

The package performs no I/O. A Source hands it a Listing (file names in a fixed
order plus the decoded pixels of packed candidates); Build then runs, in order:

  - SplitPacked, which decomposes the first "mra" texture into metalness,
    roughness and ambient occlusion planes;
  - Classify, which binds every remaining file to at most one Role using the
    suffix table;
  - DeriveFlags, which computes the shader capability flags;
  - Synthesize, which lays out the descriptor lines.

The caller writes the Result.Split planes, removes Result.Removed() and stores
Result.Descriptor.Format() as <folder>.vmat.

Example:

	listing, err := src.List("materials/wall")
	if err != nil {
		// folder cannot be listed
	}
	res := material.Build(listing, nil)
	for _, n := range res.Notices {
		// report recoverable conditions
	}
	_ = os.WriteFile("materials/wall/wall.vmat", res.Descriptor.Format(), 0o644)
*/
package material
