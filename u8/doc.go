// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

/*
Package u8 parses, patches, and serializes U8 archives, the flat directory
tree container found inside Nintendo Wii ".szs" and ".arc" files.

The node table is kept as a flat slice addressed by index: directories store
their parent index and the index one past their subtree, files store an
absolute payload offset and size. Parse validates every offset against the
input and resolves full slash-separated paths.

# Reading

	a, err := u8.Parse(raw)
	if err != nil {
	    return err
	}
	node, ok := a.Find("font/tt_kart_font_rodan_ntlg_pro_b.brfnt")
	if !ok {
	    // not found is not an error for Find
	}
	payload, err := a.ReadEntry(node.Path)

# Patching

Replace returns a new archive; the receiver is not modified. Files stored
after the replaced payload are moved and re-aligned, node count, subtree
indices, and the string table stay byte-identical:

	patched, err := a.Replace("font/kart_kanji_font.brfnt", newFont)
	if err != nil {
	    return err
	}
	out, err := patched.Bytes()

Editor batches several replacements and applies them on Commit:

	ed := u8.NewEditor(a)
	_ = ed.Replace("a.brfnt", fontA)
	_ = ed.Replace("b.brfnt", fontB)
	patched, res, err := ed.Commit()

# Selecting entries

Select uses ordered include/exclude glob rules:

	fonts, err := a.Select([]pathrules.Rule{
	    {Action: pathrules.ActionInclude, Pattern: "*.brfnt"},
	})
*/
package u8
