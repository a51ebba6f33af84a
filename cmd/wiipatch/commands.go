// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/woozymasta/wiiasset/assetcheck"
	"github.com/woozymasta/wiiasset/assetpatch"
	"github.com/woozymasta/wiiasset/rating"
	"github.com/woozymasta/wiiasset/u8"
	"github.com/woozymasta/wiiasset/yaz0"
	"gopkg.in/yaml.v3"
)

// errCheckFailed means at least one file failed a fatal check.
var errCheckFailed = errors.New("check failed")

// runCheck validates each file by extension.
func runCheck(args []string, stdout io.Writer, stderr io.Writer) error {
	c, err := parseCommand("check", args, stdout, stderr, nil)
	if err != nil {
		return err
	}

	files, err := c.requireArgs(1, -1)
	if err != nil {
		return err
	}

	var firstErr error
	for _, path := range files {
		rep, err := c.checkFile(path)
		if err != nil {
			fmt.Fprintf(c.stdout, "%s: FAIL %v\n", path, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if rep.OK() {
			fmt.Fprintf(c.stdout, "%s: ok\n", path)
			continue
		}

		for _, w := range rep.Warnings {
			fmt.Fprintf(c.stdout, "%s: warning %s\n", path, w)
		}
	}

	if firstErr != nil {
		return fmt.Errorf("%w: %w", errCheckFailed, firstErr)
	}

	return nil
}

// checkFile runs the check matching file extension.
func (c *command) checkFile(path string) (assetcheck.Report, error) {
	if err := assetcheck.CheckFileName(path, c.cfg.AllowedExtensions); err != nil {
		return assetcheck.Report{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return assetcheck.Report{}, err
	}

	c.log.WithFields(logrus.Fields{"file": path, "size": humanize.IBytes(uint64(len(data)))}).Debug("checking")

	switch strings.ToLower(filepath.Ext(path)) {
	case ".szs", ".arc":
		return assetcheck.CheckFontSZS(data, c.cfg.FontOptions())
	case ".brfnt":
		return assetcheck.CheckBRFNT(data)
	default:
		return assetcheck.CheckRatingFile(data)
	}
}

// runFont replaces one entry of a font archive.
func runFont(args []string, stdout io.Writer, stderr io.Writer) error {
	var entry, out string
	c, err := parseCommand("font", args, stdout, stderr, func(fs *pflag.FlagSet) {
		fs.StringVarP(&entry, "entry", "e", "", "entry path or base name to replace (default: first match of expected_entry)")
		fs.StringVarP(&out, "output", "o", "", "output .szs path")
	})
	if err != nil {
		return err
	}

	files, err := c.requireArgs(2, 2)
	if err != nil {
		return err
	}

	if out == "" {
		return fmt.Errorf("%w: --output is required", errUsage)
	}

	src, err := os.ReadFile(files[0])
	if err != nil {
		return err
	}

	payload, err := os.ReadFile(files[1])
	if err != nil {
		return err
	}

	res, err := assetpatch.PatchFont(src, entry, payload, assetpatch.Options{
		Mode:   c.cfg.Mode,
		Verify: c.cfg.Verify,
		Logger: c.log,
		Font:   c.cfg.FontOptions(),
	})
	if err != nil {
		return err
	}

	for _, w := range res.Report.Warnings {
		c.log.Warn(w.String())
	}

	if err := os.WriteFile(out, res.Output, 0o644); err != nil { //nolint:gosec // game asset, not secret
		return err
	}

	fmt.Fprintf(c.stdout, "%s: replaced %s (%s), wrote %s in %s mode, blake3 %s\n",
		out, res.Entry.Path, humanize.IBytes(uint64(res.Entry.Size)),
		humanize.IBytes(uint64(len(res.Output))), c.cfg.Mode, res.OutputDigest)
	return nil
}

// runYaz0 compresses or decompresses one file.
func runYaz0(args []string, stdout io.Writer, stderr io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: yaz0 needs compress or decompress", errUsage)
	}

	action := args[0]
	if action != "compress" && action != "decompress" {
		return fmt.Errorf("%w: unknown yaz0 action %q", errUsage, action)
	}

	var out string
	c, err := parseCommand("yaz0 "+action, args[1:], stdout, stderr, func(fs *pflag.FlagSet) {
		fs.StringVarP(&out, "output", "o", "", "output path")
	})
	if err != nil {
		return err
	}

	files, err := c.requireArgs(1, 1)
	if err != nil {
		return err
	}

	if out == "" {
		return fmt.Errorf("%w: --output is required", errUsage)
	}

	src, err := os.ReadFile(files[0])
	if err != nil {
		return err
	}

	var result []byte
	if action == "compress" {
		result, err = yaz0.Compress(src, c.cfg.Mode)
		if err == nil && c.cfg.Verify {
			err = verifyYaz0(result, src)
		}
	} else {
		result, err = decompressChecked(src, c.cfg.MaxDeclaredSize)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, result, 0o644); err != nil { //nolint:gosec // game asset, not secret
		return err
	}

	fmt.Fprintf(c.stdout, "%s: %s -> %s\n", out, humanize.IBytes(uint64(len(src))), humanize.IBytes(uint64(len(result))))
	return nil
}

// verifyYaz0 decodes compressed and compares it with src.
func verifyYaz0(compressed []byte, src []byte) error {
	back, err := yaz0.Decompress(compressed)
	if err != nil {
		return fmt.Errorf("%w: %w", assetpatch.ErrVerifyMismatch, err)
	}

	if string(back) != string(src) {
		return fmt.Errorf("%w: round-trip differs", assetpatch.ErrVerifyMismatch)
	}

	return nil
}

// decompressChecked rejects declared sizes above limit before decoding.
func decompressChecked(src []byte, limit ByteSize) ([]byte, error) {
	size, err := yaz0.DecompressedSize(src)
	if err != nil {
		return nil, err
	}

	if uint64(size) > uint64(limit) {
		return nil, fmt.Errorf("%w: declared %s, limit %s", assetcheck.ErrDeclaredSize, humanize.IBytes(uint64(size)), limit)
	}

	return yaz0.Decompress(src)
}

// runU8 lists archive entries.
func runU8(args []string, stdout io.Writer, stderr io.Writer) error {
	if len(args) == 0 || args[0] != "list" {
		return fmt.Errorf("%w: u8 needs list", errUsage)
	}

	var prefix string
	c, err := parseCommand("u8 list", args[1:], stdout, stderr, func(fs *pflag.FlagSet) {
		fs.StringVarP(&prefix, "prefix", "p", "", "list only entries under prefix")
	})
	if err != nil {
		return err
	}

	files, err := c.requireArgs(1, 1)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(files[0])
	if err != nil {
		return err
	}

	if yaz0.IsCompressed(data) {
		if data, err = decompressChecked(data, c.cfg.MaxDeclaredSize); err != nil {
			return err
		}
	}

	a, err := u8.Parse(data)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tTYPE\tOFFSET\tSIZE\tPATH")
	for _, n := range u8.FilterPrefix(a.Entries(), prefix) {
		if n.IsDir {
			fmt.Fprintf(tw, "%d\tdir\t-\t-\t%s/\n", n.Index, n.Path)
			continue
		}

		fmt.Fprintf(tw, "%d\tfile\t%#x\t%s\t%s\n", n.Index, n.Offset, humanize.IBytes(uint64(n.Size)), n.Path)
	}

	fmt.Fprintf(tw, "\t\t\t%s\ttotal, alignment %d\n", humanize.IBytes(uint64(a.Size())), a.Alignment())
	return tw.Flush()
}

// runRating dumps or edits a rating table.
func runRating(args []string, stdout io.Writer, stderr io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: rating needs dump or set", errUsage)
	}

	switch args[0] {
	case "dump":
		return runRatingDump(args[1:], stdout, stderr)
	case "set":
		return runRatingSet(args[1:], stdout, stderr)
	default:
		return fmt.Errorf("%w: unknown rating action %q", errUsage, args[0])
	}
}

// ratingDump is the YAML form of a rating table.
type ratingDump struct {
	Records []rating.Record `yaml:"records"`
	Magic   string          `yaml:"magic"`
	Version uint32          `yaml:"version"`
	Count   uint32          `yaml:"count"`
	Active  int             `yaml:"active"`
}

// runRatingDump prints a rating table as YAML.
func runRatingDump(args []string, stdout io.Writer, stderr io.Writer) error {
	c, err := parseCommand("rating dump", args, stdout, stderr, nil)
	if err != nil {
		return err
	}

	files, err := c.requireArgs(1, 1)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(files[0])
	if err != nil {
		return err
	}

	table, rep, err := assetcheck.OpenRatingFile(data)
	if err != nil {
		return err
	}

	for _, w := range rep.Warnings {
		c.log.Warn(w.String())
	}

	h := table.Header()
	enc := yaml.NewEncoder(c.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(ratingDump{
		Magic:   string(h.Magic[:]),
		Version: h.Version,
		Count:   h.Count,
		Active:  table.ActiveCount(),
		Records: table.Records(),
	}); err != nil {
		return err
	}

	return enc.Close()
}

// runRatingSet edits one record found by profile id.
func runRatingSet(args []string, stdout io.Writer, stderr io.Writer) error {
	var (
		out     string
		profile uint32
		vr, br  float32
		active  bool
	)
	c, err := parseCommand("rating set", args, stdout, stderr, func(fs *pflag.FlagSet) {
		fs.StringVarP(&out, "output", "o", "", "output path")
		fs.Uint32Var(&profile, "profile", 0, "profile id of the record to edit")
		fs.Float32Var(&vr, "vr", 0, "new versus rating")
		fs.Float32Var(&br, "br", 0, "new battle rating")
		fs.BoolVar(&active, "active", true, "set or clear the active flag; left unchanged when omitted")
	})
	if err != nil {
		return err
	}

	files, err := c.requireArgs(1, 1)
	if err != nil {
		return err
	}

	if out == "" || !c.fs.Changed("profile") {
		return fmt.Errorf("%w: --output and --profile are required", errUsage)
	}

	src, err := os.ReadFile(files[0])
	if err != nil {
		return err
	}

	res, err := assetpatch.EditRatings(src, func(t *rating.Table) error {
		i, rec, err := t.Lookup(profile)
		if err != nil {
			return err
		}

		if c.fs.Changed("vr") {
			rec.VR = vr
		}
		if c.fs.Changed("br") {
			rec.BR = br
		}
		if c.fs.Changed("active") {
			if active {
				rec.Flags |= rating.FlagActive
			} else {
				rec.Flags &^= rating.FlagActive
			}
		}

		return t.Set(i, rec)
	}, assetpatch.Options{Verify: c.cfg.Verify, Logger: c.log})
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, res.Output, 0o644); err != nil { //nolint:gosec // game asset, not secret
		return err
	}

	fmt.Fprintf(c.stdout, "%s: profile %d updated, blake3 %s\n", out, profile, res.OutputDigest)
	return nil
}
