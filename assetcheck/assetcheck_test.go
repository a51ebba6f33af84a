// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package assetcheck

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/woozymasta/wiiasset/asseterr"
	"github.com/woozymasta/wiiasset/rating"
	"github.com/woozymasta/wiiasset/u8"
	"github.com/woozymasta/wiiasset/yaz0"
)

// makeU8 builds a root-level U8 archive holding files in order, payloads
// aligned to 32 bytes.
func makeU8(files map[string][]byte, order ...string) []byte {
	be := binary.BigEndian
	count := len(order) + 1

	strtab := []byte{0}
	nameOffsets := make([]uint32, len(order))
	for i, name := range order {
		nameOffsets[i] = uint32(len(strtab))
		strtab = append(strtab, name...)
		strtab = append(strtab, 0)
	}

	tableEnd := 32 + 12*count
	stringsEnd := tableEnd + len(strtab)
	dataOffset := (stringsEnd + 31) &^ 31

	cursor := dataOffset
	offsets := make([]int, len(order))
	for i, name := range order {
		cursor = (cursor + 31) &^ 31
		offsets[i] = cursor
		cursor += len(files[name])
	}

	out := make([]byte, (cursor+31)&^31)
	be.PutUint32(out[0:], u8.Magic)
	be.PutUint32(out[4:], 32)
	be.PutUint32(out[8:], uint32(stringsEnd-32))
	be.PutUint32(out[12:], uint32(dataOffset))
	be.PutUint32(out[32:], 1<<24)
	be.PutUint32(out[40:], uint32(count))

	for i, name := range order {
		at := 32 + 12*(i+1)
		be.PutUint32(out[at:], nameOffsets[i])
		be.PutUint32(out[at+4:], uint32(offsets[i]))
		be.PutUint32(out[at+8:], uint32(len(files[name])))
		copy(out[offsets[i]:], files[name])
	}

	copy(out[tableEnd:], strtab)
	return out
}

// makeBRFNT builds a BRFNT header followed by zero padding up to size.
func makeBRFNT(size int, bom uint16, declared uint32, sections uint16) []byte {
	out := make([]byte, size)
	copy(out, "RFNT")
	be := binary.BigEndian
	be.PutUint16(out[4:], bom)
	be.PutUint16(out[6:], 0x0104)
	be.PutUint32(out[8:], declared)
	be.PutUint16(out[12:], 16)
	be.PutUint16(out[14:], sections)
	return out
}

// mustCompress compresses src or fails the test.
func mustCompress(t *testing.T, src []byte) []byte {
	t.Helper()

	out, err := yaz0.Compress(src, yaz0.ModeOptimized)
	if err != nil {
		t.Fatalf("yaz0.Compress: %v", err)
	}

	return out
}

func TestCheckFileName(t *testing.T) {
	t.Parallel()

	allowed := []string{"szs", ".brfnt", "*.bin"}
	testCases := []struct {
		name    string
		in      string
		allowed []string
		wantErr bool
	}{
		{name: "plain", in: "Font.szs", allowed: allowed},
		{name: "upper case", in: "FONT.SZS", allowed: allowed},
		{name: "dotted ext", in: "kart.brfnt", allowed: allowed},
		{name: "star ext", in: "rating.bin", allowed: allowed},
		{name: "with directory", in: `C:\wii\files\Font.szs`, allowed: allowed},
		{name: "wrong ext", in: "Font.arc", allowed: allowed, wantErr: true},
		{name: "suffix only in middle", in: "Font.szs.bak", allowed: allowed, wantErr: true},
		{name: "empty name", in: "", allowed: allowed, wantErr: true},
		{name: "no allowed", in: "Font.szs", wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := CheckFileName(tc.in, tc.allowed)
			if tc.wantErr {
				if !errors.Is(err, ErrFileName) || !errors.Is(err, asseterr.ErrValidation) {
					t.Fatalf("CheckFileName(%q) error=%v, want ErrFileName", tc.in, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("CheckFileName(%q): %v", tc.in, err)
			}
		})
	}
}

func TestCheckFontSZS(t *testing.T) {
	t.Parallel()

	font := makeBRFNT(2048, 0xFEFF, 2048, 5)
	archive := makeU8(map[string][]byte{"kart_kanji_font.brfnt": font}, "kart_kanji_font.brfnt")

	rep, err := CheckFontSZS(mustCompress(t, archive), FontOptions{})
	if err != nil {
		t.Fatalf("CheckFontSZS: %v", err)
	}

	if !rep.OK() {
		t.Fatalf("warnings=%s, want none", rep.Warnings)
	}

	opened, _, err := OpenFontSZS(mustCompress(t, archive), FontOptions{})
	if err != nil {
		t.Fatalf("OpenFontSZS: %v", err)
	}

	if !opened.HasEntry || opened.Entry.Path != "kart_kanji_font.brfnt" {
		t.Fatalf("Entry=%+v HasEntry=%v", opened.Entry, opened.HasEntry)
	}
}

func TestCheckFontSZSWarnings(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		archive   []byte
		opts      FontOptions
		wantCodes []string
	}{
		{
			name:      "missing entry and small",
			archive:   makeU8(map[string][]byte{"readme.txt": []byte("hi")}, "readme.txt"),
			wantCodes: []string{CodeSmallArchive, CodeMissingEntry},
		},
		{
			name:      "root only",
			archive:   makeU8(nil),
			opts:      FontOptions{MinArchiveSize: 1},
			wantCodes: []string{CodeEmptyArchive, CodeMissingEntry},
		},
		{
			name:      "custom expected entry",
			archive:   makeU8(map[string][]byte{"a.brfnt": make([]byte, 2048)}, "a.brfnt"),
			opts:      FontOptions{ExpectedEntry: "kart_kanji_font.brfnt"},
			wantCodes: []string{CodeMissingEntry},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rep, err := CheckFontSZS(mustCompress(t, tc.archive), tc.opts)
			if err != nil {
				t.Fatalf("CheckFontSZS: %v", err)
			}

			if len(rep.Warnings) != len(tc.wantCodes) {
				t.Fatalf("warnings=%s, want codes %v", rep.Warnings, tc.wantCodes)
			}

			for i, code := range tc.wantCodes {
				if rep.Warnings[i].Code != code {
					t.Fatalf("warnings[%d]=%s, want code %s", i, rep.Warnings[i], code)
				}
			}
		})
	}
}

func TestCheckFontSZSErrors(t *testing.T) {
	t.Parallel()

	archive := makeU8(map[string][]byte{"a.brfnt": []byte("RFNT")}, "a.brfnt")
	valid := mustCompress(t, archive)

	hugeSize := append([]byte(nil), valid...)
	binary.BigEndian.PutUint32(hugeSize[4:], 65<<20)

	zeroSize := append([]byte(nil), valid...)
	binary.BigEndian.PutUint32(zeroSize[4:], 0)

	notU8 := mustCompress(t, []byte("this is not a U8 archive at all, just text"))

	testCases := []struct {
		name  string
		data  []byte
		want  error
		class error
	}{
		{name: "not yaz0", data: archive, want: yaz0.ErrInvalidMagic, class: asseterr.ErrFormat},
		{name: "declared too large", data: hugeSize, want: ErrDeclaredSize, class: asseterr.ErrValidation},
		{name: "declared zero", data: zeroSize, want: ErrDeclaredSize, class: asseterr.ErrValidation},
		{name: "truncated stream", data: valid[:len(valid)/2], want: yaz0.ErrTruncated, class: asseterr.ErrFormat},
		{name: "not u8", data: notU8, want: u8.ErrInvalidMagic, class: asseterr.ErrFormat},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := CheckFontSZS(tc.data, FontOptions{})
			if !errors.Is(err, tc.want) || !errors.Is(err, tc.class) {
				t.Fatalf("CheckFontSZS error=%v, want %v", err, tc.want)
			}
		})
	}
}

func TestCheckBRFNT(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		data      []byte
		wantErr   error
		wantCodes []string
	}{
		{name: "valid", data: makeBRFNT(64, 0xFEFF, 64, 3)},
		{name: "empty", data: nil, wantErr: ErrEmptyFile},
		{name: "bad signature", data: []byte("RFNA0000000000000000"), wantErr: ErrBRFNTSignature},
		{name: "tiny", data: []byte("RF"), wantErr: ErrBRFNTSignature},
		{name: "short header", data: []byte("RFNT\xfe\xff"), wantCodes: []string{CodeShortHeader}},
		{
			name:      "all warnings",
			data:      makeBRFNT(64, 0xFFFE, 128, 40),
			wantCodes: []string{CodeByteOrder, CodeFileSizeMismatch, CodeSectionCount},
		},
		{name: "too few sections", data: makeBRFNT(32, 0xFEFF, 32, 2), wantCodes: []string{CodeSectionCount}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rep, err := CheckBRFNT(tc.data)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("CheckBRFNT error=%v, want %v", err, tc.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("CheckBRFNT: %v", err)
			}

			if len(rep.Warnings) != len(tc.wantCodes) {
				t.Fatalf("warnings=%s, want codes %v", rep.Warnings, tc.wantCodes)
			}

			for _, code := range tc.wantCodes {
				if !rep.Warnings.Has(code) {
					t.Fatalf("warnings=%s, missing %s", rep.Warnings, code)
				}
			}
		})
	}
}

func TestCheckRatingFile(t *testing.T) {
	t.Parallel()

	build := func(version uint32, count uint32, records int) []byte {
		out := make([]byte, rating.HeaderSize+rating.RecordSize*records)
		copy(out, "RKRT")
		binary.LittleEndian.PutUint32(out[4:], version)
		binary.LittleEndian.PutUint32(out[8:], count)
		return out
	}

	rep, err := CheckRatingFile(build(1, 2, 2))
	if err != nil || !rep.OK() {
		t.Fatalf("CheckRatingFile valid: rep=%s err=%v", rep.Warnings, err)
	}

	rep, err = CheckRatingFile(build(7, 0, 0))
	if err != nil {
		t.Fatalf("CheckRatingFile version 7: %v", err)
	}

	if !rep.Warnings.Has(CodeVersionRange) {
		t.Fatalf("warnings=%s, want %s", rep.Warnings, CodeVersionRange)
	}

	_, err = CheckRatingFile(build(1, 3, 2))
	if !errors.Is(err, rating.ErrLength) || !errors.Is(err, asseterr.ErrValidation) {
		t.Fatalf("CheckRatingFile short error=%v, want rating.ErrLength", err)
	}
}
