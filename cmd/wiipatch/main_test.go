// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wiiasset

package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/woozymasta/wiiasset/rating"
	"github.com/woozymasta/wiiasset/u8"
)

// writeFile writes data under dir and returns its path.
func writeFile(t *testing.T, dir string, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}

	return path
}

// ratingBytes builds a version 1 table with the given profile ids.
func ratingBytes(profiles ...uint32) []byte {
	out := make([]byte, rating.HeaderSize+rating.RecordSize*len(profiles))
	copy(out, "RKRT")
	binary.LittleEndian.PutUint32(out[4:], 1)
	binary.LittleEndian.PutUint32(out[8:], uint32(len(profiles)))
	for i, id := range profiles {
		binary.LittleEndian.PutUint32(out[rating.HeaderSize+rating.RecordSize*i:], id)
	}

	return out
}

// singleFileU8 builds a U8 archive holding one root-level file.
func singleFileU8(name string, payload []byte) []byte {
	be := binary.BigEndian
	strtab := append(append([]byte{0}, name...), 0)
	stringsEnd := 56 + len(strtab)
	dataOffset := (stringsEnd + 31) &^ 31
	out := make([]byte, (dataOffset+len(payload)+31)&^31)

	be.PutUint32(out[0:], u8.Magic)
	be.PutUint32(out[4:], 32)
	be.PutUint32(out[8:], uint32(stringsEnd-32))
	be.PutUint32(out[12:], uint32(dataOffset))
	be.PutUint32(out[32:], 1<<24)
	be.PutUint32(out[40:], 2)
	be.PutUint32(out[44:], 1)
	be.PutUint32(out[48:], uint32(dataOffset))
	be.PutUint32(out[52:], uint32(len(payload)))
	copy(out[56:], strtab)
	copy(out[dataOffset:], payload)
	return out
}

func TestRunUsage(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != exitValidation {
		t.Fatalf("run() code=%d, want %d", code, exitValidation)
	}

	if code := run([]string{"bogus"}, &stdout, &stderr); code != exitValidation {
		t.Fatalf("run(bogus) code=%d, want %d", code, exitValidation)
	}

	if code := run([]string{"check", "--help"}, &stdout, &stderr); code != exitOK {
		t.Fatalf("run(check --help) code=%d, want %d", code, exitOK)
	}
}

func TestRunYaz0Roundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := bytes.Repeat([]byte("wii asset "), 200)
	in := writeFile(t, dir, "in.bin", src)
	packed := filepath.Join(dir, "in.szs")
	unpacked := filepath.Join(dir, "out.bin")

	for _, mode := range []string{"optimized", "literal"} {
		var stdout, stderr bytes.Buffer
		if code := run([]string{"yaz0", "compress", "--mode", mode, "-o", packed, in}, &stdout, &stderr); code != exitOK {
			t.Fatalf("compress %s code=%d stderr=%s", mode, code, stderr.String())
		}

		if code := run([]string{"yaz0", "decompress", "-o", unpacked, packed}, &stdout, &stderr); code != exitOK {
			t.Fatalf("decompress code=%d stderr=%s", code, stderr.String())
		}

		got, err := os.ReadFile(unpacked)
		if err != nil {
			t.Fatalf("read output: %v", err)
		}

		if !bytes.Equal(got, src) {
			t.Fatalf("%s round-trip differs", mode)
		}
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{"yaz0", "decompress", "--max-declared-size", "1KiB", "-o", unpacked, packed}, &stdout, &stderr)
	if code != exitValidation {
		t.Fatalf("decompress over limit code=%d, want %d", code, exitValidation)
	}

	code = run([]string{"yaz0", "decompress", "-o", unpacked, in}, &stdout, &stderr)
	if code != exitFormat {
		t.Fatalf("decompress plain file code=%d, want %d", code, exitFormat)
	}
}

func TestRunU8List(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	archive := writeFile(t, dir, "font.arc", singleFileU8("kart_kanji_font.brfnt", []byte("RFNT....")))

	var stdout, stderr bytes.Buffer
	if code := run([]string{"u8", "list", archive}, &stdout, &stderr); code != exitOK {
		t.Fatalf("u8 list code=%d stderr=%s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "kart_kanji_font.brfnt") {
		t.Fatalf("u8 list output missing entry:\n%s", stdout.String())
	}
}

func TestRunRatingDumpAndSet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, dir, "rating.bin", ratingBytes(10, 20))
	out := filepath.Join(dir, "rating.out.bin")

	var stdout, stderr bytes.Buffer
	code := run([]string{"rating", "set", "--profile", "20", "--vr", "7500", "--active", "-o", out, in}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("rating set code=%d stderr=%s", code, stderr.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	table, err := rating.Parse(data)
	if err != nil {
		t.Fatalf("rating.Parse: %v", err)
	}

	_, rec, err := table.Lookup(20)
	if err != nil || rec.VR != 7500 || !rec.Active() {
		t.Fatalf("record=%+v err=%v", rec, err)
	}

	stdout.Reset()
	if code := run([]string{"rating", "dump", out}, &stdout, &stderr); code != exitOK {
		t.Fatalf("rating dump code=%d stderr=%s", code, stderr.String())
	}

	for _, want := range []string{"magic: RKRT", "count: 2", "active: 1", "profile_id: 20"} {
		if !strings.Contains(stdout.String(), want) {
			t.Fatalf("dump missing %q:\n%s", want, stdout.String())
		}
	}

	code = run([]string{"rating", "set", "--profile", "99", "-o", out, in}, &stdout, &stderr)
	if code != exitNotFound {
		t.Fatalf("rating set missing profile code=%d, want %d", code, exitNotFound)
	}
}

func TestRunRatingSetKeepsUnnamedFields(t *testing.T) {
	t.Parallel()

	src := ratingBytes(42)
	flagsAt := rating.HeaderSize + 12
	binary.LittleEndian.PutUint32(src[rating.HeaderSize+8:], 0x40a00000) // BR 5.0

	dir := t.TempDir()
	in := writeFile(t, dir, "rating.bin", src)
	out := filepath.Join(dir, "rating.out.bin")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"rating", "set", "--profile", "42", "--vr", "1234", "-o", out, in}, &stdout, &stderr); code != exitOK {
		t.Fatalf("rating set code=%d stderr=%s", code, stderr.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	if !bytes.Equal(data[flagsAt:flagsAt+4], src[flagsAt:flagsAt+4]) {
		t.Fatalf("flags=% x, want unchanged % x", data[flagsAt:flagsAt+4], src[flagsAt:flagsAt+4])
	}

	table, err := rating.Parse(data)
	if err != nil {
		t.Fatalf("rating.Parse: %v", err)
	}

	_, rec, err := table.Lookup(42)
	if err != nil || rec.VR != 1234 || rec.BR != 5 || rec.Active() {
		t.Fatalf("record=%+v err=%v, want VR 1234 BR 5 inactive", rec, err)
	}

	if code := run([]string{"rating", "set", "--profile", "42", "--active=false", "-o", out, out}, &stdout, &stderr); code != exitOK {
		t.Fatalf("rating set --active=false code=%d stderr=%s", code, stderr.String())
	}

	again, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	if !bytes.Equal(again, data) {
		t.Fatal("clearing an already clear flag changed the table")
	}
}

func TestRunCheck(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeFile(t, dir, "rating.bin", ratingBytes(1))
	short := writeFile(t, dir, "short.bin", ratingBytes(1)[:20])
	wrongExt := writeFile(t, dir, "notes.txt", []byte("hello"))

	var stdout, stderr bytes.Buffer
	if code := run([]string{"check", good}, &stdout, &stderr); code != exitOK {
		t.Fatalf("check good code=%d stdout=%s", code, stdout.String())
	}

	if code := run([]string{"check", good, short}, &stdout, &stderr); code != exitValidation {
		t.Fatalf("check short code=%d, want %d", code, exitValidation)
	}

	if code := run([]string{"check", wrongExt}, &stdout, &stderr); code != exitValidation {
		t.Fatalf("check wrong extension code=%d, want %d", code, exitValidation)
	}
}
