package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const maxSeedBytes = 64 << 10

// inlineSeeds cover syntax that the sample files do not.
var inlineSeeds = []string{
	"",
	"local x <const> = 1",
	"goto done ::done::",
	"a = b // c & d ~ e | f << g >> h",
	"local s = [==[ long ]] ]==]",
	"--[[ block ]] x = 1 -- line",
	"local t = `a {b} c {`{d}`}`",
	"local v = if a then b elseif c then d else e",
	"while true do continue end",
	"f{...}:g'x'\"y\"[[z]]",
	"x = 0x1p4 + 1e-3 + .5 + 0xA",
	"s = 'a\\z\n   b\\u{48}'",
	"if x == 2 code() end",
	"local function f(",
	"return 'abc",
	"x = \"abc\ny = 1",
	"#!/usr/bin/lua\nprint(1)",
	"return 0 A",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".lua") && !strings.HasSuffix(path, ".luau") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(data))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
