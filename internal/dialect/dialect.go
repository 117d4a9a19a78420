package dialect

import (
	"fmt"
	"strings"
)

// Version is a set of enabled language feature flags.
type Version uint8

const (
	FlagLuau Version = 1 << iota
	FlagLua52
	FlagLua53
	FlagLua54

	flagMask = FlagLuau | FlagLua52 | FlagLua53 | FlagLua54
)

const (
	Lua51 Version = 0
	Lua52         = FlagLua52
	Lua53         = Lua52 | FlagLua53
	Lua54         = Lua53 | FlagLua54
	Luau          = FlagLuau

	// All enables every dialect at once; it is the default.
	All = Luau | Lua54
)

// Named lists the concrete dialects in ascending order of feature set.
var Named = []Version{Lua51, Lua52, Lua53, Lua54, Luau}

func (v Version) HasLuau() bool  { return v&FlagLuau != 0 }
func (v Version) HasLua52() bool { return v&FlagLua52 != 0 }
func (v Version) HasLua53() bool { return v&FlagLua53 != 0 }
func (v Version) HasLua54() bool { return v&FlagLua54 != 0 }

// Enables reports whether a construct gated on any flag in gate is available.
// A zero gate is always enabled.
func (v Version) Enables(gate Version) bool {
	return gate == 0 || v&gate != 0
}

func (v Version) String() string {
	switch v {
	case Lua51:
		return "lua51"
	case Lua52:
		return "lua52"
	case Lua53:
		return "lua53"
	case Lua54:
		return "lua54"
	case Luau:
		return "luau"
	case All:
		return "all"
	}
	var parts []string
	for _, f := range []struct {
		flag Version
		name string
	}{{FlagLuau, "luau"}, {FlagLua52, "lua52"}, {FlagLua53, "lua53"}, {FlagLua54, "lua54"}} {
		if v&f.flag != 0 {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "+")
}

func (v Version) GoString() string {
	return fmt.Sprintf("dialect.Version(%s)", v.String())
}

// Parse accepts a dialect name ("lua51" ... "lua54", "luau", "all") or a
// "+"-joined combination such as "luau+lua52".
func Parse(name string) (Version, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return All, nil
	}
	var v Version
	for _, part := range strings.Split(name, "+") {
		switch strings.ReplaceAll(part, ".", "") {
		case "lua51", "51":
		case "lua52", "52":
			v |= Lua52
		case "lua53", "53":
			v |= Lua53
		case "lua54", "54":
			v |= Lua54
		case "luau":
			v |= Luau
		case "all":
			v |= All
		default:
			return 0, fmt.Errorf("unknown dialect %q (want lua51, lua52, lua53, lua54, luau or all)", part)
		}
	}
	return v & flagMask, nil
}
