package lambda

import "github.com/hashicorp/go-set/v3"

// Flag is one user-toggleable REPL/printing option (§6.2).
type Flag uint8

const (
	AbbrevLambda Flag = iota
	AbbrevParens
	HaskellStyle
	NoPrint
	Trace
	FullTrace
	VarReplacement
)

var flagMnemonic = map[Flag]string{
	AbbrevLambda:   "p",
	AbbrevParens:   "c",
	HaskellStyle:   "h",
	NoPrint:        "",
	Trace:          "t",
	FullTrace:      "ft",
	VarReplacement: "v",
}

// Mnemonic returns the REPL directive (§6.3) that toggles f, or "" if
// f has no directive (NO_PRINT is a core-only flag not exposed as a
// REPL toggle in this spec's directive table).
func (f Flag) Mnemonic() string { return flagMnemonic[f] }

// Flags is the bitset of active options. It is backed by a go-set
// rather than a raw uint, so toggling (§6.3's ":t" style directives) is
// a set membership flip (remove if present, else insert); Has/Bits
// still give callers the classic bitset view.
type Flags struct {
	set *set.Set[Flag]
}

// NewFlags builds a Flags with the given flags set.
func NewFlags(flags ...Flag) Flags {
	return Flags{set: set.From(flags)}
}

func (f *Flags) ensure() {
	if f.set == nil {
		f.set = set.New[Flag](4)
	}
}

// Has reports whether flag is set.
func (f Flags) Has(flag Flag) bool {
	if f.set == nil {
		return false
	}
	return f.set.Contains(flag)
}

// Toggle flips flag and reports its new state.
func (f *Flags) Toggle(flag Flag) bool {
	f.ensure()
	if f.set.Contains(flag) {
		f.set.Remove(flag)
		return false
	}
	f.set.Insert(flag)
	return true
}

// Set forces flag on.
func (f *Flags) Set(flag Flag) {
	f.ensure()
	f.set.Insert(flag)
}

// Clear forces flag off.
func (f *Flags) Clear(flag Flag) {
	f.ensure()
	f.set.Remove(flag)
}

// Bits returns the flags currently set, in no particular order.
func (f Flags) Bits() []Flag {
	if f.set == nil {
		return nil
	}
	return f.set.Slice()
}
