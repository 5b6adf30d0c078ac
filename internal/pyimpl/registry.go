package pyimpl

// supportedSlots maps interpreter family to the slots currently targeted by
// the tool. Retired interpreters (python2.7, python3.6, ...) parse fine but
// are flagged by the compat check.
var supportedSlots = map[string]map[string]bool{
	"python": {
		"3.10": true, "3.11": true, "3.12": true, "3.13": true, "3.14": true,
	},
	"pypy": {
		"0": true, "3.10": true, "3.11": true,
	},
}

// Supported reports whether the implementation is in the active target set.
func (i Implementation) Supported() bool {
	family := "python"
	if i.PyPy() {
		family = "pypy"
	}
	return supportedSlots[family][i.Slot]
}
