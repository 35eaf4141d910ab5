package notus

import (
	"golang.org/x/xerrors"

	"github.com/greenbone-community/notus-metadata-loader/literal"
)

var (
	errEmptyField = xerrors.New("required field is empty")
	errBadList    = xerrors.New("field is not a non-empty list literal")
)

// listFields are the columns whose values must parse as non-empty list
// literals. The scanner indexes into these lists, so an empty or malformed
// one would make the advisory useless at runtime.
var listFields = map[string]bool{
	"SOURCE_PKGS": true,
	"CVE_LIST":    true,
	"XREFS":       true,
}

// Check reports why an advisory row is unfit for the KB, or nil. The
// generator's own QA should never let such a row through, but incomplete
// files must not poison the cache.
func (adv Advisory) Check() error {
	for _, f := range adv.fields() {
		if f.value == "" {
			return xerrors.Errorf("%s: %w", f.name, errEmptyField)
		}
		if !listFields[f.name] {
			continue
		}
		list, err := literal.ParseStringList(f.value)
		if err != nil || len(list) == 0 {
			return xerrors.Errorf("%s: %w", f.name, errBadList)
		}
	}
	return nil
}

// IsValid reports whether the advisory may be transformed and written.
func (adv Advisory) IsValid() bool {
	return adv.Check() == nil
}
