package notus

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/xerrors"

	"github.com/greenbone-community/notus-metadata-loader/kb"
	"github.com/greenbone-community/notus-metadata-loader/literal"
)

// Constant entry fields. Advisory driver scripts are plain
// information-gathering checks without port, key or dependency requirements,
// so most of the positional NVT fields stay empty.
const (
	scriptCategory = "3" // ACT_GATHER_INFO
	scriptTimeout  = "0"

	bids             = ""
	requiredKeys     = ""
	mandatoryKeys    = ""
	excludedKeys     = ""
	requiredUDPPorts = ""
	requiredPorts    = ""
	dependencies     = ""
)

const tagsFormat = "severity_origin=%s|severity_date=%s|" +
	"severity_vector=%s|last_modification=%s|" +
	"creation_date=%s|summary=%s|vuldetect=%s|" +
	"insight=%s|affected=%s|solution=%s|" +
	"solution_type=%s|qod_type=%s"

// Transform maps one validated advisory to the positional KB entry the
// scanner expects. It is pure: the same inputs always yield the same
// kb.EntryFieldCount strings. A list-literal parse failure here means the
// advisory was never validated and is reported as an error.
func Transform(adv Advisory, meta GeneralMetadata, family string) ([]string, error) {
	cves, err := literal.ParseStringList(adv.CVEList)
	if err != nil {
		return nil, xerrors.Errorf("unvalidated CVE_LIST in %s: %w", adv.OID, err)
	}
	xrefs, err := literal.ParseStringList(adv.Xrefs)
	if err != nil {
		return nil, xerrors.Errorf("unvalidated XREFS in %s: %w", adv.OID, err)
	}

	tags := fmt.Sprintf(tagsFormat,
		adv.SeverityOrigin,
		adv.SeverityDate,
		adv.SeverityVector,
		adv.LastModification,
		adv.CreationDate,
		adv.Description,
		meta.Vuldetect,
		adv.Insight,
		adv.Affected,
		meta.Solution,
		meta.SolutionType,
		meta.QodType,
	)

	entry := []string{
		MetadataDirectoryName + "/" + adv.FileName,
		requiredKeys,
		mandatoryKeys,
		excludedKeys,
		requiredUDPPorts,
		requiredPorts,
		dependencies,
		tags,
		strings.Join(cves, ", "),
		bids,
		formatXrefs(adv.AdvisoryXref, xrefs),
		scriptCategory,
		scriptTimeout,
		family,
		adv.Title,
	}
	if len(entry) != kb.EntryFieldCount {
		return nil, xerrors.Errorf("entry for %s has %d fields, expected %d", adv.OID, len(entry), kb.EntryFieldCount)
	}
	return entry, nil
}

// formatXrefs joins the advisory's own reference with every URL it cites.
// Example: "URL:http://x, URL:http://y".
func formatXrefs(advisoryXref string, xrefs []string) string {
	urls := append([]string{advisoryXref}, xrefs...)
	return strings.Join(lo.Map(urls, func(u string, _ int) string {
		return "URL:" + u
	}), ", ")
}
