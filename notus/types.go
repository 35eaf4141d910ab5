package notus

// ExpectedFieldNames is the CSV header the Notus generator emits. The file
// format is versioned implicitly through this list: any deviation, including
// reordering, means the file is from an unsupported generator version.
var ExpectedFieldNames = []string{
	"OID",
	"TITLE",
	"CREATION_DATE",
	"LAST_MODIFICATION",
	"SOURCE_PKGS",
	"ADVISORY_ID",
	"SEVERITY_ORIGIN",
	"SEVERITY_DATE",
	"SEVERITY_VECTOR",
	"ADVISORY_XREF",
	"DESCRIPTION",
	"INSIGHT",
	"AFFECTED",
	"CVE_LIST",
	"BINARY_PACKAGES_FOR_RELEASES",
	"XREFS",
	"FILENAME",
}

// Advisory is one data row of a Notus metadata file. All fields are kept as
// the raw CSV strings; the three list-valued fields (SourcePkgs, CVEList,
// Xrefs) hold unparsed list literals.
type Advisory struct {
	OID                       string
	Title                     string
	CreationDate              string
	LastModification          string
	SourcePkgs                string
	AdvisoryID                string
	SeverityOrigin            string
	SeverityDate              string
	SeverityVector            string
	AdvisoryXref              string
	Description               string
	Insight                   string
	Affected                  string
	CVEList                   string
	BinaryPackagesForReleases string
	Xrefs                     string
	FileName                  string
}

// advisoryFromRow maps a CSV row to an Advisory. The row must already have
// been checked against ExpectedFieldNames.
func advisoryFromRow(row []string) Advisory {
	return Advisory{
		OID:                       row[0],
		Title:                     row[1],
		CreationDate:              row[2],
		LastModification:          row[3],
		SourcePkgs:                row[4],
		AdvisoryID:                row[5],
		SeverityOrigin:            row[6],
		SeverityDate:              row[7],
		SeverityVector:            row[8],
		AdvisoryXref:              row[9],
		Description:               row[10],
		Insight:                   row[11],
		Affected:                  row[12],
		CVEList:                   row[13],
		BinaryPackagesForReleases: row[14],
		Xrefs:                     row[15],
		FileName:                  row[16],
	}
}

// fields returns every field value paired with its CSV column name, in
// schema order.
func (adv Advisory) fields() []namedField {
	return []namedField{
		{"OID", adv.OID},
		{"TITLE", adv.Title},
		{"CREATION_DATE", adv.CreationDate},
		{"LAST_MODIFICATION", adv.LastModification},
		{"SOURCE_PKGS", adv.SourcePkgs},
		{"ADVISORY_ID", adv.AdvisoryID},
		{"SEVERITY_ORIGIN", adv.SeverityOrigin},
		{"SEVERITY_DATE", adv.SeverityDate},
		{"SEVERITY_VECTOR", adv.SeverityVector},
		{"ADVISORY_XREF", adv.AdvisoryXref},
		{"DESCRIPTION", adv.Description},
		{"INSIGHT", adv.Insight},
		{"AFFECTED", adv.Affected},
		{"CVE_LIST", adv.CVEList},
		{"BINARY_PACKAGES_FOR_RELEASES", adv.BinaryPackagesForReleases},
		{"XREFS", adv.Xrefs},
		{"FILENAME", adv.FileName},
	}
}

type namedField struct {
	name  string
	value string
}

// GeneralMetadata is the per-file metadata shared by every advisory in one
// Notus metadata file.
type GeneralMetadata struct {
	Vuldetect    string
	Solution     string
	SolutionType string
	QodType      string
}

func generalMetadataFromMap(m map[string]string) GeneralMetadata {
	return GeneralMetadata{
		Vuldetect:    m["VULDETECT"],
		Solution:     m["SOLUTION"],
		SolutionType: m["SOLUTION_TYPE"],
		QodType:      m["QOD_TYPE"],
	}
}
