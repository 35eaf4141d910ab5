// Package notus loads advisory metadata produced by the Notus generator
// into the scanner's knowledge base. Each metadata file is checksum-gated,
// parsed and written advisory by advisory; a broken file or row never
// aborts the whole load.
package notus

import (
	"bufio"
	"encoding/csv"
	"io"
	"log"
	"os"
	"path/filepath"

	pb "github.com/cheggaaa/pb/v3"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"golang.org/x/exp/slices"
	"golang.org/x/xerrors"

	"github.com/greenbone-community/notus-metadata-loader/kb"
	"github.com/greenbone-community/notus-metadata-loader/openvas"
)

// MetadataDirectoryName is the feed subdirectory holding the generated CSV
// files. It doubles as the virtual script location prefix inside the KB.
const MetadataDirectoryName = "notus_metadata"

const productionFeedDir = "/opt/greenbone/feed/plugins"

type option func(h *Handler)

func WithMetadataDir(v string) option {
	return func(h *Handler) { h.metadataDir = v }
}

func WithAppFs(v afero.Fs) option {
	return func(h *Handler) { h.appFs = v }
}

func WithProgressBar(v bool) option {
	return func(h *Handler) { h.progressBar = v }
}

// Handler drives the metadata load: file discovery, checksum gating,
// parsing and KB writes.
type Handler struct {
	store       kb.Store
	settings    openvas.Settings
	appFs       afero.Fs
	metadataDir string
	progressBar bool
}

func NewHandler(store kb.Store, settings openvas.Settings, options ...option) *Handler {
	h := &Handler{
		store:    store,
		settings: settings,
		appFs:    afero.NewOsFs(),
	}
	for _, option := range options {
		option(h)
	}
	if h.metadataDir == "" {
		pluginsFolder, _ := settings.String("plugins_folder")
		h.metadataDir = ResolveMetadataDir("", pluginsFolder, os.Getenv("INSTALL_PREFIX"))
	}
	return h
}

// ResolveMetadataDir picks the metadata directory from the usual
// precedence chain: explicit override, the scanner's configured plugins
// folder, a development install prefix, then the production feed path.
func ResolveMetadataDir(override, pluginsFolder, installPrefix string) string {
	switch {
	case override != "":
		return override
	case pluginsFolder != "":
		return filepath.Join(pluginsFolder, MetadataDirectoryName)
	case installPrefix != "":
		return filepath.Join(installPrefix, "var", "lib", "openvas", "plugins", MetadataDirectoryName)
	}
	return filepath.Join(productionFeedDir, MetadataDirectoryName)
}

func (h *Handler) csvFilePaths() ([]string, error) {
	paths, err := afero.Glob(h.appFs, filepath.Join(h.metadataDir, "*.csv"))
	if err != nil {
		return nil, xerrors.Errorf("failed to list metadata files in %s: %w", h.metadataDir, err)
	}
	for i, path := range paths {
		if abs, err := filepath.Abs(path); err == nil {
			paths[i] = abs
		}
	}
	return paths, nil
}

// UpdateMetadata parses every metadata file in the feed, verifies its
// checksum, and writes each valid advisory to the KB. It is a no-op unless
// table-driven LSC loading is enabled in the scanner configuration.
func (h *Handler) UpdateMetadata() error {
	if !h.settings.Bool("table_driven_lsc") {
		return nil
	}

	log.Println("Starting the Notus metadata load up")
	paths, err := h.csvFilePaths()
	if err != nil {
		return err
	}

	var bar *pb.ProgressBar
	if h.progressBar {
		bar = pb.StartNew(len(paths))
	}
	for _, path := range paths {
		h.updateFromFile(path)
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}
	log.Println("Notus metadata load up finished")
	return nil
}

func (h *Handler) updateFromFile(path string) {
	if !h.checksumOK(path) {
		log.Printf("Checksum for %s failed\n", path)
		return
	}

	f, err := h.appFs.Open(path)
	if err != nil {
		log.Printf("Failed to open %s: %s\n", path, err)
		return
	}
	defer f.Close()

	// One buffered reader carries through the whole file: the link line,
	// the general metadata line and then the CSV content, in that order.
	br := bufio.NewReader(f)
	link, err := scanFamilyDriverLink(br)
	if err != nil || len(link) == 0 {
		log.Printf("No usable family link in %s\n", path)
		return
	}
	var family string
	for family = range link {
	}

	meta, err := scanGeneralMetadata(br)
	if err != nil {
		log.Printf("Failed to parse general metadata of %s: %s\n", path, err)
		return
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		log.Printf("Failed to read CSV header of %s: %s\n", path, err)
		return
	}
	if !slices.Equal(header, ExpectedFieldNames) {
		log.Printf("Field names check for %s failed\n", path)
		return
	}

	fileName := filepath.Base(path)
	loaded, total := h.loadAdvisories(fileName, family, meta, reader)
	log.Printf("Loaded %d/%d advisories from %s\n", loaded, total, fileName)
	if loaded != total {
		log.Printf("Some advisories were not loaded from %s\n", fileName)
	}
}

// loadAdvisories validates, transforms and writes every data row, returning
// how many rows were written out of how many were read. Invalid rows are
// counted and skipped, never fatal.
func (h *Handler) loadAdvisories(fileName, family string, meta GeneralMetadata, reader *csv.Reader) (loaded, total int) {
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			total++
			continue
		}
		total++
		if len(row) != len(ExpectedFieldNames) {
			continue
		}
		adv := advisoryFromRow(row)
		if !adv.IsValid() {
			continue
		}

		entry, err := Transform(adv, meta, family)
		if err != nil {
			log.Printf("LSC %s will not be loaded: %s\n", adv.OID, err)
			continue
		}
		if err := h.store.PutAdvisory("nvt:"+adv.OID, entry); err != nil {
			log.Printf("LSC %s will not be loaded: %s\n", adv.OID, err)
			continue
		}
		loaded++
	}
	return loaded, total
}

// FamilyDriverLinkers aggregates the family to driver-script mapping across
// every verified metadata file. Later files win on family collisions. It
// always returns a mapping, even with table-driven LSC loading disabled.
func (h *Handler) FamilyDriverLinkers() (map[string]string, error) {
	paths, err := h.csvFilePaths()
	if err != nil {
		return nil, err
	}

	linkers := map[string]string{}
	for _, path := range paths {
		if !h.checksumOK(path) {
			log.Printf("Checksum for %s failed\n", path)
			continue
		}

		f, err := h.appFs.Open(path)
		if err != nil {
			log.Printf("Failed to open %s: %s\n", path, err)
			continue
		}
		link, err := ParseFamilyDriverLink(f)
		f.Close()
		if err != nil {
			log.Printf("Failed to parse link line of %s: %s\n", path, err)
			continue
		}
		linkers = lo.Assign(linkers, link)
	}
	return linkers, nil
}
