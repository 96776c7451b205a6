package checks

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fontcheck/fontcheck/internal/domain"
)

func assertExists(c *domain.Check, folder string, filenames []string, errFmt, okMsg string) {
	for _, filename := range filenames {
		if _, err := os.Stat(filepath.Join(folder, filename)); err == nil {
			c.OK("%s", okMsg)
			return
		}
	}
	c.Error(errFmt, strings.Join(filenames, "' or '"))
}

// CheckFolderContainsCopyrightFile requires COPYRIGHT.txt in the family
// folder.
func CheckFolderContainsCopyrightFile(r *domain.Recorder, folder string) {
	c := r.NewCheck("123", "Does this font folder contain COPYRIGHT file?")
	assertExists(c, folder, []string{"COPYRIGHT.txt"},
		"Font folder lacks a copyright file at '%s'.",
		"Font folder contains COPYRIGHT.txt.")
}

// CheckFolderContainsDescriptionFile requires DESCRIPTION.en_us.html in the
// family folder.
func CheckFolderContainsDescriptionFile(r *domain.Recorder, folder string) {
	c := r.NewCheck("124", "Does this font folder contain a DESCRIPTION file?")
	assertExists(c, folder, []string{"DESCRIPTION.en_us.html"},
		"Font folder lacks a description file at '%s'.",
		"Font folder contains DESCRIPTION.en_us.html.")
}

// CheckFolderContainsLicensingFiles requires either LICENSE.txt or OFL.txt.
func CheckFolderContainsLicensingFiles(r *domain.Recorder, folder string) {
	c := r.NewCheck("125", "Does this font folder contain licensing files?")
	assertExists(c, folder, []string{"LICENSE.txt", "OFL.txt"},
		"Font folder lacks licensing files at '%s'.",
		"Font folder contains licensing files.")
}

// CheckFolderContainsFontLog requires FONTLOG.txt in the family folder.
func CheckFolderContainsFontLog(r *domain.Recorder, folder string) {
	c := r.NewCheck("126", "Font folder should contain FONTLOG.txt")
	assertExists(c, folder, []string{"FONTLOG.txt"},
		"Font folder lacks a fontlog file at '%s'.",
		"Font folder contains a FONTLOG.txt file.")
}

// CheckRepositoryContainsMetadataFile requires the family metadata file at
// the repository root.
func CheckRepositoryContainsMetadataFile(r *domain.Recorder, folder string) {
	c := r.NewCheck("127", "Repository contains METADATA.json file?")
	if _, err := os.Stat(filepath.Join(folder, "METADATA.json")); err != nil {
		c.Error("File 'METADATA.json' does not exist in root of upstream repository.")
		return
	}
	c.OK("Repository contains METADATA.json file.")
}

var copyrightNoticeRe = regexp.MustCompile(`(?i)Copyright.*?20\d{2}.*`)

func grepCopyrightNotice(contents string) string {
	if m := copyrightNoticeRe.FindString(contents); m != "" {
		return strings.Trim(m, ",\r\n")
	}
	return ""
}

func lookupCopyrightNotice(ufoFolder string) string {
	contents, err := os.ReadFile(filepath.Join(ufoFolder, "fontinfo.plist"))
	if err != nil {
		return ""
	}
	return grepCopyrightNotice(string(contents))
}

// CheckCopyrightNoticeConsistentAcrossFamily walks the family folder for UFO
// sources and compares the copyright notices found in their fontinfo.plist
// files.
func CheckCopyrightNoticeConsistentAcrossFamily(r *domain.Recorder, folder string) {
	c := r.NewCheck("128", "Copyright notice is consistent across all fonts in this family?")

	var ufoDirs []string
	filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() && strings.EqualFold(filepath.Ext(path), ".ufo") {
			ufoDirs = append(ufoDirs, path)
		}
		return nil
	})
	if len(ufoDirs) == 0 {
		c.Skip("No UFO font file found.")
		return
	}

	reference := ""
	for _, dir := range ufoDirs {
		notice := lookupCopyrightNotice(dir)
		if notice == "" {
			continue
		}
		if reference != "" && notice != reference {
			c.Error("%q != %q", notice, reference)
			return
		}
		reference = notice
	}
	c.OK("Copyright notice is consistent across all fonts in this family.")
}
