// Package application wires the outbound ports to the check catalog and
// drives one run per family folder.
package application

import (
	"context"
	"fmt"

	"github.com/fontcheck/fontcheck/internal/domain"
	"github.com/fontcheck/fontcheck/internal/domain/checks"
	"github.com/fontcheck/fontcheck/internal/domain/font"
	"github.com/fontcheck/fontcheck/internal/domain/metadata"
)

// CheckService orchestrates the check pipeline:
// load metadata -> discover fonts -> family checks -> per-font checks ->
// cross-family checks -> optional regression -> report.
type CheckService struct {
	parser   domain.FontParser
	metadata domain.MetadataStore
	coverage domain.CoverageRunner
	web      domain.WebDirectory
	git      domain.GitInfo
	history  domain.RunHistory
}

func NewCheckService(
	parser domain.FontParser,
	metadataStore domain.MetadataStore,
	coverage domain.CoverageRunner,
	web domain.WebDirectory,
	git domain.GitInfo,
	history domain.RunHistory,
) *CheckService {
	return &CheckService{
		parser:   parser,
		metadata: metadataStore,
		coverage: coverage,
		web:      web,
		git:      git,
		history:  history,
	}
}

// run executes one rule with panic isolation: an unexpected failure inside a
// rule aborts that rule only, recorded as an internal error, and the run
// continues with the remaining checks.
func run(rec *domain.Recorder, fn func()) {
	defer func() {
		if p := recover(); p != nil {
			rec.InternalFailure(fmt.Sprint(p))
		}
	}()
	fn()
}

// CheckFamily runs the full catalog against one family folder. beforeDir,
// when non-empty, points at the previous release for the regression checks.
func (s *CheckService) CheckFamily(ctx context.Context, familyDir, beforeDir string, cfg domain.RunConfig) (*domain.Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating run config: %w", err)
	}
	rec := domain.NewRecorder(cfg)

	// Packaging checks only need the folder, so they run even when the
	// metadata or the fonts cannot be loaded.
	s.runPackagingChecks(rec, familyDir)

	fam, famErr := s.metadata.Load(familyDir)
	if famErr != nil {
		// Check 127 already reported a missing file; anything else the
		// metadata-dependent rules cannot recover from.
		rec.InternalFailure(fmt.Sprintf("loading family metadata: %v", famErr))
		fam = nil
	}

	if fam != nil {
		s.runFamilyChecks(ctx, rec, familyDir, fam)
	}

	filenames, err := s.parser.Discover(familyDir)
	if err != nil {
		return nil, fmt.Errorf("discovering fonts in %s: %w", familyDir, err)
	}

	var fonts []*font.Font
	for _, filename := range filenames {
		filename := filename
		run(rec, func() { checks.CheckFileIsNamedCanonically(rec, filename) })

		fnt, err := s.parser.Parse(familyDir, filename)
		if err != nil {
			rec.InternalFailure(fmt.Sprintf("parsing %s: %v", filename, err))
			continue
		}
		fonts = append(fonts, fnt)

		s.runFontChecks(rec, familyDir, filename, fnt)
		if fam != nil {
			if fm, ok := metadataFor(fam, filename); ok {
				s.runFontMetadataChecks(rec, fnt, fam, fm)
			}
		}
		if beforeDir != "" {
			s.runRegressionChecks(rec, beforeDir, filename, fnt)
		}
		s.runCoverageChecks(ctx, rec, familyDir, filename, cfg)
	}

	if len(fonts) > 1 {
		run(rec, func() { checks.CheckAllFontsHaveMatchingGlyphNames(rec, fonts) })
		run(rec, func() { checks.CheckGlyphsHaveSameNumOfContours(rec, fonts) })
		run(rec, func() { checks.CheckGlyphsHaveSameNumOfPoints(rec, fonts) })
	}

	commitHash := ""
	if s.git != nil && s.git.IsGitRepo(familyDir) {
		if hash, err := s.git.CommitHash(familyDir); err == nil {
			commitHash = hash
		}
	}

	report := domain.BuildReport(familyDir, commitHash, rec.Checks())

	if s.history != nil {
		entry := domain.RunEntry{
			Timestamp:  report.Timestamp,
			CommitHash: commitHash,
			Summary:    report.Summary,
		}
		if err := s.history.Save(familyDir, entry); err != nil {
			// History is best-effort; a failed save never fails the run.
			_ = err
		}
	}
	return report, nil
}

func (s *CheckService) runPackagingChecks(rec *domain.Recorder, familyDir string) {
	run(rec, func() { checks.CheckFolderContainsCopyrightFile(rec, familyDir) })
	run(rec, func() { checks.CheckFolderContainsDescriptionFile(rec, familyDir) })
	run(rec, func() { checks.CheckFolderContainsLicensingFiles(rec, familyDir) })
	run(rec, func() { checks.CheckFolderContainsFontLog(rec, familyDir) })
	run(rec, func() { checks.CheckRepositoryContainsMetadataFile(rec, familyDir) })
	run(rec, func() { checks.CheckCopyrightNoticeConsistentAcrossFamily(rec, familyDir) })
}

func (s *CheckService) runFamilyChecks(ctx context.Context, rec *domain.Recorder, familyDir string, fam *metadata.Family) {
	run(rec, func() { checks.CheckDesignerSimpleShortName(rec, fam) })

	if s.web != nil {
		netCtx, cancel := context.WithTimeout(ctx, rec.Config.NetworkTimeout)
		run(rec, func() { checks.CheckFamilyIsListedInDirectory(rec, netCtx, s.web, fam) })
		run(rec, func() { checks.CheckDesignerExistsInProfiles(rec, netCtx, s.web, fam) })
		cancel()
	}

	run(rec, func() { checks.CheckMetadataHasUniqueFullNameValues(rec, fam) })
	run(rec, func() { checks.CheckStyleWeightPairsAreUnique(rec, fam) })
	run(rec, func() { checks.CheckLicenseIsKnown(rec, fam) })
	run(rec, func() { checks.CheckSubsetsContainMenuAndLatin(rec, fam) })
	run(rec, func() {
		checks.CheckSubsetsAlphabeticallyOrdered(rec, fam, func(updated *metadata.Family) error {
			return s.metadata.Save(familyDir, updated)
		})
	})
	run(rec, func() { checks.CheckCopyrightNoticeIsTheSameInAllFonts(rec, fam) })
	run(rec, func() { checks.CheckFamilyValuesAreAllTheSame(rec, fam) })
	run(rec, func() {
		hasRegular := checks.CheckFontHasRegularStyle(rec, fam)
		checks.CheckRegularIs400(rec, fam, hasRegular)
	})
}

func (s *CheckService) runFontChecks(rec *domain.Recorder, familyDir, filename string, fnt *font.Font) {
	style := fnt.Style()
	save := func(updated *font.Font) error {
		return s.parser.Save(familyDir, filename, updated)
	}

	if fnt.ValidationState != nil {
		run(rec, func() { checks.CheckGlyphStructure(rec, *fnt.ValidationState) })
	}

	hasKerning := fnt.GPOS != nil && len(fnt.GPOS.PairLookups) > 0
	run(rec, func() { checks.CheckNonLigatedSequencesKerning(rec, fnt, hasKerning) })
	run(rec, func() { checks.CheckNoKERNTable(rec, fnt) })
	run(rec, func() { checks.CheckFamilyNameDoesNotBeginWithADigit(rec, fnt) })
	run(rec, func() { checks.CheckFullFontNameBeginsWithTheFontFamilyName(rec, fnt) })
	run(rec, func() { checks.CheckNoUnusedDataAtTheEndOfGlyfTable(rec, fnt) })
	run(rec, func() { checks.CheckFontHasEuroSignCharacter(rec, fnt) })
	run(rec, func() { checks.CheckFontFollowsTheFamilyNamingRecommendations(rec, fnt) })
	run(rec, func() { checks.CheckFontEnablesSmartDropoutControl(rec, fnt) })
	run(rec, func() { checks.CheckMaxAdvanceWidthConsistent(rec, fnt) })
	run(rec, func() { checks.CheckNonASCIICharsInASCIIOnlyNameTableEntries(rec, fnt) })
	run(rec, func() { checks.CheckForPointsOutOfBounds(rec, fnt) })
	run(rec, func() { checks.CheckGlyphsHaveUniqueUnicodeCodepoints(rec, fnt) })
	run(rec, func() { checks.CheckAllGlyphsHaveCodepointsAssigned(rec, fnt) })
	run(rec, func() { checks.CheckGlyphNamesDoNotExceedMaxLength(rec, fnt) })
	run(rec, func() { checks.CheckFontEmSize(rec, fnt) })
	run(rec, func() { checks.CheckOS2FSSelection(rec, fnt, style) })
	run(rec, func() { checks.CheckPostItalicAngle(rec, fnt, style, save) })
	run(rec, func() { checks.CheckHeadMacStyle(rec, fnt, style) })
}

func (s *CheckService) runFontMetadataChecks(rec *domain.Recorder, fnt *font.Font, fam *metadata.Family, fm metadata.FontMetadata) {
	run(rec, func() { checks.CheckFontAndMetadataHaveSameFamilyName(rec, fnt, fm) })
	run(rec, func() { checks.CheckPostScriptNameMatchesNameTableValue(rec, fnt, fm) })
	run(rec, func() { checks.CheckFullnameMatchesNameTableValue(rec, fnt, fm) })
	run(rec, func() { checks.CheckMetadataNameMatchesFontFamilyName(rec, fnt, fm) })
	run(rec, func() { checks.CheckFullNameMatchesPostScriptName(rec, fm) })
	run(rec, func() { checks.CheckFilenameMatchesPostScriptName(rec, fm) })
	run(rec, func() {
		familyName, ok := checks.CheckMetadataNameContainsGoodFontName(rec, fnt, fm)
		if !ok {
			return
		}
		checks.CheckFullNameContainsGoodFontName(rec, fm, familyName)
		checks.CheckFilenameContainsGoodFontName(rec, fm, familyName)
		checks.CheckPostScriptNameContainsGoodFontName(rec, fm, familyName)
	})
	run(rec, func() { checks.CheckCopyrightNoticeMatchesCanonicalPattern(rec, fm) })
	run(rec, func() { checks.CheckCopyrightNoticeDoesNotContainReservedName(rec, fm) })
	run(rec, func() { checks.CheckCopyrightNoticeDoesNotExceed500Chars(rec, fm) })
	run(rec, func() { checks.CheckFilenameIsSetCanonically(rec, fm) })
	run(rec, func() { checks.CheckFontItalicMatchesFontInternals(rec, fnt, fm) })
	run(rec, func() { checks.CheckFontStyleNormalMatchesInternals(rec, fnt, fm) })
	run(rec, func() { checks.CheckMetadataKeyValueMatchToTableNameFields(rec, fnt, fm) })
	run(rec, func() { checks.CheckFontNameIsNotCamelCased(rec, fm) })
	run(rec, func() { checks.CheckFontNameIsTheSameAsFamilyName(rec, fam, fm) })
	run(rec, func() { checks.CheckFontWeightHasACanonicalValue(rec, fm) })
	run(rec, func() { checks.CheckOS2WeightClassMatchesMetadata(rec, fnt, fm.Weight) })
	run(rec, func() { checks.CheckWeightMatchesPostScriptName(rec, fm) })
	run(rec, func() { checks.CheckFontsNamedCanonically(rec, fnt, fm) })
	run(rec, func() { checks.CheckFontStylesAreNamedCanonically(rec, fnt, fm) })
}

func (s *CheckService) runRegressionChecks(rec *domain.Recorder, beforeDir, filename string, fnt *font.Font) {
	oldFont, err := s.parser.Parse(beforeDir, filename)
	if err != nil {
		rec.InternalFailure(fmt.Sprintf("parsing previous release of %s: %v", filename, err))
		return
	}
	run(rec, func() { checks.CheckVersionNumberIncreased(rec, fnt, oldFont) })
	run(rec, func() { checks.CheckGlyphsAreSimilarToOldVersion(rec, fnt, oldFont) })
	run(rec, func() { checks.CheckAutohintXHeightIncreaseMatches(rec, fnt, oldFont) })
}

func (s *CheckService) runCoverageChecks(ctx context.Context, rec *domain.Recorder, familyDir, filename string, cfg domain.RunConfig) {
	if s.coverage == nil {
		return
	}
	fontPath := s.parser.Path(familyDir, filename)
	for _, gc := range checks.GlyphSetChecks {
		gc := gc
		toolCtx, cancel := context.WithTimeout(ctx, cfg.ToolTimeout)
		run(rec, func() { checks.CheckGlyphCoverage(rec, toolCtx, s.coverage, fontPath, gc) })
		cancel()
	}
}

// metadataFor finds the FontMetadata record declaring the given filename.
func metadataFor(fam *metadata.Family, filename string) (metadata.FontMetadata, bool) {
	for _, fm := range fam.Fonts {
		if fm.Filename == filename {
			return fm, true
		}
	}
	return metadata.FontMetadata{}, false
}
