package checks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fontcheck/fontcheck/internal/domain"
	"github.com/fontcheck/fontcheck/internal/domain/checks"
	"github.com/fontcheck/fontcheck/internal/domain/metadata"
)

// fakeWebDirectory implements domain.WebDirectory with canned answers.
type fakeWebDirectory struct {
	listed      bool
	listErr     error
	designers   []string
	designerErr error
}

func (f *fakeWebDirectory) FamilyListed(_ context.Context, name string) (string, bool, error) {
	return "http://fonts.example.com/css?family=" + name, f.listed, f.listErr
}

func (f *fakeWebDirectory) DesignerProfiles(_ context.Context) ([]string, error) {
	return f.designers, f.designerErr
}

func TestCheckFamilyIsListedInDirectory(t *testing.T) {
	fam := &metadata.Family{Name: "Nunito"}

	r := newRecorder(t)
	checks.CheckFamilyIsListedInDirectory(r, context.Background(), &fakeWebDirectory{listed: true}, fam)
	assert.Equal(t, domain.StatusOK, lastStatus(t, r))

	r = newRecorder(t)
	checks.CheckFamilyIsListedInDirectory(r, context.Background(), &fakeWebDirectory{listed: false}, fam)
	assert.Equal(t, domain.StatusError, lastStatus(t, r))

	r = newRecorder(t)
	checks.CheckFamilyIsListedInDirectory(r, context.Background(), &fakeWebDirectory{listErr: errors.New("timeout")}, fam)
	assert.Equal(t, domain.StatusWarning, lastStatus(t, r), "a failed query is advisory, not a font defect")

	r = newRecorderWith(t, func(cfg *domain.RunConfig) { cfg.SkipNetwork = true })
	checks.CheckFamilyIsListedInDirectory(r, context.Background(), &fakeWebDirectory{}, fam)
	assert.Equal(t, domain.StatusSkip, lastStatus(t, r))
}

func TestCheckDesignerExistsInProfiles(t *testing.T) {
	dir := &fakeWebDirectory{designers: []string{"Vernon Adams", "Steve Matteson"}}

	r := newRecorder(t)
	checks.CheckDesignerExistsInProfiles(r, context.Background(), dir, &metadata.Family{Designer: "Vernon Adams"})
	assert.Equal(t, domain.StatusOK, lastStatus(t, r))

	r = newRecorder(t)
	checks.CheckDesignerExistsInProfiles(r, context.Background(), dir, &metadata.Family{Designer: "Nobody"})
	assert.Equal(t, domain.StatusWarning, lastStatus(t, r))

	r = newRecorder(t)
	checks.CheckDesignerExistsInProfiles(r, context.Background(), dir, &metadata.Family{Designer: ""})
	assert.Equal(t, domain.StatusError, lastStatus(t, r), "an empty designer fails before any network call")

	r = newRecorder(t)
	checks.CheckDesignerExistsInProfiles(r, context.Background(), dir, &metadata.Family{Designer: "Multiple Designers"})
	assert.Equal(t, domain.StatusSkip, lastStatus(t, r))

	r = newRecorder(t)
	checks.CheckDesignerExistsInProfiles(r, context.Background(),
		&fakeWebDirectory{designerErr: errors.New("unreachable")},
		&metadata.Family{Designer: "Vernon Adams"})
	assert.Equal(t, domain.StatusWarning, lastStatus(t, r))

	r = newRecorderWith(t, func(cfg *domain.RunConfig) { cfg.SkipNetwork = true })
	checks.CheckDesignerExistsInProfiles(r, context.Background(), dir, &metadata.Family{Designer: "Vernon Adams"})
	assert.Equal(t, domain.StatusSkip, lastStatus(t, r))
}
