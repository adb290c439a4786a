package transfer

import (
	"context"
	"fmt"

	"github.com/fabworks/contentbridge/internal/domain"
	"github.com/fabworks/contentbridge/internal/duplicate"
	"github.com/fabworks/contentbridge/internal/fsops"
	"github.com/fabworks/contentbridge/internal/logger"
	"github.com/fabworks/contentbridge/internal/manifest"
	"github.com/fabworks/contentbridge/internal/runtime"
	"github.com/fabworks/contentbridge/internal/validate"
)

// Service drives a transfer end to end: build a preview of what an
// import would do, then execute it with the operator's selections and
// overrides applied. Plan and Run split Execute so callers can fail the
// gate checks synchronously and run the batch later on a worker.
type Service interface {
	Preview(ctx context.Context, req PreviewRequest) (*Preview, error)
	Plan(ctx context.Context, req ExecuteRequest) (*Plan, error)
	Run(ctx context.Context, plan *Plan) (*domain.BatchSummary, error)
	Execute(ctx context.Context, req ExecuteRequest) (*domain.BatchSummary, error)
}

type PreviewRequest struct {
	PackageDir          string
	TargetConfiguration string
	TargetDir           string
}

// Preview is the validated view of a package against one target
// configuration. It carries everything Execute needs, so the operator
// can review, pick overrides and come back without re-reading the
// package.
type Preview struct {
	Package             *domain.Package            `json:"package"`
	Report              *domain.ResolutionReport   `json:"report"`
	Conflicts           []domain.DuplicateConflict `json:"conflicts"`
	Warnings            []string                   `json:"warnings,omitempty"`
	TargetConfiguration string                     `json:"targetConfiguration"`
	TargetDir           string                     `json:"targetDir"`
	PackageDir          string                     `json:"packageDir"`
}

type ExecuteRequest struct {
	Preview *Preview

	// Selection holds item indices to import. Nil means every item in
	// the package.
	Selection []int

	Overrides domain.OverrideSelections

	// Proceed acknowledges previously reported duplicate conflicts.
	// Without it the duplicate check runs again and blocks the batch.
	Proceed bool

	OnProgress func(Progress)
	Cancelled  func() bool
}

// Plan is an execute request that passed the gate checks: overrides
// applied, selection normalized, duplicates cleared or waved through.
// Callers may swap OnProgress and Cancelled before handing it to Run.
type Plan struct {
	Package    *domain.Package
	PackageDir string
	TargetDir  string
	Report     *domain.ResolutionReport
	Selection  []int
	Target     runtime.Configuration
	OnProgress func(Progress)
	Cancelled  func() bool
}

// ConflictError blocks an execute when the target still holds items
// with the same identity as package items.
type ConflictError struct {
	Conflicts []domain.DuplicateConflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %d found", domain.ErrMsgDuplicateConflicts, len(e.Conflicts))
}

func (e *ConflictError) Unwrap() error { return domain.ErrDuplicateConflicts }

type service struct {
	registry *runtime.Registry
	policy   Policy
	loader   manifest.Loader
	checker  *duplicate.Checker
	importer *Importer
	valid    *validate.Validator
}

func NewService(registry *runtime.Registry, fs fsops.FS, policy Policy) Service {
	return &service{
		registry: registry,
		policy:   policy,
		loader:   manifest.NewLoader(fs),
		checker:  duplicate.New(fs, policy.ThumbnailExt),
		importer: NewImporter(fs, policy),
		valid:    validate.New(policy.CaseSensitive),
	}
}

// Preview loads the package manifest, resolves every captured reference
// against the target's lookups and reports duplicate identities already
// present in the target folder. Nothing is written.
func (s *service) Preview(ctx context.Context, req PreviewRequest) (*Preview, error) {
	log := logger.FromContext(ctx)

	target, err := s.registry.Get(req.TargetConfiguration)
	if err != nil {
		return nil, err
	}

	pkg, warnings, err := s.loader.Load(req.PackageDir)
	if err != nil {
		return nil, err
	}
	if len(pkg.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyPackage, req.PackageDir)
	}

	snapshot, err := target.Lookups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read target lookups: %w", err)
	}
	report := s.valid.Validate(pkg, snapshot)

	conflicts, err := s.checker.Check(ctx, pkg, target, req.TargetDir)
	if err != nil {
		return nil, err
	}

	counts := report.Counts()
	log.Info("transfer preview built",
		"configuration", req.TargetConfiguration,
		"items", len(pkg.Items),
		"resolved", counts[domain.StatusResolved],
		"unresolved", counts[domain.StatusUnresolved],
		"conflicts", len(conflicts))

	return &Preview{
		Package:             pkg,
		Report:              report,
		Conflicts:           conflicts,
		Warnings:            warnings,
		TargetConfiguration: req.TargetConfiguration,
		TargetDir:           req.TargetDir,
		PackageDir:          req.PackageDir,
	}, nil
}

// Plan runs every gate an execute must pass before the first item is
// touched: the preview must be present, overrides must target override-
// able entries, the selection must be in range and the target must be
// free of duplicates unless the operator chose to proceed past them.
func (s *service) Plan(ctx context.Context, req ExecuteRequest) (*Plan, error) {
	if req.Preview == nil || req.Preview.Package == nil {
		return nil, fmt.Errorf("%w: execute requires a preview", domain.ErrInvalidInput)
	}
	pkg := req.Preview.Package

	if err := validate.CheckSelections(req.Overrides, len(pkg.Items)); err != nil {
		return nil, err
	}
	report := validate.Merge(req.Preview.Report, req.Overrides)

	selection, err := normalizeSelection(req.Selection, len(pkg.Items))
	if err != nil {
		return nil, err
	}

	target, err := s.registry.Get(req.Preview.TargetConfiguration)
	if err != nil {
		return nil, err
	}

	if !req.Proceed {
		conflicts, err := s.checker.Check(ctx, pkg, target, req.Preview.TargetDir)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			return nil, &ConflictError{Conflicts: conflicts}
		}
	}

	return &Plan{
		Package:    pkg,
		PackageDir: req.Preview.PackageDir,
		TargetDir:  req.Preview.TargetDir,
		Report:     report,
		Selection:  selection,
		Target:     target,
		OnProgress: req.OnProgress,
		Cancelled:  req.Cancelled,
	}, nil
}

// Run imports the planned items. Item failures land in the summary, so
// an error return means the batch could not start at all.
func (s *service) Run(ctx context.Context, plan *Plan) (*domain.BatchSummary, error) {
	return s.importer.Run(ctx, BatchRequest{
		Package:    plan.Package,
		PackageDir: plan.PackageDir,
		TargetDir:  plan.TargetDir,
		Report:     plan.Report,
		Selection:  plan.Selection,
		Target:     plan.Target,
		OnProgress: plan.OnProgress,
		Cancelled:  plan.Cancelled,
	}, s.policy.ErrorDisplayLimit)
}

// Execute applies overrides to the preview's report, re-checks for
// duplicates unless the operator chose to proceed past them, and runs
// the import batch.
func (s *service) Execute(ctx context.Context, req ExecuteRequest) (*domain.BatchSummary, error) {
	plan, err := s.Plan(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx, plan)
}

func normalizeSelection(selection []int, itemCount int) ([]int, error) {
	if selection == nil {
		all := make([]int, itemCount)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	if len(selection) == 0 {
		return nil, fmt.Errorf("%w: selection is empty", domain.ErrInvalidInput)
	}
	for _, idx := range selection {
		if idx < 0 || idx >= itemCount {
			return nil, fmt.Errorf("%w: %d", domain.ErrItemIndexOutOfRange, idx)
		}
	}
	return selection, nil
}
