package transfer_bench

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fabworks/contentbridge/internal/domain"
	"github.com/fabworks/contentbridge/internal/export"
	"github.com/fabworks/contentbridge/internal/fsops"
	"github.com/fabworks/contentbridge/internal/manifest"
	"github.com/fabworks/contentbridge/internal/naming"
	"github.com/fabworks/contentbridge/internal/runtime"
	"github.com/fabworks/contentbridge/internal/runtime/memory"
	"github.com/fabworks/contentbridge/internal/transfer"
	"github.com/fabworks/contentbridge/internal/validate"
)

// --- Fixtures ---

// lookupNames generates count names sharing a prefix, zero-padded so the
// sets are stable across runs.
func lookupNames(prefix string, count int) []string {
	names := make([]string, count)
	for i := range names {
		names[i] = fmt.Sprintf("%s %04d", prefix, i)
	}
	return names
}

func buildSnapshot(perCategory int) *runtime.Snapshot {
	names := make(map[domain.Category][]string, len(domain.Categories()))
	for _, category := range domain.Categories() {
		names[category] = lookupNames(string(category), perCategory)
	}
	return runtime.NewSnapshot(names)
}

// buildPackage creates items whose references mix exact matches, names
// that only match after case folding, and names with no match at all.
func buildPackage(items, perCategory int) *domain.Package {
	pkg := &domain.Package{
		ConfigurationName: "Plant A",
		ExportedBy:        "bench",
		Items:             make([]domain.Item, items),
	}
	for i := range pkg.Items {
		var refs domain.ReferenceSet
		refs.Set(domain.CategoryService, fmt.Sprintf("service %04d", i%perCategory))
		refs.Set(domain.CategoryMaterial, fmt.Sprintf("MATERIAL %04d", i%perCategory))
		refs.Set(domain.CategorySpecification, fmt.Sprintf("specification %04d", i%perCategory))
		refs.Set(domain.CategorySection, "No Such Section")
		refs.Set(domain.CategoryPriceList, fmt.Sprintf("price_list %04d", i%perCategory))
		refs.Set(domain.CategoryInstallationTimes, fmt.Sprintf("installation_times %04d", i%perCategory))

		pkg.Items[i] = domain.Item{
			FileName:   fmt.Sprintf("item-%04d.itm", i),
			CID:        i,
			DatabaseID: fmt.Sprintf("DB-%04d", i),
			References: refs,
		}
	}
	return pkg
}

// --- Benchmark Functions ---

// BenchmarkValidatePackage resolves a mid-sized package against a large
// lookup snapshot with case folding on, the production default.
func BenchmarkValidatePackage(b *testing.B) {
	snap := buildSnapshot(1000)
	pkg := buildPackage(200, 1000)
	v := validate.New(false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		report := v.Validate(pkg, snap)
		if len(report.Entries) == 0 {
			b.Fatal("expected resolution entries")
		}
	}
}

// BenchmarkValidatePackage_CaseSensitive measures the same package with
// exact matching, where the folded index is skipped.
func BenchmarkValidatePackage_CaseSensitive(b *testing.B) {
	snap := buildSnapshot(1000)
	pkg := buildPackage(200, 1000)
	v := validate.New(true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		report := v.Validate(pkg, snap)
		if len(report.Entries) == 0 {
			b.Fatal("expected resolution entries")
		}
	}
}

// BenchmarkIndexResolve measures a single folded lookup in a large index.
func BenchmarkIndexResolve(b *testing.B) {
	idx := naming.NewIndex(lookupNames("material", 10000), false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := idx.Resolve("MATERIAL 5000"); !ok {
			b.Fatal("expected a match")
		}
	}
}

// BenchmarkIndexBuild measures building the folded index itself.
func BenchmarkIndexBuild(b *testing.B) {
	names := lookupNames("material", 10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		naming.NewIndex(names, false)
	}
}

// BenchmarkPreview runs the full preview path, manifest read through
// resolution report, over an exported package of fifty items.
func BenchmarkPreview(b *testing.B) {
	root := b.TempDir()
	fs := fsops.NewRealFS()
	ctx := context.Background()

	source := memory.New("Plant A")
	target := memory.New("Plant B")
	for _, cfg := range []*memory.Config{source, target} {
		cfg.SetLookups(domain.CategoryService, lookupNames("service", 100)...)
		cfg.SetLookups(domain.CategoryMaterial, lookupNames("material", 100)...)
		cfg.SetLookups(domain.CategorySpecification, lookupNames("specification", 100)...)
		cfg.SetLookups(domain.CategorySection, lookupNames("section", 100)...)
		cfg.SetLookups(domain.CategoryInstallationTimes, lookupNames("installation_times", 100)...)
		cfg.SetLookups(domain.CategoryFabricationTimes, lookupNames("fabrication_times", 100)...)
		cfg.SetSupplierGroups(memory.SupplierGroup{Name: "Nordic", PriceLists: lookupNames("price_list", 100)})
	}

	registry := runtime.NewRegistry()
	registry.Register(source)
	registry.Register(target)

	srcDir := filepath.Join(root, "library")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		b.Fatal(err)
	}

	paths := make([]string, 50)
	for i := range paths {
		payload := []byte(fmt.Sprintf("payload-%04d", i))
		var refs domain.ReferenceSet
		refs.Set(domain.CategoryMaterial, fmt.Sprintf("material %04d", i%100))
		refs.Set(domain.CategorySpecification, fmt.Sprintf("SPECIFICATION %04d", i%100))
		source.AddItem(payload, memory.Record{
			DatabaseID: fmt.Sprintf("DB-%04d", i),
			References: refs,
		})

		path := filepath.Join(srcDir, fmt.Sprintf("item-%04d.itm", i))
		if err := os.WriteFile(path, payload, 0o644); err != nil {
			b.Fatal(err)
		}
		paths[i] = path
	}

	exportSvc := export.NewService(source, fs, manifest.NewWriter(fs), ".png")
	result, err := exportSvc.Export(ctx, export.Request{
		ItemPaths:  paths,
		OutputDir:  filepath.Join(root, "out"),
		ExportedBy: "bench",
	})
	if err != nil {
		b.Fatal(err)
	}

	svc := transfer.NewService(registry, fs, transfer.DefaultPolicy())
	req := transfer.PreviewRequest{
		PackageDir:          result.PackageDir,
		TargetConfiguration: "Plant B",
		TargetDir:           filepath.Join(root, "incoming"),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		preview, err := svc.Preview(ctx, req)
		if err != nil {
			b.Fatalf("Preview failed: %v", err)
		}
		if len(preview.Report.Entries) == 0 {
			b.Fatal("expected resolution entries")
		}
	}
}
