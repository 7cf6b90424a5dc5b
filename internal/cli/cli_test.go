package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/garageplan/internal/engine"
	"github.com/piwi3910/garageplan/internal/model"
	"github.com/piwi3910/garageplan/internal/project"
)

const garageYAML = `
name: Test Garage
garage:
  width: 240
  depth: 264
  ceiling_height: 108
  south_features:
    - name: Garage Door
      position: 120
  east_features:
    - name: Electrical Panel
      position: 200
profile:
  vehicles:
    - make: Subaru
      model: Outback
      length: 190
      width: 73
      must_fit_inside: true
  storage_categories:
    - name: Tools
      needs_accessibility: daily
  preferences:
    overhead_storage: true
`

// testCLI returns a CLI whose output, logs and state files are all local
// to the test.
func testCLI(t *testing.T) (*CLI, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()

	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	c.Out = &out
	c.configPath = filepath.Join(dir, "config.json")
	c.templatePath = filepath.Join(dir, "templates.json")
	return c, &out, &logs
}

func execute(c *CLI, args ...string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOptimizePrintsReportByDefault(t *testing.T) {
	c, out, _ := testCLI(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "garage.yaml"), garageYAML)

	if err := execute(c, "optimize", path); err != nil {
		t.Fatalf("optimize failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{"Layout for Test Garage", "Score", "GARAGE LAYOUT RECOMMENDATION", "Subaru Outback"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}

	cfg, err := project.LoadAppConfig(c.configPath)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	abs, _ := filepath.Abs(path)
	if len(cfg.RecentProjects) != 1 || cfg.RecentProjects[0] != abs {
		t.Errorf("expected %s in recent projects, got %v", abs, cfg.RecentProjects)
	}
}

func TestOptimizeWritesExports(t *testing.T) {
	c, out, _ := testCLI(t)
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "garage.yaml"), garageYAML)

	files := map[string]string{
		"--pdf":    filepath.Join(dir, "out", "plan.pdf"),
		"--labels": filepath.Join(dir, "out", "labels.pdf"),
		"--xlsx":   filepath.Join(dir, "out", "zones.xlsx"),
		"--dxf":    filepath.Join(dir, "out", "plan.dxf"),
		"--report": filepath.Join(dir, "out", "report.txt"),
		"--out":    filepath.Join(dir, "out", "result.json"),
	}
	if err := os.MkdirAll(filepath.Join(dir, "out"), 0755); err != nil {
		t.Fatal(err)
	}

	args := []string{"optimize", path}
	for flag, file := range files {
		args = append(args, flag, file)
	}
	if err := execute(c, args...); err != nil {
		t.Fatalf("optimize failed: %v", err)
	}

	for flag, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			t.Errorf("%s: %v", flag, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s: %s is empty", flag, file)
		}
	}
	if strings.Contains(out.String(), "GARAGE LAYOUT RECOMMENDATION") {
		t.Error("report should go to the file, not stdout")
	}

	saved, err := project.LoadProject(files["--out"])
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if saved.Result == nil || len(saved.Result.Zones) == 0 {
		t.Errorf("saved project should carry the result: %+v", saved.Result)
	}
}

func TestOptimizeUsesConfiguredDefaultFormats(t *testing.T) {
	c, _, logs := testCLI(t)
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "shop.yaml"), garageYAML)
	exportDir := filepath.Join(dir, "exports")

	cfg := model.DefaultAppConfig()
	cfg.DefaultFormats = []string{"dxf", "bogus"}
	cfg.ExportDir = exportDir
	if err := project.SaveAppConfig(c.configPath, cfg); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(exportDir, 0755); err != nil {
		t.Fatal(err)
	}

	if err := execute(c, "optimize", path); err != nil {
		t.Fatalf("optimize failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(exportDir, "shop.dxf")); err != nil {
		t.Errorf("expected default dxf export: %v", err)
	}
	if !strings.Contains(logs.String(), "unknown default export format") {
		t.Errorf("expected a warning for the bogus format, logs:\n%s", logs.String())
	}
}

func TestOptimizeSettingsFile(t *testing.T) {
	c, _, _ := testCLI(t)
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "garage.yaml"), garageYAML)
	bad := writeFile(t, filepath.Join(dir, "bad.toml"), "walkwya = 30\n")
	good := writeFile(t, filepath.Join(dir, "good.toml"), "walkway = 36\n")

	if err := execute(c, "optimize", path, "--settings", good); err != nil {
		t.Fatalf("optimize with settings failed: %v", err)
	}
	err := execute(c, "optimize", path, "--settings", bad)
	if err == nil || !strings.Contains(err.Error(), "walkwya") {
		t.Errorf("expected unknown key error, got %v", err)
	}
}

func TestOptimizeInvalidGeometry(t *testing.T) {
	c, _, _ := testCLI(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "flat.json"), `{"garage": {"width": 0, "depth": 240}}`)

	err := execute(c, "optimize", path)
	if !errors.Is(err, engine.ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestOptimizeMissingProject(t *testing.T) {
	c, _, _ := testCLI(t)
	if err := execute(c, "optimize", filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("expected error for a missing project file")
	}
}

func TestValidate(t *testing.T) {
	c, out, _ := testCLI(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "garage.yaml"), garageYAML)

	if err := execute(c, "validate", path); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Test Garage is valid") {
		t.Errorf("expected valid message:\n%s", text)
	}
	if !strings.Contains(text, "Subaru Outback") {
		t.Errorf("expected the vehicle demand to be listed:\n%s", text)
	}
}

func TestValidateReportsIssues(t *testing.T) {
	c, out, _ := testCLI(t)
	doc := `
garage:
  width: 240
  depth: 264
  north_features:
    - name: Window
      position: 120
  floor_features:
    - name: Floor Drain
      position: 100
`
	path := writeFile(t, filepath.Join(t.TempDir(), "garage.yaml"), doc)

	if err := execute(c, "validate", path); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "floor feature(s) are not considered") {
		t.Errorf("expected floor feature warning:\n%s", text)
	}
	if !strings.Contains(text, "usable with 1 warning(s)") {
		t.Errorf("expected warning count:\n%s", text)
	}
}

func TestValidateRejectsBadGeometry(t *testing.T) {
	c, _, _ := testCLI(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "g.json"), `{"garage": {"width": 240, "depth": -1}}`)

	if err := execute(c, "validate", path); !errors.Is(err, engine.ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestCompare(t *testing.T) {
	c, out, _ := testCLI(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "garage.yaml"), garageYAML)

	if err := execute(c, "compare", path); err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	text := out.String()
	for _, want := range []string{"Scenario", "Current Profile", "Without Overhead Storage", "Workspace First", "Best:"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestTemplateLifecycle(t *testing.T) {
	c, out, _ := testCLI(t)
	dir := t.TempDir()
	source := writeFile(t, filepath.Join(dir, "garage.yaml"), garageYAML)
	target := writeFile(t, filepath.Join(dir, "empty.json"), `{"name": "Empty", "garage": {"width": 240, "depth": 240}}`)

	if err := execute(c, "template", "list"); err != nil {
		t.Fatalf("template list failed: %v", err)
	}
	if !strings.Contains(out.String(), "No templates saved") {
		t.Errorf("expected empty list message:\n%s", out.String())
	}

	if err := execute(c, "template", "save", source, "--name", "Outback", "-d", "One wagon"); err != nil {
		t.Fatalf("template save failed: %v", err)
	}

	out.Reset()
	if err := execute(c, "template", "list"); err != nil {
		t.Fatalf("template list failed: %v", err)
	}
	if !strings.Contains(out.String(), "Outback") || !strings.Contains(out.String(), "One wagon") {
		t.Errorf("expected saved template in list:\n%s", out.String())
	}

	if err := execute(c, "template", "apply", "Outback", target); err != nil {
		t.Fatalf("template apply failed: %v", err)
	}
	p, err := project.LoadProject(target)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Profile.Vehicles) != 1 || p.Profile.Vehicles[0].Make != "Subaru" {
		t.Errorf("template profile not applied: %+v", p.Profile)
	}

	if err := execute(c, "template", "apply", "Missing", target); err == nil {
		t.Error("expected error for unknown template")
	}

	if err := execute(c, "template", "delete", "Outback"); err != nil {
		t.Fatalf("template delete failed: %v", err)
	}
	store, err := project.LoadTemplates(c.templatePath)
	if err != nil {
		t.Fatal(err)
	}
	if len(store.Templates) != 0 {
		t.Errorf("expected no templates after delete, got %d", len(store.Templates))
	}
}

func TestVerboseFlag(t *testing.T) {
	c, _, _ := testCLI(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "garage.yaml"), garageYAML)

	if err := execute(c, "-v", "validate", path); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("expected debug level, got %v", c.Logger.GetLevel())
	}
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	defer SetVersion("dev", "", "")

	if version != "1.0.0" || commit != "abc123" || date != "2024-01-01" {
		t.Errorf("unexpected version info %q %q %q", version, commit, date)
	}
}
