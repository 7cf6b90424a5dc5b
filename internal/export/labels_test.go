package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/garageplan/internal/model"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	_, rec := buildTestLayout()
	if err := ExportLabels(path, rec); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportLabels_NoZones(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	if err := ExportLabels(path, model.LayoutRecommendation{}); err == nil {
		t.Fatal("expected error for a recommendation without zones, got nil")
	}
}

func TestCollectLabelInfos(t *testing.T) {
	_, rec := buildTestLayout()
	labels := CollectLabelInfos(rec)

	if len(labels) != len(rec.Zones) {
		t.Fatalf("expected %d labels, got %d", len(rec.Zones), len(labels))
	}

	first := labels[0]
	if first.Index != 1 || first.Name != "2019 Honda Civic" {
		t.Errorf("unexpected first label %+v", first)
	}
	if first.Width != 120 || first.Depth != 182 {
		t.Errorf("wrong dimensions: got %.0fx%.0f, want 120x182", first.Width, first.Depth)
	}
	if first.Wall != model.WallSouth || first.Type != model.ZoneVehicle {
		t.Errorf("wrong wall or type: %+v", first)
	}

	last := labels[len(labels)-1]
	if last.Index != len(rec.Zones) || last.Wall != model.WallNone {
		t.Errorf("unexpected overhead label %+v", last)
	}
}

func TestLabelInfo_QRPayload(t *testing.T) {
	_, rec := buildTestLayout()
	info := CollectLabelInfos(rec)[1]

	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if payload["name"] != "Workbench (medium)" {
		t.Errorf("name mismatch: %v", payload["name"])
	}
	if payload["type"] != "workbench" || payload["wall"] != "E" {
		t.Errorf("type or wall mismatch: %v", payload)
	}
	if payload["width_in"] != 48.0 || payload["depth_in"] != 72.0 {
		t.Errorf("size mismatch: %v x %v", payload["width_in"], payload["depth_in"])
	}
}

func TestExportLabels_MultiplePages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "many_labels.pdf")

	// 35 zones spill onto a second label sheet
	var rec model.LayoutRecommendation
	for i := 0; i < 35; i++ {
		rec.Zones = append(rec.Zones, model.Zone{
			Type:  model.ZoneWallStorage,
			Name:  fmt.Sprintf("Wall Storage %d", i+1),
			X:     float64(i * 50),
			Width: 48, Depth: 18,
			Wall: model.WallNorth,
		})
	}

	if err := ExportLabels(path, rec); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}
