package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"briefing_backend/internal/feature/briefing/domain/entity"
	"briefing_backend/internal/feature/briefing/usecase"
)

// fileExporter は日次ブリーフィングをJSONデータとマークダウンレポートとして
// ローカルディレクトリに書き出します。
type fileExporter struct {
	baseDir string
}

// fileExporterがExporterを実装していることをコンパイル時に検証します。
var _ usecase.Exporter = (*fileExporter)(nil)

// NewFileExporter は指定された出力先ディレクトリでfileExporterを生成します。
func NewFileExporter(baseDir string) *fileExporter {
	return &fileExporter{baseDir: baseDir}
}

// Export は briefings_YYYYMMDD.json と briefing_YYYYMMDD.md を書き出します。
func (e *fileExporter) Export(briefings []entity.StoredBriefing, generatedAt time.Time) error {
	stamp := generatedAt.Format("20060102")

	dataDir := filepath.Join(e.baseDir, "data")
	reportDir := filepath.Join(e.baseDir, "reports")
	for _, dir := range []string{dataDir, reportDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(briefings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal briefings: %w", err)
	}
	jsonPath := filepath.Join(dataDir, fmt.Sprintf("briefings_%s.json", stamp))
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", jsonPath, err)
	}

	var report strings.Builder
	fmt.Fprintf(&report, "# Daily Stock Briefing - %s\n\n", generatedAt.Format("2006-01-02"))
	for i, b := range briefings {
		if i > 0 {
			report.WriteString("\n\n---\n\n")
		}
		report.WriteString(b.Content)
	}
	mdPath := filepath.Join(reportDir, fmt.Sprintf("briefing_%s.md", stamp))
	if err := os.WriteFile(mdPath, []byte(report.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", mdPath, err)
	}

	return nil
}
