package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/rulerpick/internal/automation"
)

// ErrNoTrace is returned when a trace id has no metadata on disk.
var ErrNoTrace = errors.New("storage: trace not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type TraceMetadata struct {
	ID            string                    `json:"id"`
	Name          string                    `json:"name"`
	Preset        string                    `json:"preset"`
	Timestamp     time.Time                 `json:"timestamp"`
	Minimum       float64                   `json:"minimum"`
	Maximum       float64                   `json:"maximum"`
	Tick          float64                   `json:"tick"`
	Width         float64                   `json:"width"`
	Height        float64                   `json:"height"`
	Began         int                       `json:"began"`
	Ended         int                       `json:"ended"`
	Final         float64                   `json:"final"`
	Samples       int                       `json:"samples"`
	Notifications []automation.Notification `json:"notifications"`
}

// Save writes <id>/metadata.json and <id>/trace.csv and returns the id.
func (s *Store) Save(tr *automation.Trace) (string, error) {
	now := time.Now()
	name := tr.Name
	if name == "" {
		name = "trace"
	}
	base := fmt.Sprintf("%s_%d", slug(name), now.Unix())
	runID := base
	for n := 2; ; n++ {
		if _, err := os.Stat(filepath.Join(s.baseDir, runID)); os.IsNotExist(err) {
			break
		}
		runID = fmt.Sprintf("%s_%d", base, n)
	}
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := TraceMetadata{
		ID:            runID,
		Name:          tr.Name,
		Preset:        tr.Preset,
		Timestamp:     now,
		Minimum:       tr.Minimum,
		Maximum:       tr.Maximum,
		Tick:          tr.Tick,
		Width:         tr.Width,
		Height:        tr.Height,
		Began:         tr.Began,
		Ended:         tr.Ended,
		Final:         tr.Final,
		Samples:       len(tr.Samples),
		Notifications: tr.Notifications,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, tr.Samples); err != nil {
		return "", err
	}
	return runID, nil
}

// WriteCSV writes samples as t,value,event rows under a header.
func WriteCSV(out io.Writer, samples []automation.Sample) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"t", "value", "event"}); err != nil {
		return err
	}
	for _, smp := range samples {
		row := []string{
			strconv.FormatFloat(smp.T, 'f', 6, 64),
			strconv.FormatFloat(smp.Value, 'g', -1, 64),
			smp.Event,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns stored traces, newest first.
func (s *Store) List() ([]TraceMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []TraceMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]TraceMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*TraceMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoTrace, runID)
		}
		return nil, err
	}

	var meta TraceMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%s: %w", runID, err)
	}
	return &meta, nil
}

// LoadSamples reads trace.csv back. Malformed rows are skipped.
func (s *Store) LoadSamples(runID string) ([]automation.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trace.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoTrace, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []automation.Sample{}, nil
	}

	samples := make([]automation.Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		v, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		smp := automation.Sample{T: t, Value: v}
		if len(record) > 2 {
			smp.Event = record[2]
		}
		samples = append(samples, smp)
	}
	return samples, nil
}

// ExportJSON writes the metadata and samples of a stored trace as one document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	samples, err := s.LoadSamples(runID)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		*TraceMetadata
		Trace []automation.Sample `json:"trace"`
	}{meta, samples})
}

func slug(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		case r >= 'A' && r <= 'Z':
			return r + 'a' - 'A'
		}
		return '_'
	}, name)
}
