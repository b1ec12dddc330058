package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ev3-protocol/ev3-go/pkg/command"
	"github.com/ev3-protocol/ev3-go/pkg/log"
	"github.com/ev3-protocol/ev3-go/pkg/wire"
)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ev3log")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func commandEvent(ts time.Time, conn string, seq uint16, cmd *wire.Command) log.Event {
	cmd.Sequence = seq
	return log.Event{
		Timestamp:    ts,
		ConnectionID: conn,
		Direction:    log.DirectionOut,
		Layer:        log.LayerWire,
		Category:     log.CategoryFrame,
		Device:       "/dev/rfcomm0",
		Frame:        log.NewFrameEvent(wire.Marshal(cmd), log.DirectionOut),
	}
}

func sampleEvents() []log.Event {
	ts := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	tone, _ := command.PlayTone(5000, 1000, 50)
	return []log.Event{
		{
			Timestamp:    ts,
			ConnectionID: "0f6c2a9e-1111-2222-3333-444455556666",
			Layer:        log.LayerLifecycle,
			Category:     log.CategoryState,
			StateChange: &log.StateChangeEvent{
				Entity:   log.StateEntityBrick,
				OldState: "UNINITIALIZED",
				NewState: "INITIALIZED",
				Reason:   "initialise",
			},
		},
		commandEvent(ts.Add(time.Millisecond), "0f6c2a9e-1111-2222-3333-444455556666", 0, command.Stop(command.AllMotors, 0, true)),
		commandEvent(ts.Add(2*time.Millisecond), "0f6c2a9e-1111-2222-3333-444455556666", 1, tone),
		commandEvent(ts.Add(3*time.Millisecond), "0f6c2a9e-1111-2222-3333-444455556666", 3, command.KeepAlive()),
		{
			Timestamp:    ts.Add(4 * time.Millisecond),
			ConnectionID: "0f6c2a9e-1111-2222-3333-444455556666",
			Direction:    log.DirectionIn,
			Layer:        log.LayerTransport,
			Category:     log.CategoryFrame,
			Frame:        log.NewFrameEvent([]byte{0x03, 0x00, 0x02}, log.DirectionIn),
		},
		{
			Timestamp:    ts.Add(5 * time.Millisecond),
			ConnectionID: "0f6c2a9e-1111-2222-3333-444455556666",
			Direction:    log.DirectionOut,
			Layer:        log.LayerWire,
			Category:     log.CategoryError,
			Error: &log.ErrorEventData{
				Layer:   log.LayerTransport,
				Message: "write: broken pipe",
				Context: "send SOUND seq=2",
			},
		},
	}
}

func TestViewDecodesCommands(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	var buf bytes.Buffer
	if err := RunView(path, log.Filter{}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"[conn:0f6c2a9e] OUT WIRE Frame",
		"Command: OUTPUT_STOP DIRECT_NO_REPLY",
		"Params: BARE:0 BARE:15 BARE:1",
		"Command: SOUND DIRECT_NO_REPLY",
		"Params: BARE:1 LC1:50 LC2:5000 LC2:1000",
		"Command: UI_READ DIRECT_REPLY",
		"UNINITIALIZED -> INITIALIZED",
		"Reason: initialise",
		"Message: write: broken pipe",
		"Device: /dev/rfcomm0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	// Replies are shown raw.
	if strings.Count(out, "Command:") != 3 {
		t.Errorf("expected 3 decoded commands, got %d", strings.Count(out, "Command:"))
	}
}

func TestViewFilter(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	cat, err := ParseCategoryFlag("STATE")
	if err != nil {
		t.Fatalf("ParseCategoryFlag failed: %v", err)
	}

	var buf bytes.Buffer
	if err := RunView(path, log.Filter{Category: &cat}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "Frame") {
		t.Errorf("frame events should be filtered out:\n%s", out)
	}
	if !strings.Contains(out, "LIFECYCLE State") {
		t.Errorf("expected lifecycle state event:\n%s", out)
	}
}

func TestViewNegativeParams(t *testing.T) {
	ts := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	path := createTestLogFile(t, []log.Event{
		commandEvent(ts, "c", 0, command.TimePower(command.MotorA.Mask(), 0, -60, 100, 1000, 100, false)),
	})

	var buf bytes.Buffer
	if err := RunView(path, log.Filter{}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	if !strings.Contains(buf.String(), "LC1:-60") {
		t.Errorf("expected signed power in output:\n%s", buf.String())
	}
}

func TestParseFlags(t *testing.T) {
	if _, err := ParseLayerFlag("lifecycle"); err != nil {
		t.Errorf("ParseLayerFlag(lifecycle): %v", err)
	}
	if _, err := ParseLayerFlag("service"); err == nil {
		t.Error("expected error for unknown layer")
	}
	if d, err := ParseDirectionFlag("OUT"); err != nil || d != log.DirectionOut {
		t.Errorf("ParseDirectionFlag(OUT) = %v, %v", d, err)
	}
	if _, err := ParseDirectionFlag("sideways"); err == nil {
		t.Error("expected error for unknown direction")
	}
	if _, err := ParseCategoryFlag("message"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestStats(t *testing.T) {
	stats, err := CollectStats(createTestLogFile(t, sampleEvents()))
	if err != nil {
		t.Fatalf("CollectStats failed: %v", err)
	}

	if stats.TotalEvents != 6 {
		t.Errorf("expected 6 events, got %d", stats.TotalEvents)
	}
	if stats.Errors != 1 {
		t.Errorf("expected 1 error, got %d", stats.Errors)
	}
	if got := stats.CommandsByOpCode[wire.OpSound]; got != 1 {
		t.Errorf("expected 1 SOUND command, got %d", got)
	}

	conn := stats.Connections["0f6c2a9e-1111-2222-3333-444455556666"]
	if conn == nil {
		t.Fatal("connection missing from stats")
	}
	if conn.Commands != 3 || conn.Replies != 1 {
		t.Errorf("expected 3 commands and 1 reply, got %d and %d", conn.Commands, conn.Replies)
	}
	// Sequence 2 was consumed by the failed send.
	if conn.SequenceGaps != 1 {
		t.Errorf("expected 1 sequence gap, got %d", conn.SequenceGaps)
	}
	if conn.Device != "/dev/rfcomm0" {
		t.Errorf("expected device /dev/rfcomm0, got %q", conn.Device)
	}
}

func TestRunStatsOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := RunStats(createTestLogFile(t, sampleEvents()), &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"Total Events: 6", "LIFECYCLE:", "OUTPUT_STOP:", "Sequence gaps: 1", "Errors: 1", "Connections: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestStatsWrapsSequence(t *testing.T) {
	ts := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	path := createTestLogFile(t, []log.Event{
		commandEvent(ts, "c", 0xFFFF, command.KeepAlive()),
		commandEvent(ts, "c", 0x0000, command.KeepAlive()),
	})

	stats, err := CollectStats(path)
	if err != nil {
		t.Fatalf("CollectStats failed: %v", err)
	}
	if gaps := stats.Connections["c"].SequenceGaps; gaps != 0 {
		t.Errorf("expected no gap across wrap, got %d", gaps)
	}
}

func TestExportJSONL(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	outPath := filepath.Join(t.TempDir(), "out.jsonl")

	if err := RunExport(path, "jsonl", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}
	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("failed to parse line 1: %v", err)
	}
	if first["ConnectionID"] != "0f6c2a9e-1111-2222-3333-444455556666" {
		t.Errorf("unexpected ConnectionID %v", first["ConnectionID"])
	}
}

func TestExportCSV(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	outPath := filepath.Join(t.TempDir(), "out.csv")

	if err := RunExport(path, "csv", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}
	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse csv: %v", err)
	}
	if len(rows) != 7 {
		t.Fatalf("expected header + 6 rows, got %d", len(rows))
	}
	stop := rows[2]
	if stop[6] != "frame" || stop[7] != "0" || stop[8] != "OUTPUT_STOP" {
		t.Errorf("unexpected stop row: %v", stop)
	}
	if rows[5][8] != "" {
		t.Errorf("reply row should have no opcode: %v", rows[5])
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	if err := RunExport(path, "xml", ""); err == nil {
		t.Error("expected error for unknown format")
	}
}
