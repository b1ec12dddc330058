// Package commands implements the ev3-log CLI commands.
package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/ev3-protocol/ev3-go/pkg/log"
	"github.com/ev3-protocol/ev3-go/pkg/wire"
)

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [conn:id] DIRECTION LAYER Type
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	connID := shortenConnID(event.ConnectionID)

	var typeLabel string
	switch {
	case event.Frame != nil:
		typeLabel = "Frame"
	case event.StateChange != nil:
		typeLabel = "State"
	case event.Error != nil:
		typeLabel = "Error"
	default:
		typeLabel = "Unknown"
	}

	fmt.Fprintf(w, "%s [conn:%s] %-3s %s %s\n", ts, connID, event.Direction.String(), event.Layer.String(), typeLabel)
	if event.Device != "" {
		fmt.Fprintf(w, "  Device: %s\n", event.Device)
	}

	switch {
	case event.Frame != nil:
		formatFrameDetails(w, event.Direction, event.Frame)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w)
}

// shortenConnID returns the first 8 characters of the connection ID.
func shortenConnID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatFrameDetails writes the frame bytes and, for commands, the decoded
// opcode and parameters.
func formatFrameDetails(w io.Writer, dir log.Direction, frame *log.FrameEvent) {
	fmt.Fprintf(w, "  Size: %d bytes\n", frame.Size)
	fmt.Fprintf(w, "  Seq: %d\n", frame.Sequence)
	if len(frame.Data) > 0 {
		fmt.Fprintf(w, "  Data: %s\n", hex.EncodeToString(frame.Data))
	}
	if dir != log.DirectionOut {
		return
	}

	cmd, err := wire.Unmarshal(frame.Data)
	if err != nil {
		fmt.Fprintf(w, "  Decode: %v\n", err)
		return
	}
	fmt.Fprintf(w, "  Command: %s %s\n", cmd.OpCode.String(), cmd.Type.String())
	if cmd.Globals > 0 || cmd.Locals > 0 {
		fmt.Fprintf(w, "  Reserve: globals=%d locals=%d\n", cmd.Globals, cmd.Locals)
	}
	if len(cmd.Params) > 0 {
		fmt.Fprintf(w, "  Params: %s\n", formatParams(cmd.Params))
	}
}

// formatParams renders parameters as KIND:value pairs.
func formatParams(params []wire.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%s:%d", p.Kind.String(), signed(p))
	}
	return strings.Join(parts, " ")
}

// signed interprets a long-format value as two's complement of its width.
func signed(p wire.Param) int64 {
	switch p.Kind {
	case wire.ParamOneByte:
		return int64(int8(p.Value))
	case wire.ParamTwoByte:
		return int64(int16(p.Value))
	case wire.ParamFourByte:
		return int64(int32(p.Value))
	default:
		return int64(p.Value)
	}
}

// formatStateChangeDetails writes state change details.
func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	fmt.Fprintf(w, "  Entity: %s\n", sc.Entity.String())
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

// formatErrorDetails writes error details.
func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer.String())
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// ParseLayerFlag parses a layer string (case-insensitive).
func ParseLayerFlag(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "transport":
		return log.LayerTransport, nil
	case "wire":
		return log.LayerWire, nil
	case "lifecycle":
		return log.LayerLifecycle, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be transport, wire, or lifecycle)", s)
	}
}

// ParseDirectionFlag parses a direction string (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category string (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "frame":
		return log.CategoryFrame, nil
	case "state":
		return log.CategoryState, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be frame, state, or error)", s)
	}
}

// RunView prints every event in path that matches filter.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
}
