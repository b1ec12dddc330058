// Package interactive provides the ev3ctl command shell.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ev3-protocol/ev3-go/pkg/command"
	"github.com/ev3-protocol/ev3-go/pkg/ev3"
	"github.com/ev3-protocol/ev3-go/pkg/sensor"
)

// Brick is the part of *ev3.Brick the shell drives.
type Brick interface {
	Name() string
	State() ev3.State
	Start(ctx context.Context) error
	Pause() error
	Destroy() error
	IsAlive() bool
	AssignSensorsToPorts()
	SensorValue(p sensor.Port) int32

	MoveSteps(ports command.PortMask, speed, rampUp, constant, rampDown int, brake bool)
	MoveTime(ports command.PortMask, power, rampUpMs, constantMs, rampDownMs int, brake bool)
	Stop(ports command.PortMask, brake bool)
	SetPower(ports command.PortMask, power int)
	SetSpeed(ports command.PortMask, speed int)
	StartMotors(ports command.PortMask)
	PlayTone(frequencyHz, durationMs, volumePercent int)
	SetLED(status command.LEDStatus)
}

// Shell runs commands against a brick.
type Shell struct {
	brick Brick
	out   io.Writer
}

// New creates a shell writing its output to out.
func New(brick Brick, out io.Writer) *Shell {
	return &Shell{brick: brick, out: out}
}

// Run reads commands from the terminal until quit, EOF or ctx is done.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "ev3> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	s.out = rl.Stdout()
	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return nil
		}

		if quit := s.Execute(ctx, line); quit {
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return nil
		}
	}
}

// Execute runs one command line and reports whether the shell should exit.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	var err error
	switch cmd {
	case "help", "?":
		s.printHelp()
	case "status":
		s.cmdStatus()
	case "start":
		err = s.brick.Start(ctx)
	case "pause":
		err = s.brick.Pause()
	case "destroy":
		err = s.brick.Destroy()
	case "alive", "ping":
		fmt.Fprintf(s.out, "alive: %t\n", s.brick.IsAlive())
	case "rebind":
		s.brick.AssignSensorsToPorts()
	case "sensor", "s":
		err = s.cmdSensor(args)
	case "move", "m":
		err = s.cmdMove(args)
	case "time", "t":
		err = s.cmdTime(args)
	case "stop":
		err = s.cmdStop(args)
	case "power":
		err = s.cmdSet(args, s.brick.SetPower)
	case "speed":
		err = s.cmdSet(args, s.brick.SetSpeed)
	case "run":
		err = s.cmdRun(args)
	case "tone":
		err = s.cmdTone(args)
	case "led":
		err = s.cmdLED(args)
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
		return false
	}

	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
EV3 Commands:
  Lifecycle:
    status                          - Show brick state and sensor values
    start | pause | destroy         - Drive the brick lifecycle
    alive                           - Send a keep-alive probe
    rebind                          - Re-read the sensor port bindings

  Motors (ports are letters, e.g. AB):
    move <ports> <speed> <steps> [ramp] [coast]
    time <ports> <power> <ms> [ramp] [coast]
    stop [ports] [coast]            - Stop motors (default all, braking)
    power <ports> <n> | speed <ports> <n>
    run <ports>                     - Start motors with the last power/speed

  Other:
    sensor [1-4]                    - Show sensor values
    tone <hz> <ms> [volume]         - Play a tone
    led <pattern>                   - off, green, red, orange, *-flash, *-pulse
    quit                            - Exit`)
}

func (s *Shell) cmdStatus() {
	fmt.Fprintf(s.out, "%s: %s\n", s.brick.Name(), s.brick.State())
	for _, p := range sensor.Ports {
		fmt.Fprintf(s.out, "  %s: %d\n", p, s.brick.SensorValue(p))
	}
}

func (s *Shell) cmdSensor(args []string) error {
	if len(args) == 0 {
		for _, p := range sensor.Ports {
			fmt.Fprintf(s.out, "%s: %d\n", p, s.brick.SensorValue(p))
		}
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid port %q", args[0])
	}
	p := sensor.Port(n)
	fmt.Fprintf(s.out, "%s: %d\n", p, s.brick.SensorValue(p))
	return nil
}

// profileArgs parses <ports> <value> <amount> [ramp] [coast].
func profileArgs(args []string) (ports command.PortMask, value, amount, ramp int, brake bool, err error) {
	if len(args) < 3 {
		return 0, 0, 0, 0, false, fmt.Errorf("usage: <ports> <value> <amount> [ramp] [coast]")
	}
	if ports, err = ParsePorts(args[0]); err != nil {
		return
	}
	if value, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, 0, 0, false, fmt.Errorf("invalid value %q", args[1])
	}
	if amount, err = strconv.Atoi(args[2]); err != nil {
		return 0, 0, 0, 0, false, fmt.Errorf("invalid amount %q", args[2])
	}
	brake = true
	for _, a := range args[3:] {
		if strings.EqualFold(a, "coast") {
			brake = false
			continue
		}
		if ramp, err = strconv.Atoi(a); err != nil {
			return 0, 0, 0, 0, false, fmt.Errorf("invalid ramp %q", a)
		}
	}
	return ports, value, amount, ramp, brake, nil
}

func (s *Shell) cmdMove(args []string) error {
	ports, speed, steps, ramp, brake, err := profileArgs(args)
	if err != nil {
		return err
	}
	s.brick.MoveSteps(ports, speed, ramp, steps, ramp, brake)
	return nil
}

func (s *Shell) cmdTime(args []string) error {
	ports, power, ms, ramp, brake, err := profileArgs(args)
	if err != nil {
		return err
	}
	s.brick.MoveTime(ports, power, ramp, ms, ramp, brake)
	return nil
}

func (s *Shell) cmdStop(args []string) error {
	ports := command.AllMotors
	brake := true
	for _, a := range args {
		if strings.EqualFold(a, "coast") {
			brake = false
			continue
		}
		p, err := ParsePorts(a)
		if err != nil {
			return err
		}
		ports = p
	}
	s.brick.Stop(ports, brake)
	return nil
}

func (s *Shell) cmdSet(args []string, set func(command.PortMask, int)) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: <ports> <n>")
	}
	ports, err := ParsePorts(args[0])
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid value %q", args[1])
	}
	set(ports, n)
	return nil
}

func (s *Shell) cmdRun(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: run <ports>")
	}
	ports, err := ParsePorts(args[0])
	if err != nil {
		return err
	}
	s.brick.StartMotors(ports)
	return nil
}

func (s *Shell) cmdTone(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: tone <hz> <ms> [volume]")
	}
	vals := []int{0, 0, 50}
	for i, a := range args[:min(len(args), 3)] {
		v, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("invalid number %q", a)
		}
		vals[i] = v
	}
	s.brick.PlayTone(vals[0], vals[1], vals[2])
	return nil
}

func (s *Shell) cmdLED(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: led <pattern>")
	}
	status, err := ParseLED(args[0])
	if err != nil {
		return err
	}
	s.brick.SetLED(status)
	return nil
}

// ParsePorts parses motor letters such as "A", "bc" or "ABCD".
func ParsePorts(s string) (command.PortMask, error) {
	if s == "" {
		return 0, fmt.Errorf("no ports given")
	}
	var mask command.PortMask
	for _, r := range strings.ToUpper(s) {
		if r < 'A' || r > 'D' {
			return 0, fmt.Errorf("invalid motor port %q", r)
		}
		mask |= command.MotorPort(r - 'A').Mask()
	}
	return mask, nil
}

// ParseLED parses a pattern name like "green" or "orange-pulse".
func ParseLED(s string) (command.LEDStatus, error) {
	name := strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	for st := command.LEDOff; st <= command.LEDOrangePulse; st++ {
		if st.String() == name {
			return st, nil
		}
	}
	return 0, fmt.Errorf("unknown LED pattern %q", s)
}

var _ Brick = (*ev3.Brick)(nil)
