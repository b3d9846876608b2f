package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"godshot/host/serial"
	"godshot/protocol"
)

var (
	device  = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	refresh = flag.Bool("refresh", true, "Re-send the last throttle every 5ms")
	verbose = flag.Bool("verbose", false, "Enable verbose output")
)

func main() {
	flag.Parse()

	fmt.Println("DShot Host - ESC Throttle Bridge")
	fmt.Println("================================")

	port, err := serial.Open(&serial.Config{
		Device:      *device,
		Baud:        *baud,
		ReadTimeout: 100,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Printf("Connected to bridge on %s\n", *device)

	cmds := make(chan protocol.ThrottleCommand, 8)
	go streamCommands(port, cmds)

	fmt.Println("Enter commands (type 'help' for available commands, 'quit' to exit):")
	scanner := bufio.NewScanner(os.Stdin)

	current := protocol.ThrottleCommand{Throttle: protocol.CmdMotorStop}

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		switch parts[0] {
		case "quit", "exit", "q":
			cmds <- protocol.ThrottleCommand{Throttle: protocol.CmdMotorStop}
			fmt.Println("Goodbye!")
			return

		case "help", "?":
			printHelp()

		case "throttle", "t":
			if len(parts) < 2 {
				fmt.Println("usage: throttle <48-2047>")
				continue
			}
			v, err := strconv.Atoi(parts[1])
			if err != nil || v < protocol.MinThrottle || v > protocol.ThrottleMax {
				fmt.Printf("throttle must be %d-%d\n", protocol.MinThrottle, protocol.ThrottleMax)
				continue
			}
			current.Throttle = uint16(v)
			cmds <- current

		case "telemetry":
			if len(parts) < 2 || (parts[1] != "on" && parts[1] != "off") {
				fmt.Println("usage: telemetry on|off")
				continue
			}
			current.TelemetryRequest = parts[1] == "on"
			cmds <- current

		case "stop":
			current = protocol.ThrottleCommand{Throttle: protocol.CmdMotorStop}
			cmds <- current

		case "beacon":
			n := 1
			if len(parts) >= 2 {
				n, _ = strconv.Atoi(parts[1])
			}
			if n < 1 || n > 5 {
				fmt.Println("usage: beacon [1-5]")
				continue
			}
			cmds <- protocol.ThrottleCommand{Throttle: uint16(protocol.CmdBeacon1 + n - 1)}

		case "cmd":
			if len(parts) < 2 {
				fmt.Println("usage: cmd <0-47>")
				continue
			}
			v, err := strconv.Atoi(parts[1])
			if err != nil || v < 0 || v > protocol.CmdMax {
				fmt.Printf("command must be 0-%d\n", protocol.CmdMax)
				continue
			}
			cmds <- protocol.ThrottleCommand{Throttle: uint16(v)}

		default:
			fmt.Printf("Unknown command: %s (try 'help')\n", parts[0])
		}
	}
}

// streamCommands serializes commands onto the link, optionally
// refreshing the last throttle so the ESC stays armed while the user
// is idle at the prompt.
func streamCommands(port serial.Port, cmds <-chan protocol.ThrottleCommand) {
	var seq uint8
	last := protocol.ThrottleCommand{Throttle: protocol.CmdMotorStop}
	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()

	send := func(cmd protocol.ThrottleCommand) {
		blk := protocol.EncodeCommandBlock(seq, cmd)
		seq++
		if _, err := port.Write(blk); err != nil {
			fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
			return
		}
		if *verbose {
			frame := protocol.MakeFrame(cmd.Throttle, cmd.TelemetryRequest, false)
			fmt.Printf("sent seq=%d throttle=%d telemetry=%v frame=%04X\n",
				seq-1, cmd.Throttle, cmd.TelemetryRequest, uint16(frame))
		}
	}

	for {
		select {
		case cmd, ok := <-cmds:
			if !ok {
				return
			}
			last = cmd
			send(cmd)
		case <-ticker.C:
			if *refresh && last.Throttle >= protocol.MinThrottle {
				send(last)
			}
		}
	}
}

func printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  throttle <n>   - set throttle (48-2047)")
	fmt.Println("  telemetry on|off - set the telemetry request bit")
	fmt.Println("  stop           - motor stop")
	fmt.Println("  beacon [1-5]   - sound an ESC beacon")
	fmt.Println("  cmd <n>        - raw DShot special command (0-47)")
	fmt.Println("  quit           - stop the motor and exit")
}
