// Command mmu-bench is a host-side bench tool for exercising an MMU
// controller over its serial line protocol: send a command, print the
// reply, repeat.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	hserial "mmufw/host/serial"
)

func main() {
	device := flag.String("device", "/dev/ttyACM0", "serial device")
	baud := flag.Int("baud", 9600, "baud rate")
	verbose := flag.Bool("v", false, "print every line exchanged")
	flag.Parse()

	cfg := hserial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := hserial.Open(cfg)
	if err != nil {
		log.Fatalf("open %s: %v", *device, err)
	}
	defer port.Close()

	go readLoop(port, *verbose)

	fmt.Println("mmu-bench: type commands, Ctrl-D to exit")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if *verbose {
			fmt.Println("> " + line)
		}
		if _, err := port.Write([]byte(line + "\n")); err != nil {
			log.Printf("write: %v", err)
		}
	}
}

func readLoop(port interface{ Read([]byte) (int, error) }, verbose bool) {
	buf := make([]byte, 256)
	var partial []byte
	for {
		n, err := port.Read(buf)
		if err != nil {
			return
		}
		for _, b := range buf[:n] {
			if b == '\n' || b == '\r' {
				if len(partial) > 0 {
					fmt.Println("< " + string(partial))
					partial = partial[:0]
				}
				continue
			}
			partial = append(partial, b)
		}
	}
}
