//go:build rp2040

package main

import (
	"mmufw/core"

	"machine"
)

// I2C0 claims its default pins (SDA=GP4, SCL=GP5) for the filament/button
// expander; everything else is assigned clear of them.
const (
	pinStep     = machine.GPIO2
	pinDir      = machine.GPIO3
	pinEnable   = machine.GPIO10
	pinHub      = machine.GPIO11
	pinMissing  = machine.GPIO12
	pinLEDData  = machine.GPIO13
	pinSelector = machine.GPIO14
	pinCutter   = machine.GPIO15
	pinBuzzer   = machine.GPIO16

	uartBaud = 9600
)

var controller *core.Controller

func main() {
	InitClock()
	core.TimerInit()
	core.InitAsyncLog()

	uart := machine.UART0
	uart.Configure(machine.UARTConfig{BaudRate: uartBaud})

	core.SetGPIODriver(NewRPGPIODriver())
	core.SetPWMDriver(NewRP2040PWMDriver())
	core.SetI2CDriver(NewRPI2CDriver())
	core.SetLEDDriver(NewWS2812LEDs(pinLEDData))
	core.SetServoDriver(NewPWMServos(pinSelector, pinCutter))
	core.SetBuzzerDriver(NewPiezoBuzzer(pinBuzzer))
	core.SetExpanderDriver(NewPCF8574Expander(0, 7))
	core.SetStepperBackend(NewRPStepperBackend(pinStep, pinDir, pinEnable))
	core.SetLineWriter(func(line string) {
		uart.Write([]byte(line))
		uart.Write([]byte("\r\n"))
	})

	core.MustI2C().ConfigureBus(0, 100000)

	core.MustGPIO().ConfigureOutput(core.GPIOPin(pinMissing))
	core.MustGPIO().ConfigureInputPullUp(core.GPIOPin(pinHub))
	hubInitial := core.MustGPIO().ReadPin(core.GPIOPin(pinHub))
	controller = core.NewController(core.GPIOPin(pinMissing), hubInitial)

	pinHub.SetInterrupt(machine.PinToggle, func(p machine.Pin) {
		controller.Hub.OnEdge(p.Get())
	})

	var lineBuf []byte
	for {
		core.SetTime(GetHardwareTime())

		for uart.Buffered() > 0 {
			b, err := uart.ReadByte()
			if err != nil {
				break
			}
			if b == '\n' || b == '\r' {
				if len(lineBuf) > 0 {
					controller.Dispatch(string(lineBuf))
					lineBuf = lineBuf[:0]
				}
				continue
			}
			lineBuf = append(lineBuf, b)
		}

		if controller.RuntimeState.Started {
			controller.Poll(core.GetTimeMS())
		} else {
			controller.PollStartup(core.GetTimeMS())
		}
	}
}
