package ssd1322

// SSD1322 command opcodes.
const (
	cmdSetColumnAddress  = 0x15
	cmdWriteRAM          = 0x5C
	cmdSetRowAddress     = 0x75
	cmdSetRemap          = 0xA0
	cmdSetStartLine      = 0xA1
	cmdSetDisplayOffset  = 0xA2
	cmdEntireDisplayOff  = 0xA4 // normal mode, RAM content shown
	cmdNormalDisplay     = 0xA6
	cmdInverseDisplay    = 0xA7
	cmdExitPartial       = 0xA9
	cmdFunctionSelect    = 0xAB
	cmdDisplayOff        = 0xAE
	cmdDisplayOn         = 0xAF
	cmdPhaseLength       = 0xB1
	cmdClockDivider      = 0xB3
	cmdDisplayEnhanceA   = 0xB4
	cmdSetGPIO           = 0xB5
	cmdSecondPrecharge   = 0xB6
	cmdDefaultGrayTable  = 0xB9
	cmdPrechargeVoltage  = 0xBB
	cmdSetVCOMH          = 0xBE
	cmdSetContrast       = 0xC1
	cmdMasterCurrent     = 0xC7
	cmdSetMuxRatio       = 0xCA
	cmdDisplayEnhanceB   = 0xD1
	cmdSetCommandLock    = 0xFD
	commandLockUnlocked  = 0x12
	muxRatio             = Height - 1
	remapHorizontalNib   = 0x14 // horizontal increment, nibble remap, COM scan reversed
	remapDualCOM         = 0x11
	functionInternalVDD  = 0x01
	gpioDisabled         = 0x00
	defaultContrast      = 0x7F
	defaultMasterCurrent = 0x0F
)

// Command is a single controller command: one opcode byte followed by zero
// or more parameter bytes.
type Command struct {
	Op     byte
	Params []byte
}

// cmd is shorthand used by the init tables.
func cmd(op byte, params ...byte) Command {
	return Command{Op: op, Params: params}
}
