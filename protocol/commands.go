package protocol

// DShot special commands. Throttle field values below MinThrottle are
// interpreted by the ESC as commands rather than throttle.
const (
	CmdMotorStop = iota
	CmdBeacon1
	CmdBeacon2
	CmdBeacon3
	CmdBeacon4
	CmdBeacon5
	CmdESCInfo
	CmdSpinDirection1
	CmdSpinDirection2
	Cmd3DModeOff
	Cmd3DModeOn
	CmdSettingsRequest
	CmdSaveSettings
	CmdSpinDirectionNormal
	CmdSpinDirectionReversed
	CmdLED0On // BLHeli32 only
	CmdLED1On // BLHeli32 only
	CmdLED2On // BLHeli32 only
	CmdLED3On // BLHeli32 only
	CmdLED0Off
	CmdLED1Off
	CmdLED2Off
	CmdLED3Off
	CmdAudioStreamModeOnOff // KISS only
	CmdSilentModeOnOff      // KISS only
	CmdSignalLineTelemetryDisable
	CmdSignalLineContinuousERPMTelemetry
	CmdMax = 47
)

// MinThrottle is the lowest throttle field value that commands motor
// speed; 48..2047 map to the ESC's throttle range.
const MinThrottle = CmdMax + 1
