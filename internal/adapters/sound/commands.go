package sound

import (
	"runtime"
	"strings"

	"go.trai.ch/revwatch/internal/core/ports"
)

// Commands builds the platform commands used to play audio files and speak phrases.
type Commands struct {
	Play  func(path string) ports.ProcessSpec
	Speak func(phrase string) ports.ProcessSpec
}

// PlatformCommands returns the commands for the given GOOS.
func PlatformCommands(goos string) Commands {
	switch goos {
	case "windows":
		return Commands{
			Play: func(path string) ports.ProcessSpec {
				return powershell("(New-Object Media.SoundPlayer " + quotePS(path) + ").PlaySync()")
			},
			Speak: func(phrase string) ports.ProcessSpec {
				return powershell("Add-Type -AssemblyName System.Speech; " +
					"(New-Object System.Speech.Synthesis.SpeechSynthesizer).Speak(" + quotePS(phrase) + ")")
			},
		}
	case "darwin":
		return Commands{
			Play:  func(path string) ports.ProcessSpec { return ports.ProcessSpec{Name: "afplay", Args: []string{path}} },
			Speak: func(phrase string) ports.ProcessSpec { return ports.ProcessSpec{Name: "say", Args: []string{phrase}} },
		}
	default:
		return Commands{
			Play: func(path string) ports.ProcessSpec {
				return ports.ProcessSpec{Name: "ffplay", Args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}}
			},
			Speak: func(phrase string) ports.ProcessSpec { return ports.ProcessSpec{Name: "espeak", Args: []string{phrase}} },
		}
	}
}

// DefaultCommands returns the commands for the running platform.
func DefaultCommands() Commands {
	return PlatformCommands(runtime.GOOS)
}

func powershell(script string) ports.ProcessSpec {
	return ports.ProcessSpec{Name: "powershell", Args: []string{"-NoProfile", "-NonInteractive", "-Command", script}}
}

// quotePS single-quotes s for PowerShell.
func quotePS(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
