package console

import (
	"fmt"
	"io"
	"os"
)

// HelpCommand prints the usage line and every registered command
type HelpCommand struct {
	out      io.Writer
	commands []Command
}

func NewHelpCommand() *HelpCommand {
	cmd := HelpCommand{out: os.Stdout}
	return &cmd
}

// SetCommands registers the list printed by Run; the help command may be part of it
func (cmd *HelpCommand) SetCommands(commands []Command) {
	cmd.commands = commands
}

func (cmd *HelpCommand) Name() string {
	return "help"
}

func (cmd *HelpCommand) Description() string {
	return "lists the station commands"
}

func (cmd *HelpCommand) Run(_ []string) error {
	if _, err := fmt.Fprintf(cmd.out, "Usage: station_console [command] [arguments]\n"+
		"Without a command the %s scenario runs.\n", DefaultCommand); err != nil {
		return err
	}
	for _, c := range cmd.commands {
		if _, err := fmt.Fprintf(cmd.out, "\t%s - %s\n", c.Name(), c.Description()); err != nil {
			return err
		}
	}
	return nil
}
